package theme

// palette builds a Palette from values given in Tokens order.
func palette(values ...string) Palette {
	if len(values) != len(Tokens) {
		panic("theme: palette needs one value per token")
	}
	p := make(Palette, len(values))
	for i, v := range values {
		p[Tokens[i]] = v
	}
	return p
}

//	background, foreground, muted, muted-foreground, popover, popover-foreground,
//	card, card-foreground, border, primary, primary-foreground, secondary,
//	secondary-foreground, accent, accent-foreground, ring
var presets = map[string]Preset{
	"default": {
		Name: "default",
		Light: palette("0 0% 100%", "222.2 47.4% 11.2%", "210 40% 96.1%", "215.4 16.3% 46.9%",
			"0 0% 100%", "222.2 47.4% 11.2%", "0 0% 100%", "222.2 47.4% 11.2%", "214.3 31.8% 91.4%",
			"222.2 47.4% 11.2%", "210 40% 98%", "210 40% 96.1%", "222.2 47.4% 11.2%",
			"210 40% 96.1%", "222.2 47.4% 11.2%", "215 20.2% 65.1%"),
		Dark: palette("224 71% 4%", "213 31% 91%", "223 47% 11%", "215.4 16.3% 56.9%",
			"224 71% 4%", "215 20.2% 65.1%", "224 71% 4%", "213 31% 91%", "216 34% 17%",
			"210 40% 98%", "222.2 47.4% 1.2%", "222.2 47.4% 11.2%", "210 40% 98%",
			"216 34% 17%", "210 40% 98%", "216 34% 17%"),
	},
	"neutral": {
		Name: "neutral",
		Light: palette("0 0% 100%", "0 0% 3.9%", "0 0% 96.1%", "0 0% 45.1%",
			"0 0% 100%", "0 0% 3.9%", "0 0% 100%", "0 0% 3.9%", "0 0% 89.8%",
			"0 0% 9%", "0 0% 98%", "0 0% 96.1%", "0 0% 9%",
			"0 0% 96.1%", "0 0% 9%", "0 0% 3.9%"),
		Dark: palette("0 0% 3.9%", "0 0% 98%", "0 0% 14.9%", "0 0% 63.9%",
			"0 0% 3.9%", "0 0% 98%", "0 0% 3.9%", "0 0% 98%", "0 0% 14.9%",
			"0 0% 98%", "0 0% 9%", "0 0% 14.9%", "0 0% 98%",
			"0 0% 14.9%", "0 0% 98%", "0 0% 83.1%"),
	},
	"purple": {
		Name: "purple",
		Light: palette("0 0% 100%", "270 50% 10%", "270 30% 96%", "270 10% 45%",
			"0 0% 100%", "270 50% 10%", "0 0% 100%", "270 50% 10%", "270 20% 90%",
			"270 95% 60%", "0 0% 100%", "270 30% 96%", "270 50% 10%",
			"270 40% 94%", "270 50% 10%", "270 95% 60%"),
		Dark: palette("270 30% 6%", "270 20% 96%", "270 25% 12%", "270 10% 64%",
			"270 30% 6%", "270 20% 96%", "270 28% 9%", "270 20% 96%", "270 20% 18%",
			"270 95% 75%", "270 30% 6%", "270 25% 12%", "270 20% 96%",
			"270 25% 16%", "270 20% 96%", "270 95% 75%"),
	},
	"ocean": {
		Name: "ocean",
		Light: palette("0 0% 100%", "220 60% 10%", "220 30% 96%", "220 10% 45%",
			"0 0% 100%", "220 60% 10%", "0 0% 100%", "220 60% 10%", "220 20% 90%",
			"210 100% 50%", "0 0% 100%", "220 30% 96%", "220 60% 10%",
			"210 50% 94%", "220 60% 10%", "210 100% 50%"),
		Dark: palette("220 60% 8%", "220 50% 95%", "220 50% 20%", "220 30% 65%",
			"220 50% 10%", "220 50% 95%", "220 50% 10%", "220 50% 95%", "220 50% 20%",
			"205 100% 85%", "220 60% 8%", "220 50% 20%", "220 50% 95%",
			"220 40% 20%", "220 100% 80%", "205 100% 85%"),
	},
	"catppuccin": {
		Name: "catppuccin",
		// Latte
		Light: palette("220 23% 95%", "234 16% 35%", "223 16% 83%", "233 10% 47%",
			"220 22% 92%", "234 16% 35%", "220 22% 92%", "234 16% 35%", "225 14% 77%",
			"266 85% 58%", "220 23% 95%", "223 16% 83%", "234 16% 35%",
			"223 16% 83%", "234 16% 35%", "266 85% 58%"),
		// Mocha
		Dark: palette("240 21% 15%", "226 64% 88%", "237 16% 23%", "228 24% 72%",
			"240 21% 12%", "226 64% 88%", "240 21% 12%", "226 64% 88%", "237 16% 23%",
			"267 84% 81%", "240 21% 15%", "237 16% 23%", "226 64% 88%",
			"237 16% 23%", "226 64% 88%", "267 84% 81%"),
	},
	"dusk": {
		Name: "dusk",
		Light: palette("0 0% 98%", "240 10% 10%", "240 5% 94%", "240 4% 46%",
			"0 0% 100%", "240 10% 10%", "0 0% 100%", "240 10% 10%", "240 6% 88%",
			"340 82% 52%", "0 0% 100%", "240 5% 94%", "240 10% 10%",
			"340 60% 95%", "240 10% 10%", "340 82% 52%"),
		Dark: palette("250 20% 8%", "250 15% 92%", "250 15% 15%", "250 10% 62%",
			"250 20% 10%", "250 15% 92%", "250 20% 10%", "250 15% 92%", "250 15% 18%",
			"340 75% 68%", "250 20% 8%", "250 15% 15%", "250 15% 92%",
			"250 15% 18%", "250 15% 92%", "340 75% 68%"),
	},
}
