package main

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/namick/site"
	"github.com/namick/site/theme"
)

// config is everything the commands read from site.yaml, the environment
// and flags.
type config struct {
	Name         string `mapstructure:"name"`
	URL          string `mapstructure:"url"`
	Description  string `mapstructure:"description"`
	Author       string `mapstructure:"author"`
	NavTitle     string `mapstructure:"nav_title"`
	Addr         string `mapstructure:"addr"`
	ContentDir   string `mapstructure:"content_dir"`
	PublicDir    string `mapstructure:"public_dir"`
	DatabasePath string `mapstructure:"database_path"`
	Theme        string `mapstructure:"theme"`
	CodeTheme    string `mapstructure:"code_theme"`

	Drafts  bool `mapstructure:"drafts"`
	Watch   bool `mapstructure:"watch"`
	Metrics bool `mapstructure:"metrics"`

	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	ShutdownGrace time.Duration `mapstructure:"shutdown_grace"`

	LogLevel    string `mapstructure:"log_level"`
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}

var defaults = map[string]any{
	"name":           "Nathan Amick",
	"url":            "http://localhost:3000",
	"description":    "Writing about software, the web, and making things.",
	"author":         "Nathan Amick",
	"nav_title":      "",
	"addr":           ":3000",
	"content_dir":    "content/blog",
	"public_dir":     "public",
	"database_path":  "data/site.db",
	"theme":          "catppuccin",
	"code_theme":     "github-dark",
	"drafts":         false,
	"watch":          false,
	"metrics":        true,
	"cache_ttl":      5 * time.Minute,
	"shutdown_grace": 10 * time.Second,
	"log_level":      "info",
	"sentry_dsn":     "",
	"environment":    "development",
}

// flagKeys maps command flags to config keys.
var flagKeys = map[string]string{
	"addr":    "addr",
	"content": "content_dir",
	"public":  "public_dir",
	"watch":   "watch",
	"drafts":  "drafts",
}

// loadConfig resolves configuration. Precedence, highest first: flags,
// environment (SITE_ prefix, .env included), config file, defaults.
func loadConfig(configFile string, flags *pflag.FlagSet) (config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config{}, eris.Wrap(err, "load .env")
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("site")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"log_level", "sentry_dsn"} {
		if err := v.BindEnv(key, "SITE_"+strings.ToUpper(key), strings.ToUpper(key)); err != nil {
			return config{}, eris.Wrapf(err, "bind env %s", key)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return config{}, eris.Wrap(err, "read config")
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return config{}, eris.Wrapf(err, "bind flag %s", name)
				}
			}
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return config{}, eris.Wrap(err, "decode config")
	}
	if _, err := theme.Lookup(cfg.Theme); err != nil {
		return config{}, eris.Wrap(err, "config theme")
	}
	return cfg, nil
}

// Site converts the loaded configuration to the server's SiteConfig.
func (c config) Site() site.SiteConfig {
	return site.SiteConfig{
		Name:          c.Name,
		URL:           c.URL,
		Description:   c.Description,
		Author:        c.Author,
		NavTitle:      c.NavTitle,
		Addr:          c.Addr,
		ContentDir:    c.ContentDir,
		PublicDir:     c.PublicDir,
		DatabasePath:  c.DatabasePath,
		Theme:         c.Theme,
		CodeTheme:     c.CodeTheme,
		Drafts:        c.Drafts,
		Watch:         c.Watch,
		Metrics:       c.Metrics,
		CacheTTL:      c.CacheTTL,
		ShutdownGrace: c.ShutdownGrace,
	}
}
