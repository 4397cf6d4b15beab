package content

import "sort"

// SortByPublished orders posts newest first, in place.
//
// A post without a publish date compares equal to every other post, so it is
// never moved: undated posts keep their index, and the dated posts between
// two of them are ordered within that run. Posts with equal dates keep their
// input order.
func SortByPublished(posts []*Post) {
	start := 0
	for i := 0; i <= len(posts); i++ {
		if i < len(posts) && posts[i].HasDate() {
			continue
		}
		run := posts[start:i]
		sort.SliceStable(run, func(a, b int) bool {
			return run[a].PublishedOn.After(run[b].PublishedOn)
		})
		start = i + 1
	}
}

// Newest returns a copy of the dated posts ordered strictly newest first,
// for feeds and "recent" lists. Undated posts are left out.
func Newest(posts []*Post) []*Post {
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.HasDate() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].PublishedOn.After(out[b].PublishedOn)
	})
	return out
}
