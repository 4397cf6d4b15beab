package site

import "embed"

// EmbeddedAssets contains the assets shipped with the binary: the base
// stylesheet served at /public/site.css and the fallback favicon.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
