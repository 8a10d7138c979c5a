// Package config loads paintr settings.
//
// Settings are merged from several sources, later sources winning:
//
//  1. built-in defaults
//  2. the config file (.toml or .yaml/.yml)
//  3. environment variables (PORT, PAINTR_SECTION_KEY)
//  4. overrides supplied by the caller, usually command-line flags
//
// A TOML file looks like:
//
//	[server]
//	port = 8180
//	static_dir = ""
//
//	[canvas]
//	background = "white"
//	pen_color = "#000000"
//	stroke_width = 2
//	brush_width = 2
//
//	[history]
//	max_entries = 100
//
//	[logging]
//	level = "info"
//
//	[keymap]
//	"Ctrl+S" = "canvas.clear"
//
// When watching is enabled the file is reloaded on change and OnReload
// handlers are called with the result. Typed sections (Server, Canvas,
// History, Logging, Keymap) fall back to defaults for missing or
// mistyped values; the type problems are reported by Errors.
package config
