package config

// DefaultPort is the HTTP port used when nothing else is configured.
const DefaultPort = 8180

// Section accessors return snapshot structs. Missing or mistyped values
// fall back to defaults and are recorded in Errors.

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the TCP port to listen on.
	Port int

	// StaticDir serves page assets from disk instead of the embedded copy.
	StaticDir string
}

// CanvasConfig holds drawing defaults.
type CanvasConfig struct {
	Background  string
	PenColor    string
	StrokeWidth float64
	BrushWidth  float64
}

// HistoryConfig holds undo settings.
type HistoryConfig struct {
	MaxEntries int
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string
}

// Server returns the server section.
func (c *Config) Server() ServerConfig {
	return ServerConfig{
		Port:      c.getIntOr("server.port", DefaultPort),
		StaticDir: c.getStringOr("server.static_dir", ""),
	}
}

// Canvas returns the canvas section.
func (c *Config) Canvas() CanvasConfig {
	return CanvasConfig{
		Background:  c.getStringOr("canvas.background", "white"),
		PenColor:    c.getStringOr("canvas.pen_color", "#000000"),
		StrokeWidth: c.getFloatOr("canvas.stroke_width", 2),
		BrushWidth:  c.getFloatOr("canvas.brush_width", 2),
	}
}

// History returns the history section.
func (c *Config) History() HistoryConfig {
	return HistoryConfig{
		MaxEntries: c.getIntOr("history.max_entries", 100),
	}
}

// Logging returns the logging section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
	}
}

// Keymap returns extra key bindings, spec to action.
func (c *Config) Keymap() map[string]string {
	m, err := c.GetStringMap("keymap")
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError("keymap", err)
		}
		return map[string]string{}
	}
	return m
}

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getIntOr(path string, defaultValue int) int {
	v, err := c.GetInt(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getFloatOr(path string, defaultValue float64) float64 {
	v, err := c.GetFloat(path)
	if err != nil {
		if err != ErrSettingNotFound {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}
