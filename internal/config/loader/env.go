package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of paintr environment variables.
const DefaultEnvPrefix = "PAINTR_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // e.g. "PAINTR_"
	mapping map[string]string // env var -> config path
	lookup  func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "PAINTR_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(),
		lookup:  os.Environ,
	}
}

// defaultEnvMapping returns variables that don't follow the
// PREFIX_SECTION_KEY scheme.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"PORT":             "server.port",
		"PAINTR_PORT":      "server.port",
		"PAINTR_LOG_LEVEL": "logging.level",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads environment variables and returns a configuration map.
// Prefixed variables override unprefixed mappings such as PORT. Empty
// values count as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	env := make(map[string]string)
	for _, kv := range l.lookup() {
		name, value, ok := strings.Cut(kv, "=")
		if ok && value != "" {
			env[name] = value
		}
	}

	config := make(map[string]any)
	for name, path := range l.mapping {
		if strings.HasPrefix(name, l.prefix) {
			continue
		}
		if val, ok := env[name]; ok {
			setByPath(config, path, parseValue(val))
		}
	}

	for name, value := range env {
		if !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, ok := l.mapping[name]
		if !ok {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// envToPath converts PAINTR_CANVAS_PEN_COLOR to canvas.pen_color.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts numbers and booleans, leaving everything else as a
// string.
func parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
