package config

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/paintr/internal/config/loader"
	"github.com/dshills/paintr/internal/config/watcher"
)

// ReloadHandler is called after the config file changed on disk. err is
// the reload failure, in which case the previous settings stay in effect.
type ReloadHandler func(c *Config, err error)

// Config provides merged access to paintr settings.
// It is safe for concurrent use.
type Config struct {
	mu sync.RWMutex

	path      string
	envPrefix string
	overrides map[string]any

	merged map[string]any

	enableWatcher bool
	watcher       *watcher.Watcher
	handlers      []ReloadHandler

	// configErrors stores type problems found by section accessors.
	configErrors map[string]error
}

// Option configures a Config instance.
type Option func(*Config)

// WithFile sets the config file. An empty path loads no file.
func WithFile(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithOverride sets a value that beats every other source.
func WithOverride(path string, value any) Option {
	return func(c *Config) {
		_ = setPath(c.overrides, path, value)
	}
}

// WithWatcher enables reloading the file when it changes.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// New creates a Config holding only the defaults. Call Load to read the
// file and environment.
func New(opts ...Option) *Config {
	c := &Config{
		envPrefix:    loader.DefaultEnvPrefix,
		overrides:    make(map[string]any),
		merged:       defaultConfig(),
		configErrors: make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads every source and starts the watcher when enabled.
func (c *Config) Load(_ context.Context) error {
	merged, err := c.read()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.merged = merged
	c.configErrors = make(map[string]error)
	c.mu.Unlock()

	if c.enableWatcher && c.path != "" {
		return c.startWatcher()
	}
	return nil
}

// Reload re-reads every source. On failure the current settings are kept.
func (c *Config) Reload() error {
	merged, err := c.read()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.merged = merged
	c.configErrors = make(map[string]error)
	c.mu.Unlock()
	return nil
}

// read builds a fresh merged map and validates it.
func (c *Config) read() (map[string]any, error) {
	merged := defaultConfig()

	if c.path != "" {
		fl, err := loader.ForPath(c.path)
		if err != nil {
			return nil, err
		}
		data, err := fl.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	env, err := loader.NewEnvLoader(c.envPrefix).Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, env)
	merged = loader.DeepMerge(merged, loader.Clone(c.overrides))

	if err := validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c *Config) startWatcher() error {
	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("starting config watcher: %w", err)
	}
	if err := w.Watch(c.path); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", c.path, err)
	}
	w.OnChange(c.handleFileChange)

	c.mu.Lock()
	c.watcher = w
	c.mu.Unlock()
	return nil
}

// handleFileChange reloads the file and notifies handlers.
func (c *Config) handleFileChange(event watcher.Event) {
	var err error
	if event.Op != watcher.OpRemove {
		err = c.Reload()
	}

	c.mu.RLock()
	handlers := make([]ReloadHandler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	for _, h := range handlers {
		h(c, err)
	}
}

// OnReload registers a handler for file reloads.
func (c *Config) OnReload(h ReloadHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

// Path returns the config file path, or "" when none is used.
func (c *Config) Path() string {
	return c.path
}

// Close stops the watcher.
func (c *Config) Close() {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()

	if w != nil {
		w.Close()
	}
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	if n, ok := toInt(v); ok {
		return n, nil
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// GetFloat returns a float64 value at the given path.
func (c *Config) GetFloat(path string) (float64, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "float64", Actual: typeName(v)}
	}
}

// GetStringMap returns a table of string values, such as the keymap.
func (c *Config) GetStringMap(path string) (map[string]string, error) {
	v, ok := c.Get(path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &TypeError{Path: path, Expected: "table", Actual: typeName(v)}
	}
	out := make(map[string]string, len(m))
	for k, val := range m {
		s, ok := val.(string)
		if !ok {
			return nil, &TypeError{Path: path + "." + k, Expected: "string", Actual: typeName(val)}
		}
		out[k] = s
	}
	return out, nil
}

// Errors returns type problems recorded by the section accessors, sorted
// by setting path.
func (c *Config) Errors() []error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	paths := make([]string, 0, len(c.configErrors))
	for p := range c.configErrors {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]error, len(paths))
	for i, p := range paths {
		out[i] = c.configErrors[p]
	}
	return out
}

func (c *Config) recordConfigError(path string, err error) {
	c.mu.Lock()
	c.configErrors[path] = err
	c.mu.Unlock()
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"port":       DefaultPort,
			"static_dir": "",
		},
		"canvas": map[string]any{
			"background":   "white",
			"pen_color":    "#000000",
			"stroke_width": 2.0,
			"brush_width":  2.0,
		},
		"history": map[string]any{
			"max_entries": 100,
		},
		"logging": map[string]any{
			"level": "info",
		},
		"keymap": map[string]any{},
	}
}

// validate rejects values the server cannot start with.
func validate(m map[string]any) error {
	if v, ok := getPath(m, "server.port"); ok {
		port, isInt := toInt(v)
		if !isInt {
			return &TypeError{Path: "server.port", Expected: "int", Actual: typeName(v)}
		}
		if port < 1 || port > 65535 {
			return &ValidationError{Path: "server.port", Message: "must be between 1 and 65535", Value: v}
		}
	}
	if v, ok := getPath(m, "history.max_entries"); ok {
		if n, isInt := toInt(v); isInt && n < 1 {
			return &ValidationError{Path: "history.max_entries", Message: "must be positive", Value: v}
		}
	}
	if v, ok := getPath(m, "logging.level"); ok {
		if s, isStr := v.(string); isStr {
			switch strings.ToLower(s) {
			case "debug", "info", "warn", "warning", "error":
			default:
				return &ValidationError{Path: "logging.level", Message: "unknown level", Value: v}
			}
		}
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if val == float64(int(val)) {
			return int(val), true
		}
	}
	return 0, false
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	if path == "" {
		return fmt.Errorf("empty setting path")
	}
	parts := strings.Split(path, ".")
	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("setting path %s crosses a value", path)
		}
		current = nextMap
	}
	current[parts[len(parts)-1]] = value
	return nil
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
