package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultBaseDir is the configuration directory name under $HOME.
	DefaultBaseDir = ".sdxl"
	// DefaultConfigFile is the configuration filename.
	DefaultConfigFile = "config.yaml"
)

// Config is the tool configuration: a set of named contexts plus the
// name of the currently active one.
type Config struct {
	// CurrentContext is the name of the currently active context.
	CurrentContext string `yaml:"current_context,omitempty"`

	// Contexts maps context name to context configuration.
	Contexts map[string]*Context `yaml:"contexts,omitempty"`

	// configPath is the path this config was loaded from.
	configPath string
}

// Context is one named preset of invocation defaults. Explicit command
// flags always override context values.
type Context struct {
	// Name is the context name.
	Name string `yaml:"name"`

	// AWSProfile is the shared-config profile used for credentials.
	AWSProfile string `yaml:"aws_profile,omitempty"`

	// Region is the AWS region; empty lets the SDK default chain decide.
	Region string `yaml:"region,omitempty"`

	// Model is the Bedrock model identifier to invoke.
	Model string `yaml:"model,omitempty"`

	// OutputDir is the default directory for generated files.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// LoadConfig loads (or creates) the configuration at the default path.
func LoadConfig() (*Config, error) {
	return LoadConfigWithPath("")
}

// LoadConfigWithPath loads configuration from a custom path, or the
// default ~/.sdxl/config.yaml when customPath is empty. A missing file
// is created empty.
func LoadConfigWithPath(customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, DefaultBaseDir, DefaultConfigFile)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{
		Contexts:   make(map[string]*Context),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	cfg.configPath = configPath

	return cfg, nil
}

// Save writes the configuration back to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.configPath
}

// AddContext adds (or replaces) a context and saves.
func (c *Config) AddContext(name string, ctx *Context) error {
	ctx.Name = name
	c.Contexts[name] = ctx
	return c.Save()
}

// DeleteContext removes a context and saves. Deleting the current
// context clears the current-context selection.
func (c *Config) DeleteContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return c.Save()
}

// UseContext sets the current context and saves.
func (c *Config) UseContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	c.CurrentContext = name
	return c.Save()
}

// GetContext returns a specific context.
func (c *Config) GetContext(name string) (*Context, error) {
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context %q not found", name)
	}
	return ctx, nil
}

// ResolveContext returns the context by name, or the current context
// when name is empty. With no name and no current context set it
// returns (nil, nil): contexts are optional for this tool.
func (c *Config) ResolveContext(name string) (*Context, error) {
	if name != "" {
		return c.GetContext(name)
	}
	if c.CurrentContext == "" {
		return nil, nil
	}
	return c.GetContext(c.CurrentContext)
}

// ListContexts returns all context names.
func (c *Config) ListContexts() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	return names
}
