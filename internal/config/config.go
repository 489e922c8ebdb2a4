package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site      SiteConfig   `yaml:"site"`
	Output    OutputConfig `yaml:"output"`
	Analytics string       `yaml:"analytics,omitempty"` // path to analytics.conf
	Templates string       `yaml:"templates,omitempty"` // optional template override directory
}

// SiteConfig carries presentation settings shared by every generated page.
type SiteConfig struct {
	Title     string `yaml:"title,omitempty"`     // overrides the repository name as site title
	Copyright string `yaml:"copyright,omitempty"` // copyright holder for page footers
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// Load loads configuration from the specified file.
//
// A missing configuration file is not an error: every field has a usable
// default and most invocations run without a config file at all.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; existing environment variables win.
	for _, envPath := range []string{".env", ".env.local"} {
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			break
		}
	}

	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		applyDefaults(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Output.Directory == "" {
		config.Output.Directory = "./dist"
		config.Output.Clean = true
	}
	if config.Analytics == "" {
		config.Analytics = "analytics.conf"
	}
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := `# blogstack configuration
site:
  # title: My Blog          # defaults to the repository name
  # copyright: Jane Doe

output:
  directory: ./dist
  clean: true

# Analytics tracking IDs live in a key=value file mapping
# repository name to tracking ID, one per line:
#
#   my-blog-repo=G-XXXXXXXXXX
#
analytics: analytics.conf

# Uncomment to override the built-in HTML templates:
# templates: ./templates
`
	if err := os.WriteFile(configPath, []byte(example), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
