package seeder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	WordListPath string `yaml:"word_list_path" env:"SEEDER_WORD_LIST_PATH" env-default:"padagalu.txt"`
	HTMLPaths    string `yaml:"html_paths"     env:"SEEDER_HTML_PATHS"`
	HTMLSelector string `yaml:"html_selector"  env:"SEEDER_HTML_SELECTOR"  env-default:"body"`
	BatchSize    int    `yaml:"batch_size"     env:"SEEDER_BATCH_SIZE"     env-default:"500"`
	DryRun       bool   `yaml:"dry_run"        env:"SEEDER_DRY_RUN"`
}

// HTMLFiles splits HTMLPaths on commas, dropping blanks.
func (c Config) HTMLFiles() []string {
	var out []string
	for _, p := range strings.Split(c.HTMLPaths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	return &cfg, nil
}
