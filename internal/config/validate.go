package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.GeneratePerMin <= 0 {
		return fmt.Errorf("rate_limit.generate_per_min must be > 0 (got %d)", c.RateLimit.GeneratePerMin)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (g *GeneratorConfig) validate() error {
	if g.DefaultTarget <= 0 {
		return fmt.Errorf("default_target must be > 0 (got %d)", g.DefaultTarget)
	}
	if g.MaxTarget < g.DefaultTarget {
		return fmt.Errorf("max_target (%d) must be >= default_target (%d)", g.MaxTarget, g.DefaultTarget)
	}
	if g.DefaultCount <= 0 {
		return fmt.Errorf("default_count must be > 0 (got %d)", g.DefaultCount)
	}
	if g.MaxCount < g.DefaultCount {
		return fmt.Errorf("max_count (%d) must be >= default_count (%d)", g.MaxCount, g.DefaultCount)
	}
	if g.BeamWidth <= 0 || g.MaxWords <= 0 || g.SampleSize <= 0 || g.LineCandidates <= 0 {
		return fmt.Errorf("beam_width, max_words, sample_size and line_candidates must be > 0")
	}
	if g.MinWordWeight < 0 || g.MaxWordWeight < g.MinWordWeight {
		return fmt.Errorf("word weight bounds [%d, %d] are invalid", g.MinWordWeight, g.MaxWordWeight)
	}
	if g.MaxWordRunes <= 0 {
		return fmt.Errorf("max_word_runes must be > 0 (got %d)", g.MaxWordRunes)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
