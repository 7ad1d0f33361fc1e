package gui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-gui/internal/debug"
	"github.com/grindlemire/go-gui/internal/style"
)

// Config is the YAML form of the engine options:
//
//	viewport: {width: 1280, height: 720}
//	workers: 4
//	parallel_threshold: 256
//	max_dirty_rects: 16
//	log_file: /tmp/gui.log
//	rules:
//	  - selector: ".btn"
//	    style: {padding: 4, background: "#336699"}
type Config struct {
	Viewport struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`
	Workers           int        `yaml:"workers"`
	ParallelThreshold int        `yaml:"parallel_threshold"`
	MaxDirtyRects     int        `yaml:"max_dirty_rects"`
	LogFile           string     `yaml:"log_file"`
	Rules             []RuleSpec `yaml:"rules"`
}

// RuleSpec is the YAML form of a style rule.
type RuleSpec = style.RuleSpec

// ParseConfig reads a YAML config. Unknown fields are errors.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}

// Sheet builds the style sheet from the config's rules.
func (c *Config) Sheet() (*Sheet, error) {
	return style.BuildSheet(c.Rules)
}

// WithConfig applies every field set in cfg. Rules are appended to any
// sheet given by an earlier WithSheet.
func WithConfig(cfg *Config) EngineOption {
	return func(e *Engine) error {
		if cfg == nil {
			return fmt.Errorf("nil config")
		}
		if cfg.Viewport.Width != 0 || cfg.Viewport.Height != 0 {
			if err := WithViewport(cfg.Viewport.Width, cfg.Viewport.Height)(e); err != nil {
				return err
			}
		}
		if cfg.Workers != 0 {
			if err := WithWorkers(cfg.Workers)(e); err != nil {
				return err
			}
		}
		if cfg.ParallelThreshold != 0 {
			e.threshold = cfg.ParallelThreshold
		}
		if cfg.MaxDirtyRects != 0 {
			if err := WithMaxDirtyRects(cfg.MaxDirtyRects)(e); err != nil {
				return err
			}
		}
		if cfg.LogFile != "" {
			if err := debug.Init(cfg.LogFile); err != nil {
				return err
			}
		}
		sheet, err := cfg.Sheet()
		if err != nil {
			return err
		}
		e.sheet = e.sheet.Merge(sheet)
		return nil
	}
}
