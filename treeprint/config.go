package treeprint

import (
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth  int            // lines are truncated to LineWidth ‘en’s
	Indent     int            // indentation per tree level, default 4
	Monochrome bool           // suppress colors
	Context    *uax11.Context // nil means uax11.LatinContext
}

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context
// is created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 80
		config.Monochrome = true
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) normalized() Config {
	var c Config
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 80
	}
	if c.Indent <= 0 {
		c.Indent = 4
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	return c
}
