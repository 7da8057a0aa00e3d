package config

import (
	"github.com/pkg/errors"
)

const (
	ProductionURL = "https://ryanking13.github.io/pyodide-pygame-demo"
	LocalhostURL  = "http://localhost:8000"
)

// HTMLPatterns are matched against root-relative, slash-separated paths.
var HTMLPatterns = []string{"*.html", "**/*.html"}

// Config holds everything one invocation needs. It is built once in main and
// passed by value.
type Config struct {
	ProductionURL string
	LocalhostURL  string
	Patterns      []string
	Root          string

	// Printed after a successful switch to localhost.
	ServeHint string
	VisitURL  string
}

// Default returns the built-in configuration rooted at root.
func Default(root string) Config {
	return Config{
		ProductionURL: ProductionURL,
		LocalhostURL:  LocalhostURL,
		Patterns:      append([]string(nil), HTMLPatterns...),
		Root:          root,
		ServeHint:     "python -m http.server 8000",
		VisitURL:      LocalhostURL + "/",
	}
}

// WithRoot returns a copy of c discovering files under root.
func (c Config) WithRoot(root string) Config {
	c.Patterns = append([]string(nil), c.Patterns...)
	c.Root = root
	return c
}

// Validate checks the URL pair and patterns.
func (c Config) Validate() error {
	if c.ProductionURL == "" || c.LocalhostURL == "" {
		return errors.New("production and localhost URLs must both be set")
	}
	if c.ProductionURL == c.LocalhostURL {
		return errors.Errorf("production and localhost URLs must differ (both are %q)", c.ProductionURL)
	}
	if len(c.Patterns) == 0 {
		return errors.New("at least one file pattern is required")
	}
	if c.Root == "" {
		return errors.New("project root is not set")
	}
	return nil
}
