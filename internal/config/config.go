package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// siteFileName is the optional per-project configuration file, resolved
// relative to the site root.
const siteFileName = "site.yaml"

// validatorInstance is a package-level validator instance. Using a single
// instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Config holds all configuration for a site project. Treat a constructed
// Config as read-only; the asset and page layers borrow it and never
// mutate it.
type Config struct {
	// Root is the base directory of the site project. All asset
	// discovery happens beneath {Root}/public.
	Root string `yaml:"-" validate:"required"`

	// Title is the site title injected into the page shell.
	Title string `yaml:"title"`

	// Env names the runtime environment.
	Env string `yaml:"env" validate:"omitempty,oneof=development production"`
}

// New loads configuration from the environment and, when present, from
// {root}/site.yaml. Environment variables win over the file.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	root := os.Getenv("SITE_ROOT")
	if root == "" {
		root = "."
	}

	cfg := &Config{
		Root:  root,
		Title: "Showkit",
		Env:   "development",
	}

	if err := cfg.loadSiteFile(); err != nil {
		return nil, err
	}

	if v := os.Getenv("SITE_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("SITE_ENV"); v != "" {
		cfg.Env = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSiteFile merges the optional site.yaml into the config. A missing
// file is not an error; a malformed one is.
func (c *Config) loadSiteFile() error {
	data, err := os.ReadFile(filepath.Join(c.Root, siteFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", siteFileName, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", siteFileName, err)
	}
	return nil
}

// Validate runs validation checks on the Config using the defined tags.
func (c *Config) Validate() error {
	if err := validatorInstance.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
