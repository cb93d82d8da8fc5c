// Package config loads the optional glane.yaml file and turns it into scene
// options.
//
// Every field has a default, so a missing file or a partial one is valid:
//
//	app:
//	  name: dashboard
//	viewport: {width: 800, height: 600}
//	font: {path: fonts/Inter.ttf, size: 14}
//	measure: {mode: face, cache_size: 1024}
//	debug: {verbose: false, strict: false}
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-glane/glane/pkg/core"
	glaneerrors "github.com/go-glane/glane/pkg/errors"
	"github.com/go-glane/glane/pkg/graphics"
	"github.com/go-glane/glane/pkg/text"
)

// FileName is the configuration file LoadOptional looks for.
const FileName = "glane.yaml"

// Measurement modes.
const (
	// ModeFace measures with the font's glyph metrics.
	ModeFace = "face"
	// ModeCells measures in fixed-size terminal cells.
	ModeCells = "cells"
)

// Config represents the optional glane.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Viewport ViewportConfig `yaml:"viewport"`
	Font     FontConfig     `yaml:"font"`
	Measure  MeasureConfig  `yaml:"measure"`
	Debug    DebugConfig    `yaml:"debug"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ViewportConfig is the initial root rectangle size.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FontConfig selects the default font. An empty path keeps the built-in
// bitmap font.
type FontConfig struct {
	Path string  `yaml:"path,omitempty"`
	Size float64 `yaml:"size"`
}

// MeasureConfig selects and tunes the text measurer.
type MeasureConfig struct {
	Mode string `yaml:"mode"`
	// CacheSize is the number of memoized measurements. Zero disables the
	// cache.
	CacheSize  int     `yaml:"cache_size"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DebugConfig contains error reporting settings.
type DebugConfig struct {
	Verbose bool `yaml:"verbose"`
	Strict  bool `yaml:"strict"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Viewport   graphics.Size
	Font       *text.Font
	Measurer   text.Measurer
	Verbose    bool
	Strict     bool
}

// Default returns the configuration used when glane.yaml is absent.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{Width: core.DefaultViewport.Width, Height: core.DefaultViewport.Height},
		Font:     FontConfig{Size: 14},
		Measure:  MeasureConfig{Mode: ModeFace, CacheSize: 1024, CellWidth: 8, CellHeight: 16},
	}
}

// LoadOptional reads glane.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Load reads the file at path. Fields the file omits keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, glaneerrors.New("config.Load", glaneerrors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, glaneerrors.New("config.Load", glaneerrors.KindConfig, fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return cfg, nil
}

// Resolve validates c and builds the font and measurer. Relative font paths
// are resolved against dir, which is also where go.mod is looked up to
// name the app.
func (c *Config) Resolve(dir string) (*Resolved, error) {
	if err := c.validate(); err != nil {
		return nil, glaneerrors.New("config.Resolve", glaneerrors.KindConfig, err)
	}

	modulePath := modulePath(dir)
	appName := strings.TrimSpace(c.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	font := text.DefaultFont()
	if c.Font.Path != "" {
		path := c.Font.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		f, err := text.LoadFont(path, c.Font.Size)
		if err != nil {
			return nil, glaneerrors.New("config.Resolve", glaneerrors.KindConfig, err)
		}
		font = f
	}

	measurer, err := c.measurer()
	if err != nil {
		return nil, glaneerrors.New("config.Resolve", glaneerrors.KindConfig, err)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Viewport:   graphics.Size{Width: c.Viewport.Width, Height: c.Viewport.Height},
		Font:       font,
		Measurer:   measurer,
		Verbose:    c.Debug.Verbose,
		Strict:     c.Debug.Strict,
	}, nil
}

func (c *Config) validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Font.Path != "" && c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %g", c.Font.Size)
	}
	if c.Measure.CacheSize < 0 {
		return fmt.Errorf("measure cache_size must not be negative, got %d", c.Measure.CacheSize)
	}
	switch c.Measure.Mode {
	case ModeFace:
	case ModeCells:
		if c.Measure.CellWidth <= 0 || c.Measure.CellHeight <= 0 {
			return fmt.Errorf("cell size must be positive, got %gx%g", c.Measure.CellWidth, c.Measure.CellHeight)
		}
	default:
		return fmt.Errorf("unknown measure mode %q (want %q or %q)", c.Measure.Mode, ModeFace, ModeCells)
	}
	return nil
}

func (c *Config) measurer() (text.Measurer, error) {
	var inner text.Measurer = text.FaceMeasurer{}
	if c.Measure.Mode == ModeCells {
		inner = text.CellMeasurer{CellWidth: c.Measure.CellWidth, CellHeight: c.Measure.CellHeight}
	}
	if c.Measure.CacheSize == 0 {
		return inner, nil
	}
	return text.NewCachedMeasurer(inner, c.Measure.CacheSize)
}

// SceneOptions returns the options that configure a scene with r.
func (r *Resolved) SceneOptions() []core.Option {
	return []core.Option{
		core.WithViewport(r.Viewport),
		core.WithDefaultFont(r.Font),
		core.WithMeasurer(r.Measurer),
	}
}

// InstallErrorHandling routes engine errors to logger (slog.Default() when
// nil) and sets strict mode.
func (r *Resolved) InstallErrorHandling(logger *slog.Logger) {
	glaneerrors.SetHandler(&glaneerrors.LogHandler{Logger: logger, Verbose: r.Verbose})
	glaneerrors.SetStrict(r.Strict)
}

// ErrNoProjectRoot is wrapped by FindProjectRoot when no directory up to
// the filesystem root holds a project marker.
var ErrNoProjectRoot = errors.New("no " + FileName + " or go.mod found")

// FindProjectRoot walks up from the current directory to the first
// directory holding glane.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", glaneerrors.New("config.FindProjectRoot", glaneerrors.KindConfig, err)
	}
	return findProjectRoot(dir)
}

func findProjectRoot(dir string) (string, error) {
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", glaneerrors.New("config.FindProjectRoot", glaneerrors.KindConfig, ErrNoProjectRoot)
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// there is none.
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "glane_app"
	}
	return base
}
