// Package config loads and saves the gridkit configuration file: the
// puzzle-site session cookie and per-year directory overrides.
//
// The file lives at $XDG_CONFIG_HOME/gridkit/config.toml (os.UserConfigDir)
// and looks like:
//
//	session = "53616c7465645f5f..."
//
//	[paths.2021]
//	implementation = "/src/aoc2021"
//	input_files = "/src/aoc2021/inputs"
//	day_template = "/src/aoc2021/template"
//
// Every path has a default, so an empty file is a valid configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

const appName = "gridkit"

var (
	// ErrLoad indicates the configuration file could not be read.
	ErrLoad = errors.New("config: could not load configuration")
	// ErrMalformed indicates the configuration file is not valid TOML for Config.
	ErrMalformed = errors.New("config: malformed configuration")
	// ErrSave indicates the configuration could not be written.
	ErrSave = errors.New("config: could not save configuration")
)

// Config is the contents of the configuration file.
type Config struct {
	// Session is the value of the site's session cookie.
	Session string `toml:"session"`
	// Paths are configured independently per year, keyed by the decimal year.
	Paths map[string]Paths `toml:"paths,omitempty"`
}

// Paths are the directory overrides of one year. Empty means default.
type Paths struct {
	InputFiles     string `toml:"input_files,omitempty"`
	Implementation string `toml:"implementation,omitempty"`
	DayTemplate    string `toml:"day_template,omitempty"`
}

// Path returns the default location of the configuration file.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// DataDir returns the general purpose data directory,
// $XDG_DATA_HOME/gridkit or ~/.local/share/gridkit.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// Load reads the configuration from Path.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file is an error
// matching both ErrLoad and fs.ErrNotExist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, path, err)
	}
	return &cfg, nil
}

// LoadOrDefault is LoadFrom, except that a missing file yields an empty
// configuration.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Save writes c to Path.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return c.SaveTo(path)
}

// SaveTo writes c to path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("%w: encode: %w", ErrSave, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	// the session cookie is a credential
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

func (c *Config) paths(year int) Paths {
	return c.Paths[strconv.Itoa(year)]
}

func (c *Config) update(year int, fn func(*Paths)) {
	if c.Paths == nil {
		c.Paths = make(map[string]Paths)
	}
	key := strconv.Itoa(year)
	p := c.Paths[key]
	fn(&p)
	c.Paths[key] = p
}

// Implementation is the implementation directory for year, or the current
// directory when none is configured.
func (c *Config) Implementation(year int) string {
	if p := c.paths(year).Implementation; p != "" {
		return p
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// InputFiles is the input directory for year, or the "inputs" folder of
// the year's implementation directory when none is configured.
func (c *Config) InputFiles(year int) string {
	if p := c.paths(year).InputFiles; p != "" {
		return p
	}
	return filepath.Join(c.Implementation(year), "inputs")
}

// InputFor is the path of the input file for one day.
func (c *Config) InputFor(year, day int) string {
	return filepath.Join(c.InputFiles(year), fmt.Sprintf("input-%02d.txt", day))
}

// DayTemplate is the template directory applied to each day of year, or
// <DataDir>/<year>/day-template when none is configured.
func (c *Config) DayTemplate(year int) string {
	if p := c.paths(year).DayTemplate; p != "" {
		return p
	}
	dir, err := DataDir()
	if err != nil {
		dir = appName
	}
	return filepath.Join(dir, strconv.Itoa(year), "day-template")
}

// ThrottleFile is where the time of the next permitted download is kept.
func (c *Config) ThrottleFile() string {
	dir, err := DataDir()
	if err != nil {
		dir = appName
	}
	return filepath.Join(dir, "throttle")
}

// SetImplementation overrides the implementation directory for year.
func (c *Config) SetImplementation(year int, path string) {
	c.update(year, func(p *Paths) { p.Implementation = path })
}

// SetInputFiles overrides the input directory for year.
func (c *Config) SetInputFiles(year int, path string) {
	c.update(year, func(p *Paths) { p.InputFiles = path })
}

// SetDayTemplate overrides the day template directory for year.
func (c *Config) SetDayTemplate(year int, path string) {
	c.update(year, func(p *Paths) { p.DayTemplate = path })
}
