// Package logconf loads GatedLogger settings from YAML, TOML or INI files and from the environment.
package logconf

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/signalfx/nullish"
	"github.com/signalfx/nullish/env"
	"github.com/signalfx/nullish/errors"
	"github.com/signalfx/nullish/pointer"
	"github.com/vaughan0/go-ini"
	"gopkg.in/yaml.v3"
)

// Format of a configuration file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatINI  Format = "ini"
)

// INISection is the section INI files keep their settings in
const INISection = "nullish"

// Config holds optional settings. A nil field leaves the logger's setting alone.
type Config struct {
	Enabled  *bool    `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Quiet    *bool    `yaml:"quiet,omitempty" toml:"quiet,omitempty"`
	Suppress []string `yaml:"suppress,omitempty" toml:"suppress,omitempty"`
}

// Production disables logging entirely
func Production() Config {
	return Config{Enabled: pointer.Bool(false)}
}

// Apply sets suppress, then enabled, then quiet on g
func (c Config) Apply(g *nullish.GatedLogger) {
	if c.Suppress != nil {
		g.SetSuppressNames(c.Suppress...)
	}
	if c.Enabled != nil {
		g.SetEnabled(*c.Enabled)
	}
	if c.Quiet != nil {
		g.SetQuiet(*c.Quiet)
	}
}

// Merge overlays configs left to right: a later non-nil field wins
func Merge(configs ...Config) Config {
	var ret Config
	for _, c := range configs {
		if c.Enabled != nil {
			ret.Enabled = pointer.Bool(*c.Enabled)
		}
		if c.Quiet != nil {
			ret.Quiet = pointer.Bool(*c.Quiet)
		}
		if c.Suppress != nil {
			ret.Suppress = append([]string{}, c.Suppress...)
		}
	}
	return ret
}

// Parse decodes data in the given format
func Parse(data []byte, format Format) (Config, error) {
	var c Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, errors.Annotate(err, "cannot decode yaml config")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &c); err != nil {
			return Config{}, errors.Annotate(err, "cannot decode toml config")
		}
	case FormatINI:
		return parseINI(data)
	default:
		return Config{}, errors.NotValidf("config format %q", format)
	}
	c.Suppress = cleanNames(c.Suppress)
	return c, nil
}

func parseINI(data []byte) (Config, error) {
	file, err := ini.Load(bytes.NewReader(data))
	if err != nil {
		return Config{}, errors.Annotate(err, "cannot decode ini config")
	}
	var c Config
	if c.Enabled, err = iniBool(file, "enabled"); err != nil {
		return Config{}, err
	}
	if c.Quiet, err = iniBool(file, "quiet"); err != nil {
		return Config{}, err
	}
	if v, ok := file.Get(INISection, "suppress"); ok {
		c.Suppress = cleanNames(strings.Split(v, ","))
	}
	return c, nil
}

func iniBool(file ini.File, key string) (*bool, error) {
	v, ok := file.Get(INISection, key)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil, errors.Annotatef(err, "cannot parse ini key %s.%s", INISection, key)
	}
	return &b, nil
}

// cleanNames trims names and drops empty ones, keeping nil as nil
func cleanNames(names []string) []string {
	if names == nil {
		return nil
	}
	ret := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			ret = append(ret, n)
		}
	}
	return ret
}

// FormatOf picks a Format from a file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".ini", ".conf":
		return FormatINI, nil
	}
	return "", errors.NotValidf("config file extension of %s", path)
}

// Load reads and parses the file at path
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Annotatef(err, "cannot read config %s", path)
	}
	c, err := Parse(data, format)
	if err != nil {
		return Config{}, errors.Annotatef(err, "cannot load config %s", path)
	}
	return c, nil
}

// FromEnv reads <prefix>_ENABLED, <prefix>_QUIET and <prefix>_SUPPRESS (comma separated).
// Unset or unparsable variables stay nil.
func FromEnv(prefix string) Config {
	return Config{
		Enabled:  env.GetBoolEnvVar(prefix+"_ENABLED", nil),
		Quiet:    env.GetBoolEnvVar(prefix+"_QUIET", nil),
		Suppress: env.GetCommaSeparatedStringEnvVar(prefix+"_SUPPRESS", nil),
	}
}
