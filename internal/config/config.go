// Package config loads wex settings from an optional config file, WEX_*
// environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Name is the config file base name and the environment prefix.
const Name = "wex"

// Configuration keys.
const (
	KeyTokensSource    = "tokens.source"
	KeyOutputDir       = "output.dir"
	KeyOutputPlugins   = "output.plugins"
	KeyOutputTemplates = "output.templates"
	KeyCSSDarkSelector = "css.dark-selector"
	KeyCSSFilename     = "css.filename"
	KeyLogLevel        = "log.level"
)

// EnvKeyReplacer maps configuration keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Field is one documented configuration setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable overriding this field.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Defaults lists every documented setting with its default value.
var Defaults = []Field{
	{Key: KeyTokensSource, Value: "tokens.json", Description: "Token source document (JSON or YAML)"},
	{Key: KeyOutputDir, Value: ".", Description: "Directory receiving generated files"},
	{Key: KeyOutputPlugins, Value: []string{"css"}, Description: "Output plugins to run (css, json, tailwind, swatch)"},
	{Key: KeyOutputTemplates, Value: "", Description: "Directory holding custom plugin templates, one subdirectory per plugin"},
	{Key: KeyCSSDarkSelector, Value: ".dark", Description: "Selector wrapping dark mode tokens in generated CSS"},
	{Key: KeyCSSFilename, Value: "tokens.css", Description: "Name of the generated stylesheet"},
	{Key: KeyLogLevel, Value: "info", Description: "Log level (trace, debug, info, warn, error, off)"},
}

// Setup prepares v: defaults, environment bindings and the config file.
// An explicit file must exist; otherwise wex.{yaml,json,toml} is searched for
// in the working directory and the user config directory, and a missing
// file is not an error.
func Setup(v *viper.Viper, fs afero.Fs, file string) error {
	v.SetFs(fs)

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for _, f := range Defaults {
		v.SetDefault(f.Key, f.Value)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", file, err)
		}
		return nil
	}

	v.SetConfigName(Name)
	for _, dir := range SearchPaths() {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// SearchPaths returns the directories searched for a config file.
func SearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, Name))
	}
	return paths
}

// ApplyFlags copies configured values into flags the user did not set on
// the command line, so plugin flags such as css.dark-selector honour the
// config file and environment.
func ApplyFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !v.IsSet(f.Name) {
			return
		}

		value := v.GetString(f.Name)
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			errs = append(errs, sv.Replace(v.GetStringSlice(f.Name)))
			return
		}
		if err := flags.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid value %q for %s: %w", value, f.Name, err))
		}
	})
	return errors.Join(errs...)
}

// Plugins returns the configured output plugin names. Entries may be
// separated by commas or whitespace, as environment variables often are.
func Plugins(v *viper.Viper) []string {
	var names []string
	for _, entry := range v.GetStringSlice(KeyOutputPlugins) {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
