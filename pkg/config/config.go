// Package config reads rsm settings from the user config file
// ($XDG_CONFIG_HOME/rsm/config.yaml), .rsm-config.yaml in the working
// directory and RSM_* environment variables, each overriding the one before.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Document    string `mapstructure:"document" yaml:"document,omitempty"`
	IgnoreFile  string `mapstructure:"ignore_file" yaml:"ignore_file,omitempty"`
	Output      string `mapstructure:"output" yaml:"output,omitempty"`
	MainBranch  string `mapstructure:"main_branch" yaml:"main_branch,omitempty"`
	Compiler    string `mapstructure:"compiler" yaml:"compiler,omitempty"`
	AuthorName  string `mapstructure:"author_name" yaml:"author_name,omitempty"`
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email,omitempty"`
}

// Keys lists every setting in the order `rsm config list` shows them.
var Keys = []string{"document", "ignore_file", "output", "main_branch", "compiler", "author_name", "author_email"}

var defaults = map[string]string{
	"document":     "resume.yaml",
	"ignore_file":  ".gitignore",
	"output":       "resume.tex",
	"main_branch":  "main",
	"compiler":     "pdflatex",
	"author_name":  "rsm",
	"author_email": "rsm@localhost",
}

const userConfig = "rsm/config.yaml"

var (
	configFile = ".rsm-config.yaml"
	v          *viper.Viper
)

func init() {
	v = newViper()
}

func newViper() *viper.Viper {
	nv := viper.New()
	for k, d := range defaults {
		nv.SetDefault(k, d)
	}
	nv.SetEnvPrefix("RSM")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	// Missing files are fine at either level.
	if global, err := xdg.SearchConfigFile(userConfig); err == nil {
		nv.SetConfigFile(global)
		_ = nv.MergeInConfig()
	}
	nv.SetConfigFile(configFile)
	_ = nv.MergeInConfig()
	return nv
}

// Path is the project config file Set writes to.
func Path() string {
	return configFile
}

// UserPath is where the user config file lives, whether or not it exists.
func UserPath() string {
	return filepath.Join(xdg.ConfigHome, userConfig)
}

func Load() (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func known(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key: %s (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

func Get(key string) (string, error) {
	if err := known(key); err != nil {
		return "", err
	}
	return v.GetString(key), nil
}

// Set stores a value in the project config file. Values inherited from the
// user file or the environment are not copied, and neither are defaults.
func Set(key, value string) error {
	if err := known(key); err != nil {
		return err
	}
	v.Set(key, value) // keep viper in sync

	project := viper.New()
	project.SetConfigFile(configFile)
	if err := project.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	project.Set(key, value)

	var cfg Config
	if err := project.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return writeConfig(withoutDefaults(cfg))
}

func withoutDefaults(c Config) Config {
	drop := func(field *string, key string) {
		if *field == defaults[key] {
			*field = ""
		}
	}
	drop(&c.Document, "document")
	drop(&c.IgnoreFile, "ignore_file")
	drop(&c.Output, "output")
	drop(&c.MainBranch, "main_branch")
	drop(&c.Compiler, "compiler")
	drop(&c.AuthorName, "author_name")
	drop(&c.AuthorEmail, "author_email")
	return c
}

func writeConfig(cfg Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(configFile, buf.Bytes(), 0644)
}

func All() (map[string]string, error) {
	out := make(map[string]string, len(Keys))
	for _, k := range Keys {
		out[k] = v.GetString(k)
	}
	return out, nil
}

// ResetForTest points the project config at testPath and rereads every
// source. Only use in tests.
func ResetForTest(testPath string) {
	configFile = filepath.Join(testPath, ".rsm-config.yaml")
	v = newViper()
}
