// Package config resolves where the datasets live and how the shells run.
//
// Sources, lowest precedence first: defaults, mopac.toml, MOPAC_* environment
// variables, then any flags the CLI binds into the same viper instance.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

// FileName is the config file looked up when no explicit path is given.
const FileName = "mopac.toml"

type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type DataConfig struct {
	Dir      string `mapstructure:"dir"`
	Elements string `mapstructure:"elements"`
	Methods  string `mapstructure:"methods"`
	Keywords string `mapstructure:"keywords"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key so env lookups and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "dados")
	v.SetDefault("data.elements", "elements.json")
	v.SetDefault("data.methods", "methods_data.json")
	v.SetDefault("data.keywords", "keywords.json")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
}

// New builds a viper instance with defaults and env binding. When configPath
// is empty the default locations are searched and a missing file is fine; an
// explicit path must exist.
func New(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("MOPAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configPath)
		}
		return v, nil
	}

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "mopac-assistant"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}
	return v, nil
}

// Load unmarshals v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}

func (c *Config) ElementsPath() string { return c.resolve(c.Data.Elements) }
func (c *Config) MethodsPath() string  { return c.resolve(c.Data.Methods) }
func (c *Config) KeywordsPath() string { return c.resolve(c.Data.Keywords) }

func (c *Config) resolve(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}
