package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Filters   FilterConfig    `mapstructure:"filters"`
	LogLevel  string          `mapstructure:"log_level"`
}

type TokenizerConfig struct {
	Mode            string `mapstructure:"mode"`
	Dict            string `mapstructure:"dict"`
	Shrink          bool   `mapstructure:"shrink"`
	DictPath        string `mapstructure:"dict_path"`
	UserDict        string `mapstructure:"user_dict"`
	RequireJapanese bool   `mapstructure:"require_japanese"`
}

type FilterConfig struct {
	Particles   bool `mapstructure:"particles"`
	Punctuation bool `mapstructure:"punctuation"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Mode:            "balanced",
			Dict:            "ipa",
			Shrink:          false,
			DictPath:        "",
			UserDict:        "",
			RequireJapanese: true,
		},
		Filters: FilterConfig{
			Particles:   false,
			Punctuation: false,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("tokenizer-mode", defaults.Tokenizer.Mode, "Segmentation granularity (coarse|balanced|fine)")
	fs.String("tokenizer-dict", defaults.Tokenizer.Dict, "Dictionary variant (ipa|uni)")
	fs.Bool("tokenizer-shrink", defaults.Tokenizer.Shrink, "Use the reduced-feature dictionary build")
	fs.String("tokenizer-dict-path", defaults.Tokenizer.DictPath, "Path to a compiled dictionary file (overrides --tokenizer-dict)")
	fs.String("tokenizer-user-dict", defaults.Tokenizer.UserDict, "Path to a kagome user dictionary")
	fs.Bool("tokenizer-require-japanese", defaults.Tokenizer.RequireJapanese, "Reject input that contains no Japanese characters")
	fs.Bool("filters-particles", defaults.Filters.Particles, "Drop particle tokens from results")
	fs.Bool("filters-punctuation", defaults.Filters.Punctuation, "Drop punctuation tokens from results")
	fs.String("log-level", defaults.LogLevel, "Log level (trace|debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("TXT2ANKI")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("txt2anki")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("tokenizer.mode", c.Tokenizer.Mode)
	v.SetDefault("tokenizer.dict", c.Tokenizer.Dict)
	v.SetDefault("tokenizer.shrink", c.Tokenizer.Shrink)
	v.SetDefault("tokenizer.dict_path", c.Tokenizer.DictPath)
	v.SetDefault("tokenizer.user_dict", c.Tokenizer.UserDict)
	v.SetDefault("tokenizer.require_japanese", c.Tokenizer.RequireJapanese)
	v.SetDefault("filters.particles", c.Filters.Particles)
	v.SetDefault("filters.punctuation", c.Filters.Punctuation)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("tokenizer.mode", "tokenizer-mode")
	v.RegisterAlias("tokenizer.dict", "tokenizer-dict")
	v.RegisterAlias("tokenizer.shrink", "tokenizer-shrink")
	v.RegisterAlias("tokenizer.dict_path", "tokenizer-dict-path")
	v.RegisterAlias("tokenizer.user_dict", "tokenizer-user-dict")
	v.RegisterAlias("tokenizer.require_japanese", "tokenizer-require-japanese")
	v.RegisterAlias("filters.particles", "filters-particles")
	v.RegisterAlias("filters.punctuation", "filters-punctuation")
	v.RegisterAlias("log_level", "log-level")
}
