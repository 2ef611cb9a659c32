package config

import (
	"os"
	"strings"

	"github.com/lwch/logging"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	tokenizer "github.com/lwch/seqtokenizer"
)

// Tokenizer kinds.
const (
	KindChar    = "char"
	KindFile    = "file"
	KindListOps = "listops"
	KindByte    = "byte"
	KindImage   = "image"
)

// EnvPrefix prefixes every environment override, e.g. LRATOK_TOKENIZER_KIND.
const EnvPrefix = "LRATOK"

// Config stores all configuration of the tool.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
}

// TokenizerConfig selects and parameterizes one tokenizer.
type TokenizerConfig struct {
	Kind      string      `mapstructure:"kind"`
	MaxLength int         `mapstructure:"maxLength"`
	Pad       bool        `mapstructure:"pad"`
	Pair      bool        `mapstructure:"pair"`
	VocabPath string      `mapstructure:"vocabPath"`
	Corpus    []string    `mapstructure:"corpus"`
	Byte      ByteConfig  `mapstructure:"byte"`
	File      FileConfig  `mapstructure:"file"`
	Image     ImageConfig `mapstructure:"image"`
}

type ByteConfig struct {
	UseBos bool `mapstructure:"useBos"`
	UseEos bool `mapstructure:"useEos"`
}

type FileConfig struct {
	MinFreq   int     `mapstructure:"minFreq"`
	MaxSize   int     `mapstructure:"maxSize"`
	LowerCase bool    `mapstructure:"lowerCase"`
	Delimiter *string `mapstructure:"delimiter"`
	AddBos    bool    `mapstructure:"addBos"`
	AddEos    bool    `mapstructure:"addEos"`
}

type ImageConfig struct {
	VocabSize int `mapstructure:"vocabSize"`
}

// LoadConfig reads configuration from file or environment variables. An
// empty configPath looks for config.yaml in the working directory.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("tokenizer.kind", KindByte)
	v.SetDefault("tokenizer.maxLength", 1024)
	v.SetDefault("tokenizer.pad", true)
	v.SetDefault("tokenizer.pair", false)
	v.SetDefault("tokenizer.vocabPath", "")
	v.SetDefault("tokenizer.corpus", []string{})
	v.SetDefault("tokenizer.byte.useBos", false)
	v.SetDefault("tokenizer.byte.useEos", true)
	v.SetDefault("tokenizer.file.minFreq", 0)
	v.SetDefault("tokenizer.file.maxSize", 0)
	v.SetDefault("tokenizer.file.lowerCase", true)
	v.SetDefault("tokenizer.file.addBos", false)
	v.SetDefault("tokenizer.file.addEos", true)
	v.SetDefault("tokenizer.image.vocabSize", tokenizer.NoVocabSize)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config file")
		}
		logging.Info("no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode into struct")
	}
	cfg.Tokenizer.Kind = strings.ToLower(cfg.Tokenizer.Kind)
	if err := cfg.Tokenizer.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c TokenizerConfig) Validate() error {
	switch c.Kind {
	case KindChar:
		if len(c.Corpus) == 0 {
			return errors.Errorf("tokenizer %q needs a corpus", c.Kind)
		}
	case KindFile:
		if len(c.Corpus) == 0 && c.VocabPath == "" {
			return errors.Errorf("tokenizer %q needs a corpus or a vocabPath", c.Kind)
		}
	case KindListOps:
		if c.VocabPath == "" {
			return errors.Errorf("tokenizer %q needs a vocabPath", c.Kind)
		}
	case KindByte, KindImage:
	default:
		return errors.Errorf("unknown tokenizer kind %q", c.Kind)
	}
	if c.MaxLength < 0 {
		return errors.Errorf("invalid maxLength %d", c.MaxLength)
	}
	return nil
}

// FileOptions converts the file section into tokenizer options.
func (c FileConfig) FileOptions() tokenizer.FileOptions {
	opts := tokenizer.DefaultFileOptions()
	opts.MinFreq = c.MinFreq
	opts.MaxSize = c.MaxSize
	opts.LowerCase = c.LowerCase
	opts.Delimiter = c.Delimiter
	return opts
}

// CountFile counts the corpus files and builds a frequency tokenizer.
func (c TokenizerConfig) CountFile() (*tokenizer.FileTokenizer, error) {
	if len(c.Corpus) == 0 {
		return nil, errors.New("no corpus to count")
	}
	tk, err := tokenizer.NewFileTokenizer(c.File.FileOptions())
	if err != nil {
		return nil, err
	}
	if err := tk.CountFiles(c.Corpus...); err != nil {
		return nil, err
	}
	if err := tk.Build(); err != nil {
		return nil, err
	}
	return tk, nil
}

// New builds the configured tokenizer, reading and counting the corpus
// when the kind needs one.
func (c TokenizerConfig) New() (tokenizer.Tokenizer, error) {
	switch c.Kind {
	case KindChar:
		var sb strings.Builder
		for _, path := range c.Corpus {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, errors.Wrap(err, "read corpus")
			}
			sb.Write(data)
		}
		tk, err := tokenizer.NewCharTokenizer(sb.String())
		if err != nil {
			return nil, err
		}
		return tk, nil
	case KindFile:
		var tk *tokenizer.FileTokenizer
		var err error
		if len(c.Corpus) == 0 {
			tk, err = tokenizer.LoadFileTokenizer(c.VocabPath, c.File.FileOptions())
		} else {
			tk, err = c.CountFile()
		}
		if err != nil {
			return nil, err
		}
		return tk, nil
	case KindListOps:
		tk, err := tokenizer.LoadListOpsTokenizer(c.VocabPath)
		if err != nil {
			return nil, err
		}
		return tk, nil
	case KindByte:
		return tokenizer.NewByteTokenizer(tokenizer.ByteOptions{
			UseBos: c.Byte.UseBos,
			UseEos: c.Byte.UseEos,
		}), nil
	case KindImage:
		return tokenizer.NewImageTokenizer(c.Image.VocabSize), nil
	}
	return nil, errors.Errorf("unknown tokenizer kind %q", c.Kind)
}
