package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Mistral    MistralConfig    `mapstructure:"mistral"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Moderation ModerationConfig `mapstructure:"moderation"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MistralConfig struct {
	// APIKey comes from the MISTRAL_API_KEY environment variable, never
	// from the config file.
	APIKey  string        `mapstructure:"-"`
	Model   string        `mapstructure:"model"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StorageConfig struct {
	WordListFile   string `mapstructure:"word_list_file"`
	FlagConfigFile string `mapstructure:"flag_config_file"`
	VocabularyFile string `mapstructure:"vocabulary_file"`
}

type ModerationConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

var globalConfig Config

func Load(configPath string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No file is fine, environment variables and defaults apply.
	}

	if err := viper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaultValues()

	globalConfig.Mistral.APIKey = os.Getenv("MISTRAL_API_KEY")
	if globalConfig.Mistral.APIKey == "" {
		return fmt.Errorf("MISTRAL_API_KEY is not set")
	}

	return nil
}

func setDefaultValues() {
	if globalConfig.Server.Port == 0 {
		globalConfig.Server.Port = 5004
	}
	if globalConfig.Server.MetricsPort == 0 {
		globalConfig.Server.MetricsPort = 9090
	}
	if globalConfig.Mistral.Timeout == 0 {
		globalConfig.Mistral.Timeout = 10 * time.Second
	}
	if globalConfig.Storage.WordListFile == "" {
		globalConfig.Storage.WordListFile = "data/mots_interdits.txt"
	}
	if globalConfig.Storage.FlagConfigFile == "" {
		globalConfig.Storage.FlagConfigFile = "data/flag_config.json"
	}
	if globalConfig.Moderation.CacheTTL == 0 {
		globalConfig.Moderation.CacheTTL = 10 * time.Minute
	}
}

func GetConfig() *Config {
	return &globalConfig
}
