package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	sharedcfg "nceerrors/internal/config"
)

const (
	defaultAPIBase        = "http://127.0.0.1:5000"
	defaultPageLimit      = 20
	defaultRequestTimeout = 30
	defaultLogLevel       = "warn"
	defaultConfigDir      = ".nceerrors"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	APIBase        string        `mapstructure:"api_base"`
	PageLimit      int           `mapstructure:"page_limit"`
	RequestTimeout time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigFile     string        `mapstructure:"-"`
}

// Load собирает конфигурацию клиента: .env, переменные окружения,
// YAML файл (cfgFile или ~/.nceerrors/config.yaml) и флаги, привязанные к v
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if _, err := sharedcfg.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки .env файла: %v\n", err)
	}

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", sharedcfg.EnvLocal)
	v.SetDefault("API_BASE", defaultAPIBase)
	v.SetDefault("PAGE_LIMIT", defaultPageLimit)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации %s: %w", cfgFile, err)
		}
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		v.AddConfigPath(filepath.Join(homeDir, defaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
			}
		}
	}

	config := &Config{
		Env:            v.GetString("APP_ENV"),
		APIBase:        v.GetString("API_BASE"),
		PageLimit:      v.GetInt("PAGE_LIMIT"),
		RequestTimeout: time.Duration(v.GetInt("REQUEST_TIMEOUT_SECONDS")) * time.Second,
		LogLevel:       v.GetString("LOG_LEVEL"),
		ConfigFile:     v.ConfigFileUsed(),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	return config, nil
}

// MustLoad как Load с глобальным viper, паникует при ошибке
func MustLoad(cfgFile string) *Config {
	config, err := Load(viper.GetViper(), cfgFile)
	if err != nil {
		panic(err.Error())
	}
	return config
}

func (c *Config) validate() error {
	if !sharedcfg.ValidEnv(c.Env) {
		return fmt.Errorf("неизвестное окружение APP_ENV=%q", c.Env)
	}
	if c.APIBase == "" {
		return fmt.Errorf("api_base не может быть пустым")
	}

	u, err := url.Parse(c.APIBase)
	if err != nil {
		return fmt.Errorf("некорректный api_base: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_base должен быть http(s) адресом, получено %q", c.APIBase)
	}

	if c.PageLimit < 1 {
		return fmt.Errorf("page_limit должен быть больше 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout_seconds должен быть больше 0")
	}
	return nil
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == sharedcfg.EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == sharedcfg.EnvLocal || c.Env == ""
}
