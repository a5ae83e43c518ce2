package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	Logger LoggerConfig
	CatAPI CatAPIConfig
	Trivia TriviaConfig
	Signup SignupConfig
	Clock  ClockConfig
	Theme  ThemeConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LoggerConfig struct {
	Level string
	Env   string
}

type CatAPIConfig struct {
	BaseURL  string
	APIKey   string
	Limit    int
	CacheTTL time.Duration
}

type TriviaConfig struct {
	BaseURL  string
	Amount   int
	Category int
	// SessionTTL bounds how long an unevaluated quiz attempt is kept.
	SessionTTL time.Duration
}

type SignupConfig struct {
	BaseURL string
	Timeout time.Duration
}

type ClockConfig struct {
	// Tick is the update interval of the clock view. 5s is the
	// original compromise between precision and render cost.
	Tick time.Duration
}

type ThemeConfig struct {
	// StorageKey is the single persisted key holding the theme tag.
	StorageKey string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// The defaults cover every setting; a missing file is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		CatAPI: CatAPIConfig{
			BaseURL:  viper.GetString("catapi.base_url"),
			APIKey:   viper.GetString("catapi.api_key"),
			Limit:    viper.GetInt("catapi.limit"),
			CacheTTL: viper.GetDuration("catapi.cache_ttl"),
		},
		Trivia: TriviaConfig{
			BaseURL:    viper.GetString("trivia.base_url"),
			Amount:     viper.GetInt("trivia.amount"),
			Category:   viper.GetInt("trivia.category"),
			SessionTTL: viper.GetDuration("trivia.session_ttl"),
		},
		Signup: SignupConfig{
			BaseURL: viper.GetString("signup.base_url"),
			Timeout: viper.GetDuration("signup.timeout"),
		},
		Clock: ClockConfig{
			Tick: viper.GetDuration("clock.tick"),
		},
		Theme: ThemeConfig{
			StorageKey: viper.GetString("theme.storage_key"),
		},
	}

	// Override with environment variables if set
	if address := os.Getenv("REDIS_ADDRESS"); address != "" {
		config.Redis.Address = address
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if apiKey := os.Getenv("CAT_API_KEY"); apiKey != "" {
		config.CatAPI.APIKey = apiKey
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)

	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.SetDefault("catapi.base_url", "https://api.thecatapi.com")
	viper.SetDefault("catapi.limit", 15)
	viper.SetDefault("catapi.cache_ttl", time.Duration(0)) // 0 = first call wins until invalidated

	viper.SetDefault("trivia.base_url", "https://opentdb.com")
	viper.SetDefault("trivia.amount", 10)
	viper.SetDefault("trivia.category", 27) // Animals
	viper.SetDefault("trivia.session_ttl", 30*time.Minute)

	viper.SetDefault("signup.base_url", "https://dummyjson.com")
	viper.SetDefault("signup.timeout", 10*time.Second)

	viper.SetDefault("clock.tick", 5*time.Second)

	viper.SetDefault("theme.storage_key", "appTheme")
}
