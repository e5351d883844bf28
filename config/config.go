package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Cache    Cache
}

type Server struct {
	Port string
}

type Database struct {
	// Driver selects the gorm driver: "postgres" or "sqlite".
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// Path is the sqlite database file, used when Driver is "sqlite".
	Path string
}

type Auth struct {
	JWTSecret     string
	TokenTTLHours int
}

type Cache struct {
	TTLMinutes int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "darkmirror.sqlite")
	viper.SetDefault("TOKEN_TTL_HOURS", 24)
	viper.SetDefault("CACHE_TTL_MINUTES", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Driver = viper.GetString("DATABASE_DRIVER")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.Path = viper.GetString("DATABASE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenTTLHours = viper.GetInt("TOKEN_TTL_HOURS")
	config.Cache.TTLMinutes = viper.GetInt("CACHE_TTL_MINUTES")

	if config.Auth.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, using insecure development default")
		config.Auth.JWTSecret = "darkmirror-dev-secret"
	}

	log.Info().Str("port", config.Server.Port).Str("driver", config.Database.Driver).Msg("Config loaded")
	return &config, nil
}
