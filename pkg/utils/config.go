package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	CORSOrigin string
}

type DatabaseConfig struct {
	URI                   string
	Name                  string
	MaxPoolSize           uint64
	ConnectTimeoutSeconds int
	SocketTimeoutSeconds  int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type AuthConfig struct {
	BcryptCost int
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	SampleUsers   int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "shop-backend")
	viper.SetDefault("PORT", "3001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("DB_NAME", "shop")
	viper.SetDefault("DB_MAX_POOL_SIZE", 10)
	viper.SetDefault("DB_CONNECT_TIMEOUT_SECONDS", 10)
	viper.SetDefault("DB_SOCKET_TIMEOUT_SECONDS", 45)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("SEED_SAMPLE_USERS", 6)

	// .env file is optional; process env alone is enough (seed script, containers)
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       viper.GetString("APP_NAME"),
			Port:       viper.GetString("PORT"),
			Debug:      viper.GetBool("DEBUG"),
			LogPath:    viper.GetString("LOG_PATH"),
			CORSOrigin: viper.GetString("CORS_ORIGIN"),
		},
		Database: DatabaseConfig{
			URI:                   viper.GetString("MONGODB_URI"),
			Name:                  viper.GetString("DB_NAME"),
			MaxPoolSize:           viper.GetUint64("DB_MAX_POOL_SIZE"),
			ConnectTimeoutSeconds: viper.GetInt("DB_CONNECT_TIMEOUT_SECONDS"),
			SocketTimeoutSeconds:  viper.GetInt("DB_SOCKET_TIMEOUT_SECONDS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Seed: SeedConfig{
			AdminEmail:    viper.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: viper.GetString("SEED_ADMIN_PASSWORD"),
			SampleUsers:   viper.GetInt("SEED_SAMPLE_USERS"),
		},
	}

	return config, nil
}
