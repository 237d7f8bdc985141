package config

import (
	"fmt"

	"meal-marketplace-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds every runtime setting. It is built once in main and passed
// into constructors; nothing reads ambient environment after Load returns.
type Config struct {
	Port      string `env:"PORT,default=8080"`
	GinMode   string `env:"GIN_MODE,default=debug"`
	DBPath    string `env:"DB_PATH,default=meal_marketplace.db"`
	JWTSecret string `env:"JWT_SECRET,default=meal_marketplace_super_secret_2024"`
	TokenTTLH int    `env:"TOKEN_TTL_HOURS,default=24"`
	LogLevel  string `env:"LOG_LEVEL,default=info"`
}

// Load reads a local .env (if any) and decodes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load() // allow .env for local runs

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// OpenDB connects to sqlite and migrates all models.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.ProviderProfile{},
		&models.Category{},
		&models.Meal{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Review{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
