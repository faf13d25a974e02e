package config

import (
	"log"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Environment string
	GRPCAddr    string

	// Пустой RabbitURL отключает публикацию уведомлений в брокер.
	RabbitURL      string
	NotifyExchange string

	// Администратор, который заводится при старте. Роли назначает только администратор,
	// поэтому первого нужно создать так. Пустое имя: ничего не делаем.
	BootstrapAdminUsername string
	BootstrapAdminEmail    string

	DB *DBConfig
}

// Load читает .env (если есть), затем переменные окружения.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	dbCfg, err := LoadDBConfig()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Environment:    getEnv("APP_ENV", "development"),
		GRPCAddr:       getEnv("GRPC_ADDR", ":50051"),
		RabbitURL:      getEnv("RABBIT_URL", ""),
		NotifyExchange: getEnv("NOTIFY_EXCHANGE", "booking.exchange"),

		BootstrapAdminUsername: getEnv("BOOTSTRAP_ADMIN_USERNAME", ""),
		BootstrapAdminEmail:    getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),

		DB: dbCfg,
	}, nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
