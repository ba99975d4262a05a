package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config reúne toda a configuração de inicialização do processo.
// Nenhum pacote lê variáveis de ambiente fora daqui.
type Config struct {
	AppPort string

	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSSLDisable bool
	DBReset      bool // destrutivo: derruba e recria o schema na subida

	UploadDir string // destino dos boletos gerados pela divisão de PDF
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	return &Config{
		AppPort:      getEnv("APP_PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USERNAME", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "boletos"),
		DBSSLDisable: getBoolEnv("DB_SSL_MODE_DISABLE", true),
		DBReset:      getBoolEnv("DB_RESET", false),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads/boletos"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true"
}
