package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config contiene la configuración del servidor leída del ambiente.
type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string

	AllowOrigins string
}

// LoadConfig carga la configuración desde el archivo .env si existe y el
// ambiente. El .env es opcional: en producción las variables vienen del
// ambiente directamente.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "hrs"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Reservaciones"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),

		AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("la variable DB_PASSWORD es requerida")
	}

	return cfg, nil
}

// GetDBConnString arma la cadena de conexión de Postgres.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// EmailHabilitado indica si hay configuración SMTP suficiente para enviar
// correos.
func (c *Config) EmailHabilitado() bool {
	return c.SMTPHost != "" && c.SMTPFromEmail != ""
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
