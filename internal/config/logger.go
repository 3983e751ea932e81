package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logg *logrus.Logger

// GetLogger devuelve el logger compartido de la aplicación.
func GetLogger() *logrus.Logger {
	return logg
}

func init() {
	logg = logrus.New()
	logg.SetFormatter(&logrus.JSONFormatter{})
	logg.SetOutput(os.Stdout)

	nivel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		nivel = logrus.InfoLevel
	}
	logg.SetLevel(nivel)
}
