package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// InitLogger configures the shared logger. LOG_LEVEL picks the level
// ("debug", "warn", ...); anything unset or unparseable means info.
func InitLogger() {
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}
