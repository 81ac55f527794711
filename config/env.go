package config

import "github.com/joho/godotenv"

// LoadEnv reads a local .env file when one exists. Deployed environments
// pass real env vars instead, so a missing file is only worth a warning.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		Logger.Warn("No .env file loaded, using process environment: ", err)
	}
}
