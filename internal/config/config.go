// Package config provides small helpers over Viper for the CLI.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}
