package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.yaml when present; environment variables always override it.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("MAP_FILE", "./data/mapdata.txt")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("ROUTE_CACHE_SIZE", 4096)
	viper.SetDefault("MAX_SETTLED_NODES", 0)
	viper.SetDefault("NEARBY_MAX_RESULTS", 20)
	viper.SetDefault("RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")
}
