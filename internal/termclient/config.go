package termclient

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the client configuration.
type Config struct {
	Server struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"server"`
}

var Cfg *Config

// LoadConfig reads configs/config.yaml and the environment.
func LoadConfig() {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %s", err)
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Fatalf("Unable to decode config into struct: %v", err)
	}
}
