package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	EnableCORS                    bool     `mapstructure:"ENABLE_CORS"`
	AllowedOrigins                []string `mapstructure:"ALLOWED_ORIGINS"`
	StripeSecretKey               string   `mapstructure:"STRIPE_SECRET_KEY"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DATABASE_PATH", "medicare.db")
	viper.SetDefault("ENABLE_CORS", true)
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	viper.BindEnv("PORT")
	viper.BindEnv("DATABASE_PATH")
	viper.BindEnv("ENABLE_CORS")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
