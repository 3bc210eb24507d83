package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	SMS          SMSConfig
	OTP          OTPConfig
	Pricing      PricingConfig
	Registration RegistrationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SMSConfig struct {
	APIKey         string
	Username       string
	SenderID       string
	BaseURL        string
	TimeoutSeconds int
}

type OTPConfig struct {
	ExpiryMinutes int
	Length        int
}

type PricingConfig struct {
	PricePerLiter float64
}

type RegistrationConfig struct {
	Region         string
	ResendVerified bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "Filling Station API")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SMS_BASE_URL", "https://api.africastalking.com/version1/messaging/bulk")
	viper.SetDefault("SMS_TIMEOUT_SECONDS", 10)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("OTP_LENGTH", 6)
	viper.SetDefault("PRICE_PER_LITER", 2075.0)
	viper.SetDefault("PHONE_REGION", "TZ")
	viper.SetDefault("RESEND_VERIFIED", true)

	// .env is optional, environment variables alone are enough
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		SMS: SMSConfig{
			APIKey:         viper.GetString("SMS_API_KEY"),
			Username:       viper.GetString("SMS_USERNAME"),
			SenderID:       viper.GetString("SMS_SENDER_ID"),
			BaseURL:        viper.GetString("SMS_BASE_URL"),
			TimeoutSeconds: viper.GetInt("SMS_TIMEOUT_SECONDS"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
			Length:        viper.GetInt("OTP_LENGTH"),
		},
		Pricing: PricingConfig{
			PricePerLiter: viper.GetFloat64("PRICE_PER_LITER"),
		},
		Registration: RegistrationConfig{
			Region:         viper.GetString("PHONE_REGION"),
			ResendVerified: viper.GetBool("RESEND_VERIFIED"),
		},
	}

	return config, nil
}
