package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every recognized option. It is built once in main and passed
// into the components that need it; nothing reads the environment after Load.
type Config struct {
	GeminiAPIKey       string
	AlphaVantageAPIKey string
	GeminiModel        string
	Timeout            time.Duration
	Top                int
	Format             string
}

// Load reads an optional .env file, an optional stockmind.yaml in the working
// directory, and the environment. Environment values win over the config file.
func Load() Config {
	// .env is a convenience for local runs; real environment always wins.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("stockmind")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("top", 3)
	v.SetDefault("format", "text")

	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("alpha_vantage_api_key", "ALPHA_VANTAGE_API_KEY")
	_ = v.BindEnv("gemini_model", "STOCKMIND_GEMINI_MODEL")
	_ = v.BindEnv("timeout", "STOCKMIND_TIMEOUT")
	_ = v.BindEnv("top", "STOCKMIND_TOP")
	_ = v.BindEnv("format", "STOCKMIND_FORMAT")
	v.AutomaticEnv()

	return Config{
		GeminiAPIKey:       v.GetString("gemini_api_key"),
		AlphaVantageAPIKey: v.GetString("alpha_vantage_api_key"),
		GeminiModel:        v.GetString("gemini_model"),
		Timeout:            v.GetDuration("timeout"),
		Top:                v.GetInt("top"),
		Format:             v.GetString("format"),
	}
}
