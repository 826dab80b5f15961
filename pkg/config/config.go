package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string

	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	AutoReplyEnabled bool
	AutoReplyDelay   time.Duration
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("STORAGE_BUCKET", ""),

		RazorpayKeyID:     getEnv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		Currency:          getEnv("CURRENCY", "INR"),

		AutoReplyEnabled: getEnvAsBool("AUTO_REPLY_ENABLED", true),
		AutoReplyDelay:   time.Duration(getEnvAsInt64("AUTO_REPLY_DELAY_MS", 1000)) * time.Millisecond,
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
