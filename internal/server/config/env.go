package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays settings from the process environment. An optional
// .env file is loaded first so local development matches deployment.
//
// Recognized variables:
//
//	HTTP_ADDR             bind address
//	JWT_SECRET            token signing secret
//	TOKEN_VALIDITY        session token lifetime ("168h")
//	CODE_VALIDITY         verification code lifetime ("5m")
//	ACTIVITY_FILE         activity store path
//	DEV_ECHO_CODE         "true"/"false"
//	CORS_ALLOWED_ORIGINS  comma-separated origin list
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddrHTTP = getEnv("HTTP_ADDR", config.EndpointAddrHTTP)
	config.SecretKey = getEnv("JWT_SECRET", config.SecretKey)
	config.TokenValidityDuration = getEnvDuration("TOKEN_VALIDITY", config.TokenValidityDuration)
	config.CodeValidityDuration = getEnvDuration("CODE_VALIDITY", config.CodeValidityDuration)
	config.ActivityFile = getEnv("ACTIVITY_FILE", config.ActivityFile)
	config.DevEchoCode = getEnvBool("DEV_ECHO_CODE", config.DevEchoCode)
	config.CORSAllowedOrigins = getEnvSlice("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		return strings.Split(v, ",")
	}
	return fallback
}
