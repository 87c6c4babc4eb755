// Package config handles configuration for the server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the activity portal server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Do not
//     use the development default in production.
//   - TokenValidityDuration: session token lifetime.
//   - CodeValidityDuration: verification code lifetime.
//   - ActivityFile: path of the JSON file backing the activity store.
//   - DevEchoCode: echo freshly issued verification codes in the
//     send-code response. Development only; must be off in production.
//   - CORSAllowedOrigins: origins allowed by the CORS middleware.
type Config struct {
	EndpointAddrHTTP      string
	SecretKey             string
	TokenValidityDuration time.Duration
	CodeValidityDuration  time.Duration
	ActivityFile          string
	DevEchoCode           bool
	CORSAllowedOrigins    []string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.SecretKey = "dev-secret-change-in-production"
	c.TokenValidityDuration = 7 * 24 * time.Hour
	c.CodeValidityDuration = 5 * time.Minute
	c.ActivityFile = "activities.json"
	c.DevEchoCode = true
	c.CORSAllowedOrigins = []string{"*"}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
