package config

import (
	"encoding/json"
	"os"

	"github.com/shazhupan/activity-portal/internal/flagx"
	"github.com/shazhupan/activity-portal/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Duration fields use timex.Duration so both "5m"
// strings and integer nanoseconds parse. After unmarshalling, the set
// fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	CodeValidityDuration  timex.Duration `json:"code_validity_duration"`
	ActivityFile          string         `json:"activity_file"`
	DevEchoCode           *bool          `json:"dev_echo_code"`
	CORSAllowedOrigins    []string       `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags;
// when neither is set, no JSON file is loaded. Fields absent from the
// file keep their current values. An unreadable or invalid file panics:
// a requested config file that cannot be applied is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.CodeValidityDuration.Duration != 0 {
		config.CodeValidityDuration = c.CodeValidityDuration.Duration
	}
	if c.ActivityFile != "" {
		config.ActivityFile = c.ActivityFile
	}
	if c.DevEchoCode != nil {
		config.DevEchoCode = *c.DevEchoCode
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}
