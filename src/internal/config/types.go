package config

import "time"

const (
	DefaultBindAddress     = "0.0.0.0:5000"
	DefaultAdminUsername   = "admin"
	DefaultAdminPassword   = "password123"
	DefaultTokenTTLMinutes = 24 * 60
	DefaultBotName         = "Shourov AI"
	DefaultRestartDelayMs  = 3000
	DefaultReadTimeoutSec  = 15
	DefaultWriteTimeoutSec = 15

	// RestartPolicyReplace cancels a pending restart and schedules a new one.
	RestartPolicyReplace = "replace"
	// RestartPolicyReject refuses a restart while another one is pending.
	RestartPolicyReject = "reject"
)

type Config struct {
	// Server holds HTTP listener settings.
	Server *ServerConfig `toml:"server"`
	// Auth holds login and token settings.
	Auth *AuthConfig `toml:"auth"`
	// Bot holds simulated bot settings.
	Bot *BotConfig `toml:"bot"`
	// Log holds process logging settings.
	Log *LogConfig `toml:"log"`

	_absConfigFilePath string
}

type ServerConfig struct {
	// BindAddress is the host:port the API listens on (default: 0.0.0.0:5000).
	BindAddress string `toml:"bind_address" json:"bind_address" validate:"required,hostport_or_empty"`
	// UIPath is a directory with the built web UI. Empty disables static serving.
	UIPath string `toml:"ui_path" json:"ui_path"`
	// ReadTimeoutSeconds is the HTTP read timeout (default: 15).
	ReadTimeoutSeconds int `toml:"read_timeout_seconds" json:"read_timeout_seconds" validate:"gte=0"`
	// WriteTimeoutSeconds is the HTTP write timeout (default: 15).
	WriteTimeoutSeconds int `toml:"write_timeout_seconds" json:"write_timeout_seconds" validate:"gte=0"`
}

type AuthConfig struct {
	// AdminUsername is the seeded administrator login (default: admin).
	AdminUsername string `toml:"admin_username" json:"admin_username" validate:"required"`
	// AdminPassword is the seeded administrator password (default: password123).
	AdminPassword string `toml:"admin_password" json:"admin_password" validate:"required"`
	// TokenSecret signs login tokens. A random secret is generated when empty.
	TokenSecret string `toml:"token_secret" json:"token_secret"`
	// TokenTTLMinutes is the token lifetime (default: 1440).
	TokenTTLMinutes int `toml:"token_ttl_minutes" json:"token_ttl_minutes" validate:"gte=0"`
	// RequireToken makes the server reject API calls without a valid bearer token.
	RequireToken bool `toml:"require_token" json:"require_token"`
}

type BotConfig struct {
	// Name is used in canned chat replies (default: Shourov AI).
	Name string `toml:"name" json:"name" validate:"required"`
	// RestartDelayMs is the delay before a restarting bot comes back online
	// (default: 3000). Zero makes restarts complete immediately.
	RestartDelayMs *int `toml:"restart_delay_ms" json:"restart_delay_ms" validate:"required,gte=0"`
	// RestartPolicy is either "replace" (default) or "reject".
	RestartPolicy string `toml:"restart_policy" json:"restart_policy" validate:"required,oneof=replace reject"`
}

type LogConfig struct {
	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" json:"verbose"`
	// Timestamps prefixes log lines with the current time.
	Timestamps bool `toml:"timestamps" json:"timestamps"`
	// NoColor disables ANSI colors.
	NoColor bool `toml:"no_color" json:"no_color"`
}

// RestartDelay returns the configured restart delay.
func (b *BotConfig) RestartDelay() time.Duration {
	if b.RestartDelayMs == nil {
		return DefaultRestartDelayMs * time.Millisecond
	}
	return time.Duration(*b.RestartDelayMs) * time.Millisecond
}

// TokenTTL returns the configured token lifetime.
func (a *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// ReadTimeout returns the HTTP read timeout.
func (s *ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the HTTP write timeout.
func (s *ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset sections and zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Bot == nil {
		c.Bot = &BotConfig{}
	}
	if c.Log == nil {
		c.Log = &LogConfig{}
	}

	if c.Server.BindAddress == "" {
		c.Server.BindAddress = DefaultBindAddress
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = DefaultReadTimeoutSec
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = DefaultWriteTimeoutSec
	}

	if c.Auth.AdminUsername == "" {
		c.Auth.AdminUsername = DefaultAdminUsername
	}
	if c.Auth.AdminPassword == "" {
		c.Auth.AdminPassword = DefaultAdminPassword
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = DefaultTokenTTLMinutes
	}

	if c.Bot.Name == "" {
		c.Bot.Name = DefaultBotName
	}
	if c.Bot.RestartDelayMs == nil {
		delay := DefaultRestartDelayMs
		c.Bot.RestartDelayMs = &delay
	}
	if c.Bot.RestartPolicy == "" {
		c.Bot.RestartPolicy = RestartPolicyReplace
	}
}
