// Package config defines the typed configuration sections shared across the application.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

// DSN returns the MySQL data source name.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
	RefreshExpDays   int    `mapstructure:"refresh_exp_days"`
}

// AuthConfig groups authentication settings.
type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the redis address in host:port form.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RealtimeConfig holds websocket delivery settings.
type RealtimeConfig struct {
	// SendBufferSize is the per-connection outbound queue length.
	SendBufferSize int `mapstructure:"send_buffer_size"`
	// ReconnectDelaysMS is the client backoff table; the last entry repeats.
	ReconnectDelaysMS []int `mapstructure:"reconnect_delays_ms"`
	// TokenRefreshLeadMinutes is how close to expiry a token gets refreshed.
	TokenRefreshLeadMinutes int `mapstructure:"token_refresh_lead_minutes"`
}

// OrderConfig holds order domain settings.
type OrderConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
	RatingMin    int    `mapstructure:"rating_min"`
	RatingMax    int    `mapstructure:"rating_max"`
}

// RateLimitConfig holds message send limits.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
	RequestsPerHour   int `mapstructure:"requests_per_hour"`
	RequestsPerDay    int `mapstructure:"requests_per_day"`
}
