package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// AllowedOrigins is the list of origins permitted by CORS
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode"`
	MaxConnections int    `mapstructure:"max_connections"`
}

// DSN returns the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AdminConfig holds the admin credential pair.
// The defaults are development fallbacks; production deployments are
// expected to override both via SHOWCASE_ADMIN_USERNAME/PASSWORD.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// MailConfig holds mail relay configuration
type MailConfig struct {
	// Provider is the mail provider to use. Only "gmail" is implemented.
	Provider string `mapstructure:"provider"`
	// AppName is the application name shown in broadcast emails
	AppName string `mapstructure:"app_name"`
	// SenderName is the display name used in the From header
	SenderName string `mapstructure:"sender_name"`
	// Gmail holds Gmail API configuration
	Gmail GmailMailConfig `mapstructure:"gmail"`
}

// GmailMailConfig holds Gmail API credentials
type GmailMailConfig struct {
	// CredentialsJSON is the service account credentials JSON content
	CredentialsJSON string `mapstructure:"credentials_json"`
	// ClientID for OAuth2 token-based auth (alternative to service account)
	ClientID string `mapstructure:"client_id"`
	// ClientSecret for OAuth2 token-based auth
	ClientSecret string `mapstructure:"client_secret"`
	// RefreshToken for OAuth2 token-based auth
	RefreshToken string `mapstructure:"refresh_token"`
	// SenderAddress is the "From" email address
	SenderAddress string `mapstructure:"sender_address"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/showcase")

	setDefaults(v)

	// Config file is optional, defaults and env vars are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SHOWCASE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "showcase")
	v.SetDefault("database.user", "showcase")
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_connections", 25)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Admin credential fallbacks for development
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin")

	// Mail defaults. The credential keys default to empty so viper
	// resolves their SHOWCASE_MAIL_GMAIL_* env vars during Unmarshal;
	// keys without a default are invisible to AutomaticEnv.
	v.SetDefault("mail.provider", "gmail")
	v.SetDefault("mail.app_name", "FOXuse")
	v.SetDefault("mail.sender_name", "FOXuse Team")
	v.SetDefault("mail.gmail.credentials_json", "")
	v.SetDefault("mail.gmail.client_id", "")
	v.SetDefault("mail.gmail.client_secret", "")
	v.SetDefault("mail.gmail.refresh_token", "")
	v.SetDefault("mail.gmail.sender_address", "")
}
