package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultSessionMaxAge is the lifetime of an issued session token
	DefaultSessionMaxAge = 30 * 24 * time.Hour
	// DefaultSessionUpdateAge is how old a token must be before it is re-issued
	DefaultSessionUpdateAge = 24 * time.Hour

	googleIssuer = "https://accounts.google.com"

	// developmentJWTSecret is the signing key shipped in config/auth.yaml
	developmentJWTSecret = "your-secret-key-change-in-production"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	Environment      string         `yaml:"environment" json:"environment" mapstructure:"environment"`
	JWTSecret        string         `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	SessionSecret    string         `yaml:"session_secret" json:"session_secret" mapstructure:"session_secret"`
	RedirectURL      string         `yaml:"redirect_url" json:"redirect_url" mapstructure:"redirect_url"`
	FrontendURL      string         `yaml:"frontend_url" json:"frontend_url" mapstructure:"frontend_url"`
	SecureCookies    bool           `yaml:"secure_cookies" json:"secure_cookies" mapstructure:"secure_cookies"`
	SessionMaxAge    time.Duration  `yaml:"session_max_age" json:"session_max_age" mapstructure:"session_max_age"`
	SessionUpdateAge time.Duration  `yaml:"session_update_age" json:"session_update_age" mapstructure:"session_update_age"`
	Google           ProviderConfig `yaml:"google" json:"google" mapstructure:"google"`
}

// ProviderConfig holds configuration for the OpenID Connect provider
type ProviderConfig struct {
	ClientID     string `yaml:"client_id" json:"client_id" mapstructure:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret" mapstructure:"client_secret"`
	Issuer       string `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
}

// Enabled reports whether sign-in through the provider can be offered
func (p ProviderConfig) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Environment == "production" {
		if c.JWTSecret == developmentJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.SessionSecret == developmentJWTSecret {
			return fmt.Errorf("SESSION_SECRET must not reuse the development key in production")
		}
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}
	if c.SessionUpdateAge <= 0 || c.SessionUpdateAge >= c.SessionMaxAge {
		return fmt.Errorf("session update age must be positive and shorter than the max age")
	}
	if (c.Google.ClientID == "") != (c.Google.ClientSecret == "") {
		return fmt.Errorf("google client_id and client_secret must be configured together")
	}
	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("redirect_url", "http://localhost:7008/api/auth/google/callback")
	v.SetDefault("frontend_url", "http://localhost:3000")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("session_max_age", DefaultSessionMaxAge)
	v.SetDefault("session_update_age", DefaultSessionUpdateAge)
	v.SetDefault("google.issuer", googleIssuer)
}

// overrideFromEnvironment applies the deployment's environment variables on top of file values
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		config.Environment = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecret = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		config.SessionSecret = v
	}
	if v := os.Getenv("AUTH_REDIRECT_URL"); v != "" {
		config.RedirectURL = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		config.FrontendURL = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		config.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		config.Google.ClientSecret = v
	}
	if config.SessionSecret == "" {
		config.SessionSecret = config.JWTSecret
	}
	if config.Google.Issuer == "" {
		config.Google.Issuer = googleIssuer
	}
	return config
}
