package auth

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AuthConfig holds the bearer-token settings for the application. Token
// issuance lives in a separate service; this service only decodes and
// validates what it is handed.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	Issuer        string `yaml:"issuer"`
	RequiredScope string `yaml:"required_scope"`
}

// LoadAuthConfig loads authentication configuration from a YAML file, with
// environment overrides for sensitive values. A missing file is not an error;
// defaults plus environment variables are used instead.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	if configPath == "" {
		configPath = "config/auth.yaml"
	}

	config := &AuthConfig{
		RequiredScope: "access_token",
	}

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading auth config file: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if config.RequiredScope == "" {
		config.RequiredScope = "access_token"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	return nil
}
