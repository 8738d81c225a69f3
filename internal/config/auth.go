package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// AuthConfig holds the credential store and cookie signing configuration
type AuthConfig struct {
	Users         map[string]string
	TrimUsername  bool
	SessionSecret string
	SecureCookies bool
}

// LoadAuthConfig loads authentication configuration from environment variables.
// SHOP_USERNAME/SHOP_PASSWORD define the primary account; SHOP_USERS adds
// more as comma separated "user:password" pairs.
func LoadAuthConfig(getenv func(string) string) (*AuthConfig, error) {
	config := &AuthConfig{
		Users:         make(map[string]string),
		TrimUsername:  cast.ToBool(getenv("AUTH_TRIM_USERNAME")),
		SessionSecret: getenv("SESSION_SECRET"),
		SecureCookies: cast.ToBool(getenv("SECURE_COOKIES")),
	}

	username, password := getenv("SHOP_USERNAME"), getenv("SHOP_PASSWORD")
	if username != "" || password != "" {
		if username == "" {
			return nil, fmt.Errorf("SHOP_USERNAME is required when SHOP_PASSWORD is set")
		}
		if password == "" {
			return nil, fmt.Errorf("SHOP_PASSWORD is required when SHOP_USERNAME is set")
		}
		config.Users[username] = password
	}

	if extra := getenv("SHOP_USERS"); extra != "" {
		for _, pair := range strings.Split(extra, ",") {
			user, pass, ok := strings.Cut(pair, ":")
			if !ok || user == "" || pass == "" {
				return nil, fmt.Errorf("SHOP_USERS entry %q must be user:password", pair)
			}
			config.Users[user] = pass
		}
	}

	if len(config.Users) == 0 {
		return nil, fmt.Errorf("SHOP_USERNAME and SHOP_PASSWORD are required")
	}
	if len(config.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 bytes")
	}

	return config, nil
}
