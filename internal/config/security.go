package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityPolicy constrains the secrets the server will accept at startup.
// A policy file can tighten the defaults, never loosen them below the
// built-in floor.
type SecurityPolicy struct {
	Security struct {
		JWT struct {
			MinSecretLength int      `yaml:"min_secret_length"`
			WeakSecrets     []string `yaml:"weak_secrets"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// minSecretLength is the floor for JWT secret length regardless of policy.
const minSecretLength = 32

// defaultWeakSecrets are placeholder values that must never reach
// production. The check is case-insensitive via normalization at use.
var defaultWeakSecrets = []string{
	"secret",
	"changeme",
	"password",
	"jwt-secret",
	"your-secret-key",
	"0000000000000000000000000000000000000000",
}

// DefaultSecurityPolicy returns the built-in policy.
func DefaultSecurityPolicy() SecurityPolicy {
	var p SecurityPolicy
	p.Security.JWT.MinSecretLength = minSecretLength
	p.Security.JWT.WeakSecrets = append([]string(nil), defaultWeakSecrets...)
	return p
}

// LoadSecurityPolicy reads a policy from a YAML file and merges it over the
// defaults. The path comes from configuration, not user input.
func LoadSecurityPolicy(path string) (SecurityPolicy, error) {
	policy := DefaultSecurityPolicy()

	// #nosec G304 -- path is provided by trusted source (env var), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return policy, fmt.Errorf("read security policy: %w", err)
	}

	var loaded SecurityPolicy
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return policy, fmt.Errorf("parse security policy: %w", err)
	}

	if loaded.Security.JWT.MinSecretLength > policy.Security.JWT.MinSecretLength {
		policy.Security.JWT.MinSecretLength = loaded.Security.JWT.MinSecretLength
	}
	policy.Security.JWT.WeakSecrets = append(policy.Security.JWT.WeakSecrets,
		loaded.Security.JWT.WeakSecrets...)

	return policy, nil
}

// ValidateSecret checks a JWT secret against the policy.
func (p SecurityPolicy) ValidateSecret(secret string) error {
	if len(secret) < p.Security.JWT.MinSecretLength {
		return fmt.Errorf("JWT secret must be at least %d characters",
			p.Security.JWT.MinSecretLength)
	}
	for _, weak := range p.Security.JWT.WeakSecrets {
		if secret == weak {
			return fmt.Errorf("JWT secret matches a known weak value")
		}
	}
	return nil
}
