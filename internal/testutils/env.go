package testutils

import (
	"os"
	"testing"

	"startup-hub-server/internal/config"
)

// SavedEnv captures the previous state of an environment variable.
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv sets an environment variable and returns its previous state.
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// RestoreEnv restores environment variables to a previously saved state.
func RestoreEnv(envs []SavedEnv) {
	for _, env := range envs {
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}

// WithConfig applies mutate to a copy of the current config snapshot and restores it on cleanup.
func WithConfig(t *testing.T, mutate func(cfg *config.Config)) {
	t.Helper()

	prev := config.Get()
	cfg := prev
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "test-secret"
	}
	mutate(&cfg)
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })
}
