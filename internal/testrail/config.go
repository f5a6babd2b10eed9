package testrail

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rwx-research/testrail-sync/internal/errors"
)

// ClientConfig is the configuration object for the TestRail API client
type ClientConfig struct {
	APIKey   string
	Debug    bool
	Host     string
	Insecure bool
	Log      *zap.SugaredLogger
	NewUUID  func() (uuid.UUID, error)
	User     string
}

// Validate checks the configuration for errors
func (cfg ClientConfig) Validate() error {
	if cfg.Log == nil {
		return errors.NewInternalError("missing logger")
	}

	if cfg.Host == "" {
		return errors.NewConfigurationError("missing TestRail host")
	}

	if cfg.User == "" {
		return errors.NewConfigurationError("missing TestRail user")
	}

	if cfg.APIKey == "" {
		return errors.NewConfigurationError("missing TestRail API key")
	}

	return nil
}

// WithDefaults returns a copy of the configuration with defaults applied where necessary.
func (cfg ClientConfig) WithDefaults() ClientConfig {
	if cfg.NewUUID == nil {
		cfg.NewUUID = uuid.NewRandom
	}

	return cfg
}
