package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d,%d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Tracking.validate(); err != nil {
		return fmt.Errorf("tracking: %w", err)
	}

	return nil
}

func (t *TrackingConfig) validate() error {
	if t.MaxManualEntry <= 0 {
		return fmt.Errorf("max_manual_entry must be > 0 (got %v)", t.MaxManualEntry)
	}
	if t.ListDefaultSize <= 0 {
		return fmt.Errorf("list_default_size must be > 0 (got %d)", t.ListDefaultSize)
	}
	if t.ListMaxSize < t.ListDefaultSize {
		return fmt.Errorf("list_max_size must be >= list_default_size (got %d < %d)",
			t.ListMaxSize, t.ListDefaultSize)
	}
	if t.TeamReportDays <= 0 {
		return fmt.Errorf("team_report_days must be > 0 (got %d)", t.TeamReportDays)
	}
	return nil
}
