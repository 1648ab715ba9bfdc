package config

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
)

const (
	DefaultPort          = 3000
	DefaultRefreshMillis = 2000
	minRefreshMillis     = 100
)

type Config struct {
	Host          string `koanf:"host"       validate:"omitempty,hostname|ip"`
	Port          int    `koanf:"port"       validate:"gte=0,lte=65535"`
	RefreshMillis int    `koanf:"refresh_ms" validate:"refresh_ms"`
	ConfigPath    string `koanf:"-"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("refresh_ms", func(fl validator.FieldLevel) bool {
		return isValidRefresh(int(fl.Field().Int()))
	})

	return v
}

func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}

	if c.RefreshMillis == 0 {
		c.RefreshMillis = DefaultRefreshMillis
	}
}

// RefreshInterval is RefreshMillis as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshMillis) * time.Millisecond
}

func (c *Config) Validate() error {
	valErr := newValidator().Struct(c)
	if valErr == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(valErr, &validationErrors) {
		return oops.
			Code("CONFIG_INVALID").
			With("path", c.ConfigPath).
			Wrapf(valErr, "validating config")
	}

	for _, fe := range validationErrors {
		return c.mapValidationError(fe)
	}

	return nil
}

func (c *Config) mapValidationError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch field {
	case "port":
		return oops.
			Code("CONFIG_INVALID").
			With("path", c.ConfigPath).
			With("field", "port").
			With("value", c.Port).
			Hint("Use a port between 1 and 65535, or 0 for the default").
			Errorf("invalid port %d", c.Port)

	case "refreshmillis":
		return oops.
			Code("CONFIG_INVALID").
			With("path", c.ConfigPath).
			With("field", "refresh_ms").
			With("value", c.RefreshMillis).
			Hint("Set refresh_ms to 0 for the default or at least 100").
			Errorf("invalid refresh interval %dms", c.RefreshMillis)

	case "host":
		return oops.
			Code("CONFIG_INVALID").
			With("path", c.ConfigPath).
			With("field", "host").
			With("value", c.Host).
			Hint("Use a hostname such as localhost or an IP address").
			Errorf("invalid host %q", c.Host)

	default:
		return oops.
			Code("CONFIG_INVALID").
			With("path", c.ConfigPath).
			With("field", field).
			With("tag", fe.Tag()).
			Errorf("validation failed for field %q", field)
	}
}

func isValidRefresh(ms int) bool {
	return ms == 0 || ms >= minRefreshMillis
}
