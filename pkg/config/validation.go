package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags and custom rules.
//
// This function uses go-playground/validator for declarative validation
// via struct tags, with additional custom validation for complex rules
// that cannot be expressed in tags.
//
// Note: Log level normalization is handled in ApplyDefaults, not here.
// Validation accepts both uppercase and lowercase log levels.
//
// Returns an error describing validation failures.
func Validate(cfg *Config) error {
	// Run struct tag validation
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	// Custom validation rules that can't be expressed in tags
	if err := validateCustomRules(cfg); err != nil {
		return err
	}

	return nil
}

// validateCustomRules performs custom validation beyond struct tags.
//
// Storage actions are raw maps, so their structural keys are checked here
// rather than through struct tags. Action semantics (fstype support, label
// length) are checked by the component that applies them.
func validateCustomRules(cfg *Config) error {
	ids := make(map[string]bool)
	for i, action := range cfg.Storage.Config {
		// Validate every action names its target device
		device, ok := action["device"].(string)
		if !ok || device == "" {
			return fmt.Errorf("storage.config[%d]: device must be specified", i)
		}

		// Validate action ids are unique where present
		id, ok := action["id"].(string)
		if !ok || id == "" {
			continue
		}
		if ids[id] {
			return fmt.Errorf("storage.config[%d]: duplicate id %q", i, id)
		}
		ids[id] = true
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// Return the first validation error with context
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
