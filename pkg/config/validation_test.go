package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	err := Validate(cfg)
	if err != nil {
		t.Errorf("Expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected 'oneof' validation error, got: %v", err)
	}
}

func TestValidate_LowercaseLogLevelAccepted(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "debug"

	if err := Validate(cfg); err != nil {
		t.Errorf("Expected lowercase log level to pass validation, got: %v", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log format")
	}
}

func TestValidate_MissingLogOutput(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Output = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for missing log output")
	}
}

func TestValidate_MissingKeyserver(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.GPG.Keyserver = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for missing keyserver")
	}
	if !strings.Contains(err.Error(), "Keyserver") {
		t.Errorf("Expected error to name the Keyserver field, got: %v", err)
	}
}

func TestValidate_UnsupportedStorageVersion(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Version = 2

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for unsupported storage version")
	}
	if !strings.Contains(err.Error(), "eq") {
		t.Errorf("Expected 'eq' validation error, got: %v", err)
	}
}

func TestValidate_ActionWithoutDevice(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Config = []map[string]any{
		{"id": "format-root", "fstype": "ext4"},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for action without device")
	}
	if !strings.Contains(err.Error(), "device must be specified") {
		t.Errorf("Expected 'device must be specified' error, got: %v", err)
	}
}

func TestValidate_ActionWithEmptyDevice(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Config = []map[string]any{
		{"id": "format-root", "device": "", "fstype": "ext4"},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for empty device")
	}
}

func TestValidate_ActionWithNonStringDevice(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Config = []map[string]any{
		{"id": "format-root", "device": 42, "fstype": "ext4"},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for non-string device")
	}
}

func TestValidate_DuplicateActionIDs(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Config = []map[string]any{
		{"id": "format-root", "device": "/dev/vda1", "fstype": "ext4"},
		{"id": "format-root", "device": "/dev/vda2", "fstype": "ext4"},
	}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for duplicate action ids")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected 'duplicate' error, got: %v", err)
	}
}

func TestValidate_ActionsWithoutIDs(t *testing.T) {
	// ids are optional; actions without them must not collide
	cfg := GetDefaultConfig()
	cfg.Storage.Config = []map[string]any{
		{"device": "/dev/vda1", "fstype": "ext4"},
		{"device": "/dev/vda2", "fstype": "swap"},
	}

	if err := Validate(cfg); err != nil {
		t.Errorf("Expected actions without ids to pass validation, got: %v", err)
	}
}

func TestValidate_ErrorNamesFailedField(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "yaml"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "Format") {
		t.Errorf("Expected error to name the failed field, got: %v", err)
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Expected error to include the rejected value, got: %v", err)
	}
}
