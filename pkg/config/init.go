package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// InitConfig creates a default configuration file at the default location.
//
// Parameters:
//   - force: Overwrite an existing config file
//
// Returns:
//   - string: Path of the created config file
//   - error: Generation or write error, or "already exists" without force
func InitConfig(force bool) (string, error) {
	configPath := GetDefaultConfigPath()
	if err := InitConfigToPath(configPath, force); err != nil {
		return "", err
	}
	return configPath, nil
}

// InitConfigToPath creates a default configuration file at the given path.
//
// Parent directories are created as needed. Without force, an existing file
// at path is an error.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content, err := generateYAMLWithComments(GetDefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateYAMLWithComments renders cfg as a commented YAML document.
//
// Each section is marshaled separately so a comment block can precede it.
// The result must load cleanly through Load.
func generateYAMLWithComments(cfg *Config) (string, error) {
	var b strings.Builder

	b.WriteString("# Curtin Configuration File\n")
	b.WriteString("#\n")
	b.WriteString("# Configuration precedence: environment variables (CURTIN_*) override\n")
	b.WriteString("# this file, which overrides built-in defaults.\n")
	b.WriteString("\n")

	b.WriteString("# Logging configuration\n")
	b.WriteString("# level: DEBUG, INFO, WARN, ERROR\n")
	b.WriteString("# format: text, json\n")
	b.WriteString("# output: stdout, stderr, or a file path\n")
	if err := marshalSection(&b, "logging", cfg.Logging); err != nil {
		return "", err
	}
	b.WriteString("\n")

	b.WriteString("# Key resolver configuration\n")
	b.WriteString("# keyserver: host used when a key is not in the local keyring\n")
	if err := marshalSection(&b, "gpg", cfg.GPG); err != nil {
		return "", err
	}
	b.WriteString("\n")

	b.WriteString("# Storage configuration\n")
	b.WriteString("# config lists format actions applied in order by 'curtin apply'.\n")
	b.WriteString("# The default list is empty: a format action destroys the contents of\n")
	b.WriteString("# the device it names, so actions are only ever explicit. Example:\n")
	b.WriteString("#\n")
	b.WriteString("#   config:\n")
	b.WriteString("#     - id: format-root\n")
	b.WriteString("#       device: /dev/vda1\n")
	b.WriteString("#       fstype: ext4\n")
	b.WriteString("#       label: rootfs\n")
	b.WriteString("#     - id: keep-home\n")
	b.WriteString("#       device: /dev/vda2\n")
	b.WriteString("#       preserve: true\n")
	if err := marshalSection(&b, "storage", cfg.Storage); err != nil {
		return "", err
	}

	return b.String(), nil
}

// marshalSection renders one top-level config section as YAML.
func marshalSection(b *strings.Builder, name string, section any) error {
	out, err := yaml.Marshal(map[string]any{name: section})
	if err != nil {
		return fmt.Errorf("failed to marshal %s section: %w", name, err)
	}
	b.Write(out)
	return nil
}
