// Package gpg obtains armoured public keys from the local gpg keyring,
// importing them from a keyserver on demand.
//
// A key imported during a lookup is deleted again before the lookup
// returns: resolving a key must leave the keyring as it was found.
package gpg

import (
	"context"
	"errors"
	"strings"

	"github.com/jnavila/curtin/internal/logger"
	"github.com/jnavila/curtin/pkg/execute"
)

// DefaultKeyserver is used when no keyserver is configured.
const DefaultKeyserver = "keyserver.ubuntu.com"

// Config holds the key resolver settings.
type Config struct {
	// Keyserver is the host keys are fetched from when not present locally
	Keyserver string `mapstructure:"keyserver" validate:"required"`
}

// Client resolves armoured public keys through an execute.Runner.
type Client struct {
	runner    execute.Runner
	keyserver string
}

// New creates a Client. An empty Config.Keyserver falls back to
// DefaultKeyserver.
func New(runner execute.Runner, cfg Config) *Client {
	keyserver := cfg.Keyserver
	if keyserver == "" {
		keyserver = DefaultKeyserver
	}
	return &Client{runner: runner, keyserver: keyserver}
}

// GetKeyByID returns the armoured representation of the key with the given
// identifier.
//
// The local keyring is tried first. If the key is not present it is
// received from the configured keyserver, exported, and deleted again
// before returning. Trailing newlines are stripped from the result.
//
// Returns *KeyFetchError if the key could not be obtained.
func (c *Client) GetKeyByID(ctx context.Context, keyID string) (string, error) {
	armour := c.exportArmour(ctx, keyID)
	if armour == "" {
		fetched, err := c.fetchFromKeyserver(ctx, keyID)
		if err != nil {
			return "", err
		}
		armour = fetched
	}

	return strings.TrimRight(armour, "\n"), nil
}

// fetchFromKeyserver receives keyID from the configured keyserver and
// exports it. The imported key is a side effect the caller did not ask
// for, so it is deleted on every exit path.
func (c *Client) fetchFromKeyserver(ctx context.Context, keyID string) (string, error) {
	defer c.deleteKey(ctx, keyID)

	if err := c.receiveKey(ctx, keyID); err != nil {
		logger.Error("failed to obtain gpg key %q: %v", keyID, err)
		return "", err
	}

	armour := c.exportArmour(ctx, keyID)
	if armour == "" {
		return "", &KeyFetchError{
			Key:       keyID,
			Keyserver: c.keyserver,
			Err:       errors.New("key not present after import"),
		}
	}

	return armour, nil
}

// exportArmour exports the armoured key from the local keyring. A failed
// export means the key is not present locally and yields an empty string.
func (c *Client) exportArmour(ctx context.Context, key string) string {
	stdout, _, err := c.runner.Run(ctx, "gpg", "--export", "--armour", key)
	if err != nil {
		// Expected for any key not on the system yet.
		logger.Debug("failed to export armoured key %q: %v", key, err)
		return ""
	}
	return stdout
}

// receiveKey imports the key from the configured keyserver.
func (c *Client) receiveKey(ctx context.Context, key string) error {
	logger.Debug("receiving gpg key %q from %q", key, c.keyserver)
	if _, _, err := c.runner.Run(ctx, "gpg", "--keyserver", c.keyserver, "--recv", key); err != nil {
		return &KeyFetchError{Key: key, Keyserver: c.keyserver, Err: err}
	}
	return nil
}

// deleteKey removes the key from the local keyring. Failures are logged
// and ignored so cleanup never masks the primary outcome.
func (c *Client) deleteKey(ctx context.Context, key string) {
	if _, _, err := c.runner.Run(ctx, "gpg", "--batch", "--yes", "--delete-keys", key); err != nil {
		logger.Warn("failed to delete key %q: %v", key, err)
	}
}
