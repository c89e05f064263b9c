package gpg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	executetesting "github.com/jnavila/curtin/pkg/execute/testing"
)

const testKeyID = "F430BBA5"

const armouredKey = `-----BEGIN PGP PUBLIC KEY BLOCK-----

mQINBFXsfuMBEADdpDFPJ6OGDGoAnqNFVD2qUODVjCTiKo1REFHsAKHXrV5J
=0Zqq
-----END PGP PUBLIC KEY BLOCK-----`

func TestGetKeyByIDLocalKeyring(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Stdout: armouredKey + "\n\n"})

	client := New(runner, Config{})
	armour, err := client.GetKeyByID(context.Background(), testKeyID)
	require.NoError(t, err)

	assert.Equal(t, armouredKey, armour, "trailing newlines must be stripped")
	assert.Equal(t, []string{
		"gpg --export --armour " + testKeyID,
	}, runner.CommandLines(), "a local hit must not touch the keyserver")
}

func TestGetKeyByIDImportsThenDeletes(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Err: errors.New("gpg: WARNING: nothing exported")})
	runner.Enqueue("gpg", executetesting.Response{})
	runner.Enqueue("gpg", executetesting.Response{Stdout: armouredKey + "\n"})
	runner.Enqueue("gpg", executetesting.Response{})

	client := New(runner, Config{})
	armour, err := client.GetKeyByID(context.Background(), testKeyID)
	require.NoError(t, err)
	assert.Equal(t, armouredKey, armour)

	assert.Equal(t, []string{
		"gpg --export --armour " + testKeyID,
		"gpg --keyserver keyserver.ubuntu.com --recv " + testKeyID,
		"gpg --export --armour " + testKeyID,
		"gpg --batch --yes --delete-keys " + testKeyID,
	}, runner.CommandLines(), "the imported key must be deleted after the export")
}

func TestGetKeyByIDEmptyExportTriggersImport(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Stdout: ""})
	runner.Enqueue("gpg", executetesting.Response{})
	runner.Enqueue("gpg", executetesting.Response{Stdout: armouredKey})

	client := New(runner, Config{})
	armour, err := client.GetKeyByID(context.Background(), testKeyID)
	require.NoError(t, err)

	assert.Equal(t, armouredKey, armour)
	assert.Len(t, runner.Calls, 4, "an empty export must fall back to the keyserver")
}

func TestGetKeyByIDReceiveFailure(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Err: errors.New("not found")})
	runner.Enqueue("gpg", executetesting.Response{
		Stderr: "gpg: keyserver receive failed: No route to host",
		Err:    errors.New("exit status 2"),
	})

	client := New(runner, Config{Keyserver: "keys.example.com"})
	_, err := client.GetKeyByID(context.Background(), testKeyID)
	require.Error(t, err)

	var fetchErr *KeyFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, testKeyID, fetchErr.Key)
	assert.Equal(t, "keys.example.com", fetchErr.Keyserver)
	assert.Contains(t, err.Error(), testKeyID)
	assert.Contains(t, err.Error(), "keys.example.com")

	assert.Equal(t, []string{
		"gpg --export --armour " + testKeyID,
		"gpg --keyserver keys.example.com --recv " + testKeyID,
		"gpg --batch --yes --delete-keys " + testKeyID,
	}, runner.CommandLines(), "cleanup must run even when the receive fails")
}

func TestGetKeyByIDMissingAfterImport(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Err: errors.New("not found")})
	runner.Enqueue("gpg", executetesting.Response{})
	runner.Enqueue("gpg", executetesting.Response{Stdout: ""})

	client := New(runner, Config{})
	_, err := client.GetKeyByID(context.Background(), testKeyID)
	require.Error(t, err)

	var fetchErr *KeyFetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Err.Error(), "not present after import")

	last := runner.Calls[len(runner.Calls)-1]
	assert.Equal(t, []string{"--batch", "--yes", "--delete-keys", testKeyID}, last.Args)
}

func TestGetKeyByIDDeleteFailureIsIgnored(t *testing.T) {
	runner := executetesting.NewFakeRunner()
	runner.Enqueue("gpg", executetesting.Response{Err: errors.New("not found")})
	runner.Enqueue("gpg", executetesting.Response{})
	runner.Enqueue("gpg", executetesting.Response{Stdout: armouredKey})
	runner.Enqueue("gpg", executetesting.Response{Err: errors.New("delete failed")})

	client := New(runner, Config{})
	armour, err := client.GetKeyByID(context.Background(), testKeyID)

	require.NoError(t, err, "a failed cleanup must not fail the lookup")
	assert.Equal(t, armouredKey, armour)
}

func TestNewAppliesDefaultKeyserver(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		keyserver string
	}{
		{name: "default", cfg: Config{}, keyserver: DefaultKeyserver},
		{name: "configured", cfg: Config{Keyserver: "keys.example.com"}, keyserver: "keys.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(executetesting.NewFakeRunner(), tt.cfg)
			assert.Equal(t, tt.keyserver, client.keyserver)
		})
	}
}
