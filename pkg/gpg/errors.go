package gpg

import "fmt"

// KeyFetchError indicates that a key could not be obtained from a
// keyserver.
type KeyFetchError struct {
	// Key is the identifier of the key being fetched
	Key string

	// Keyserver is the server the fetch was attempted against
	Keyserver string

	// Err is the underlying failure
	Err error
}

// Error implements the error interface.
func (e *KeyFetchError) Error() string {
	return fmt.Sprintf("failed to import key %q from server %q: %v", e.Key, e.Keyserver, e.Err)
}

// Unwrap returns the underlying failure.
func (e *KeyFetchError) Unwrap() error {
	return e.Err
}
