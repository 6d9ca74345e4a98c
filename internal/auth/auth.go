package auth

import (
	"errors"

	"sysdash/internal/util"
)

const ServiceName = "sysdash"

var ErrTokenNotFound = errors.New("agent token not found")

// Store persists the bearer token used by the remote metrics channel.
type Store interface {
	SetToken(channel string, token string) error
	GetToken(channel string) (string, error)
	DeleteToken(channel string) error
}

// DefaultStore returns the standard token store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeChannel normalizes a channel name for consistent key lookup.
func NormalizeChannel(channel string) string {
	return util.NormalizeKey(channel)
}
