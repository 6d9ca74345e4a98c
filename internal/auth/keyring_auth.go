package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(channel string, token string) error {
	key := NormalizeChannel(channel)
	return keyring.Set(k.serviceName, key, token)
}

func (k *KeyringStore) GetToken(channel string) (string, error) {
	key := NormalizeChannel(channel)
	token, err := keyring.Get(k.serviceName, key)
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken(channel string) error {
	key := NormalizeChannel(channel)
	err := keyring.Delete(k.serviceName, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
