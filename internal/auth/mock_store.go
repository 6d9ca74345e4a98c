package auth

// MockStore is an in-memory Store for tests.
type MockStore struct {
	tokens map[string]string
}

func NewMockStore() *MockStore {
	return &MockStore{tokens: make(map[string]string)}
}

func (m *MockStore) SetToken(channel string, token string) error {
	m.tokens[NormalizeChannel(channel)] = token
	return nil
}

func (m *MockStore) GetToken(channel string) (string, error) {
	token, ok := m.tokens[NormalizeChannel(channel)]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *MockStore) DeleteToken(channel string) error {
	key := NormalizeChannel(channel)
	if _, ok := m.tokens[key]; !ok {
		return ErrTokenNotFound
	}
	delete(m.tokens, key)
	return nil
}
