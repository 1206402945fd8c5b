package client

import (
	"errors"
	"os"
	"strings"
)

// TokenStore persists a bearer token across client restarts.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a single file, the closest analog to
// browser local storage for a command-line client.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStore) Save(token string) error {
	return os.WriteFile(s.Path, []byte(token), 0600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryTokenStore holds the token for the lifetime of the process only.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Load() (string, error)   { return s.token, nil }
func (s *MemoryTokenStore) Save(token string) error { s.token = token; return nil }
func (s *MemoryTokenStore) Clear() error            { s.token = ""; return nil }

// Session owns the client's auth token with an explicit lifecycle: Hydrate
// on startup, SetToken on login/register, Clear on logout. There is no
// package-level token state.
type Session struct {
	store TokenStore
	token string
}

func NewSession(store TokenStore) *Session {
	return &Session{store: store}
}

// Hydrate loads a previously persisted token, if any.
func (s *Session) Hydrate() error {
	token, err := s.store.Load()
	if err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.token != ""
}

func (s *Session) SetToken(token string) error {
	s.token = token
	return s.store.Save(token)
}

func (s *Session) Clear() error {
	s.token = ""
	return s.store.Clear()
}
