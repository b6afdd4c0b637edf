// Package session implements an opaque-token session store over a
// pluggable storage backend. A session is created on login, read on every
// gated call and destroyed on logout; the storage backend handles expiry.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/storage"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session"

// ErrNotFound is returned when no session exists for the presented token.
var ErrNotFound = errors.New("session not found")

// Data represents the session data structure.
type Data struct {
	UserID   uint64
	Username string
}

// Store holds sessions keyed by opaque token. It is constructed once in
// the daemon and injected into every handler that gates on a session.
type Store struct {
	storage storage.Storage
	expiry  time.Duration
}

// New creates a session store with the provided storage backend and TTL.
func New(st storage.Storage, expiry time.Duration) *Store {
	if st == nil {
		panic("storage is nil")
	}

	return &Store{storage: st, expiry: expiry}
}

// Expiry returns the configured session lifetime.
func (s *Store) Expiry() time.Duration {
	return s.expiry
}

// Create generates a new session for the given user and returns its token.
func (s *Store) Create(userID uint64, username string) (string, error) {
	token, err := GenerateSessionID()
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(&Data{UserID: userID, Username: username})
	if err != nil {
		return "", err
	}

	if err := s.storage.Set(token, out, s.expiry); err != nil {
		return "", err
	}

	return token, nil
}

// Read returns the session data for the given token.
func (s *Store) Read(token string) (*Data, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	byteData, err := s.storage.Get(token)
	if err != nil {
		return nil, err
	}

	// storage backends return empty data for missing or expired keys
	if len(byteData) == 0 {
		return nil, ErrNotFound
	}

	data := new(Data)
	if err := json.Unmarshal(byteData, data); err != nil {
		return nil, err
	}

	if data.UserID == 0 {
		return nil, ErrNotFound
	}

	return data, nil
}

// Destroy removes the session for the given token.
func (s *Store) Destroy(token string) error {
	if token == "" {
		return nil
	}

	return s.storage.Delete(token)
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
