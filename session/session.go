// Package session persists the auth session (token plus profile fields)
// in a local bolt database, one nested bucket per session ID with fixed
// keys. Presence of the access_token key is the only signal other code
// uses to decide between authenticated and anonymous state.
package session

import (
	"errors"
	"strconv"

	bolt "go.etcd.io/bbolt"
)

const bucketSessions = "sessions"

// Fixed keys inside each session bucket.
const (
	keyAccessToken = "access_token"
	keyTokenType   = "token_type"
	keyUserID      = "user_id"
	keyUsername    = "username"
	keyEmail       = "email"
)

// ErrNoSession is returned by Get when no record exists for the ID.
var ErrNoSession = errors.New("no such session")

type Record struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int    `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSessions))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(id string, rec Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketSessions)).CreateBucketIfNotExists([]byte(id))
		if err != nil {
			return err
		}
		pairs := map[string]string{
			keyAccessToken: rec.AccessToken,
			keyTokenType:   rec.TokenType,
			keyUserID:      strconv.Itoa(rec.UserID),
			keyUsername:    rec.Username,
			keyEmail:       rec.Email,
		}
		for k, v := range pairs {
			if err := b.Put([]byte(k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Get(id string) (Record, error) {
	var rec Record
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSessions)).Bucket([]byte(id))
		if b == nil {
			return ErrNoSession
		}
		token := b.Get([]byte(keyAccessToken))
		if token == nil {
			return ErrNoSession
		}
		rec.AccessToken = string(token)
		rec.TokenType = string(b.Get([]byte(keyTokenType)))
		rec.UserID, _ = strconv.Atoi(string(b.Get([]byte(keyUserID))))
		rec.Username = string(b.Get([]byte(keyUsername)))
		rec.Email = string(b.Get([]byte(keyEmail)))
		return nil
	})
	return rec, err
}

// Delete removes a session record. Deleting an absent session is not an
// error.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.Bucket([]byte(bucketSessions)).DeleteBucket([]byte(id))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}
