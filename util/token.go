package util

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateToken returns the public prefix and secret part of a fresh API
// key. The prefix is stored in clear for lookup; only a bcrypt hash of the
// full prefix.token key ever reaches the database.
func GenerateToken() (prefix, token string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	s := hex.EncodeToString(buf)
	return s[:8], s[8:], nil
}
