// Package util holds small helpers shared by the command line tools
package util

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Md5ThenHex is a quick hasher
func Md5ThenHex(value []byte) string {
	hasher := md5.New()
	hasher.Write(value)
	return hex.EncodeToString(hasher.Sum(nil))
}

// HashUUID returns a version 3 style UUID over the JSON form of value, so
// equal values always name the same UUID
func HashUUID(value any) (uuid.UUID, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash uuid: %w", err)
	}
	hash := md5.Sum(raw)
	hash[6] = hash[6]&0x0f | 0x30
	hash[8] = hash[8]&0x3f | 0x80
	return uuid.FromBytes(hash[:])
}

// ParseOrHashUUID parses text as a UUID, falling back to HashUUID(text) for
// any other name
func ParseOrHashUUID(text string) (uuid.UUID, error) {
	if u, err := uuid.Parse(text); err == nil {
		return u, nil
	}
	return HashUUID(text)
}
