// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// GenerateAdminKey creates an HMAC-based admin key for an election
// This is deterministic and verifiable
func GenerateAdminKey(electionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(electionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks if the provided admin key is valid for the election
func ValidateAdminKey(electionID, adminKey, salt string) error {
	expected := GenerateAdminKey(electionID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// OwnerPolicy authorizes exactly one invoker: the holder of the election's
// admin key. It satisfies ledger.Authorizer.
type OwnerPolicy struct {
	electionID string
	salt       string
}

func NewOwnerPolicy(electionID, salt string) *OwnerPolicy {
	return &OwnerPolicy{electionID: electionID, salt: salt}
}

// IsAuthorized compares the invoker against the owner key in constant time
func (p *OwnerPolicy) IsAuthorized(invoker string) bool {
	if invoker == "" {
		return false
	}
	return ValidateAdminKey(p.electionID, invoker, p.salt) == nil
}

// OwnerKey returns the key the owner must present
func (p *OwnerPolicy) OwnerKey() string {
	return GenerateAdminKey(p.electionID, p.salt)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough to correlate attempts
	return hex.EncodeToString(sum[:8])
}
