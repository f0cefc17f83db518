// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives and checks the election owner's admin key.

# Admin Keys

The admin key is an HMAC-SHA256 of the election ID with ADMIN_KEY_SALT,
URL-safe base64 without padding:

	key := auth.GenerateAdminKey(electionID, salt)
	err := auth.ValidateAdminKey(electionID, key, salt) // nil or ErrInvalidAdminKey

# Owner Policy

OwnerPolicy is the ledger.Authorizer used by the server. Only the holder of
the admin key may submit results or end the election:

	policy := auth.NewOwnerPolicy(cfg.ElectionID, cfg.AdminKeySalt)
	l := ledger.New(policy)

Comparison uses hmac.Equal, so it runs in constant time.

# IP Hashing

HashIP gives a salted, truncated hash for logging rejected callers without
storing raw addresses.
*/
package auth
