// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/election-ledger/auth"
	"github.com/danielhkuo/election-ledger/cliparse"
	"github.com/danielhkuo/election-ledger/db"
	"github.com/danielhkuo/election-ledger/ledger"
)

// SetupTestDB opens an in-memory sqlite database with the journal schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
		ElectionID:   "us-2024",
		CandidateA:   "Biden",
		CandidateB:   "Trump",
	}
}

// OwnerKey returns the admin key for cfg's election
func OwnerKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(cfg.ElectionID, cfg.AdminKeySalt)
}

// NewTestLedger builds a ledger owned by OwnerKey(cfg)
func NewTestLedger(cfg cliparse.Config, opts ...ledger.Option) *ledger.Ledger {
	return ledger.New(auth.NewOwnerPolicy(cfg.ElectionID, cfg.AdminKeySalt), opts...)
}

// NewTestJournal returns a journal on a fresh in-memory database
func NewTestJournal(t *testing.T, cfg cliparse.Config) *db.Journal {
	t.Helper()
	return db.NewJournal(SetupTestDB(t), cfg.ElectionID)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AdminHeaders returns headers carrying the given admin key
func AdminHeaders(key string) map[string]string {
	return map[string]string{"X-Admin-Key": key}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
