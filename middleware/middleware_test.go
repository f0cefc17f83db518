// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/election-ledger/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	// Logging must not interfere with status codes or bodies
	testCases := []struct {
		name       string
		statusCode int
		body       string
		skipHeader bool
	}{
		{"OK", http.StatusOK, "ok", false},
		{"implicit OK", http.StatusOK, "ok", true},
		{"Created", http.StatusCreated, `{"region":"Ohio"}`, false},
		{"Conflict", http.StatusConflict, `{"code":"duplicate_region"}`, false},
		{"Unauthorized", http.StatusUnauthorized, "no", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if !tc.skipHeader {
					w.WriteHeader(tc.statusCode)
				}
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/results", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if !called {
				t.Error("Expected handler to be called")
			}
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)

	if rec.status != http.StatusTeapot {
		t.Errorf("Expected recorded status 418, got %d", rec.status)
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("Expected underlying status 418, got %d", w.Code)
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusOK, models.LeaderResponse{Leader: models.LeaderB, Candidate: "Trump"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type 'application/json'")
	}

	expected := `{"leader":"b","candidate":"Trump"}`
	if body := strings.TrimSpace(w.Body.String()); body != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, body)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		code          string
		message       string
		expectedError string
	}{
		{"bad request", http.StatusBadRequest, "", "name is required", "Bad Request"},
		{"unauthorized", http.StatusUnauthorized, "unauthorized", "not invoked by the owner", "Unauthorized"},
		{"conflict", http.StatusConflict, "election_closed", "the election has ended already", "Conflict"},
		{"unprocessable", http.StatusUnprocessableEntity, "tied_votes", "there cannot be a tie", "Unprocessable Entity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if tc.code == "" {
				ErrorResponse(w, tc.statusCode, tc.message)
			} else {
				CodedErrorResponse(w, tc.statusCode, tc.code, tc.message)
			}

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
			if resp.Code != tc.code {
				t.Errorf("Expected code '%s', got '%s'", tc.code, resp.Code)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"name":"California","votes_a":1000,"votes_b":900,"seats":32}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.SubmitResultRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		want := models.RegionResult{Name: "California", VotesA: 1000, VotesB: 900, Seats: 32}
		if parsed != want {
			t.Errorf("Expected %+v, got %+v", want, parsed)
		}
	})

	rejected := []struct {
		name string
		body string
	}{
		{"invalid JSON", `{invalid json}`},
		{"empty body", ``},
		{"negative votes", `{"name":"Ohio","votes_a":-1,"votes_b":2,"seats":1}`},
		{"fractional seats", `{"name":"Ohio","votes_a":1,"votes_b":2,"seats":1.5}`},
		{"unknown field", `{"name":"Ohio","votes_c":3}`},
		{"trailing object", `{"name":"Ohio"}{"name":"Texas"}`},
		{"oversized body", `{"name":"` + strings.Repeat("x", MaxBodyBytes) + `"}`},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))

			var parsed models.SubmitResultRequest
			if err := ParseJSONBody(req, &parsed); err == nil {
				t.Errorf("Expected error, parsed %+v", parsed)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/results", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Admin-Key") {
			t.Error("Expected X-Admin-Key in allowed headers")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/leader", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100, 10.0.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
