// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/equb-registry/cliparse"
	"github.com/danielhkuo/equb-registry/db"
	_ "modernc.org/sqlite"
)

// TestDBURL is the connection string for the in-memory test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The pool is limited to one connection because every new connection to
// :memory: would open a separate, empty database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(context.Background(), conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Host:         "127.0.0.1",
		Port:         10000,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// FixedClock returns a clock that starts at start and advances one second
// per call, so consecutive draws get distinct, ordered dates.
func FixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}

// AddTestMember inserts a pending member and returns its ID
func AddTestMember(t *testing.T, db *sql.DB, fullName string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO equb_members (full_name) VALUES (?) RETURNING id
	`, fullName).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return id
}

// AddTestWinner inserts a member already drawn at drawDate and returns its ID
func AddTestWinner(t *testing.T, db *sql.DB, fullName string, drawDate time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO equb_members (full_name, has_won, draw_date) VALUES (?, TRUE, ?) RETURNING id
	`, fullName, drawDate).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test winner: %v", err)
	}

	return id
}

// CountMembers returns the number of rows with the given has_won value
func CountMembers(t *testing.T, db *sql.DB, hasWon bool) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM equb_members WHERE has_won = ?`, hasWon).Scan(&n); err != nil {
		t.Fatalf("Failed to count members: %v", err)
	}

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
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

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
