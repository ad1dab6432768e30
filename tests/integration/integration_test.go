package integration

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testUser := os.Getenv("POSTGRES_TEST_USER")
	testPassword := os.Getenv("POSTGRES_TEST_PASSWORD")
	testPort := os.Getenv("POSTGRES_TEST_PORT")
	testDB := os.Getenv("POSTGRES_TEST_DB")

	if testUser == "" {
		testUser = "test_user"
	}
	if testPassword == "" {
		testPassword = "test_password"
	}
	if testPort == "" {
		testPort = "5434"
	}
	if testDB == "" {
		testDB = "tidepool_test"
	}

	dbURL := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Skipf("Skipping integration test, no test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("Skipping integration test, test database unreachable: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "../../internal/db/migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear any leftovers from earlier runs. Posts cascade into categories,
	// grants and comments.
	for _, table := range []string{"posts", "authors", "remote_authors", "remote_credentials", "follows"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}

	return db
}

func insertAuthor(t *testing.T, db *sql.DB, id, displayName string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO authors (id, host, display_name, url)
		VALUES ($1, 'http://localhost:8080/', $2, $1)
	`, id, displayName)
	if err != nil {
		t.Fatalf("Failed to insert author: %v", err)
	}
}
