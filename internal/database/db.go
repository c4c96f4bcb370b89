package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// ErrNoURL is returned by Open when no connection URL was supplied.
var ErrNoURL = errors.New("DATABASE_URL missing (set it in the service environment)")

// Client is the catalog database handle.  It is constructed once at startup
// and passed by reference to whatever needs the pool; there is no package
// level connection state.
type Client struct {
	DB       *sql.DB
	Driver   string // "pgx" or "sqlite"
	Masked   string // connection URL safe for diagnostics output
	Postgres bool
}

// Normalize rewrites a raw connection URL into the form the drivers accept:
//   - legacy postgres:// scheme becomes postgresql://
//   - hosted Postgres URLs get sslmode=require when none is specified
//   - sqlite:// URLs keep only the path, everything non-Postgres is treated
//     as a SQLite DSN (a plain file path or :memory:)
func Normalize(raw string) (dsn, driver string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrNoURL
	}
	if strings.HasPrefix(raw, "postgres://") {
		raw = "postgresql://" + strings.TrimPrefix(raw, "postgres://")
	}
	if strings.HasPrefix(raw, "postgresql://") {
		if !strings.Contains(raw, "sslmode=") {
			sep := "?"
			if strings.Contains(raw, "?") {
				sep = "&"
			}
			raw = raw + sep + "sslmode=require"
		}
		return raw, "pgx", nil
	}
	if strings.HasPrefix(raw, "sqlite://") {
		return strings.TrimPrefix(raw, "sqlite://"), "sqlite", nil
	}
	return raw, "sqlite", nil
}

// MaskURL hides the credential portion of a connection URL so it can be
// reported by diagnostic endpoints.  URLs without credentials pass through
// unchanged.
func MaskURL(u string) string {
	at := strings.Index(u, "@")
	if at < 0 {
		return u
	}
	left, right := u[:at], u[at+1:]
	slashes := strings.Index(left, "//")
	if slashes < 0 {
		return u
	}
	scheme, creds := left[:slashes], left[slashes+2:]
	user := creds
	if colon := strings.Index(creds, ":"); colon >= 0 {
		user = creds[:colon]
	}
	return fmt.Sprintf("%s//%s:***@%s", scheme, user, right)
}

// Open normalizes the raw URL, opens the pool and verifies the connection.
// The returned error is meant to be held by the caller and surfaced through
// /v1/dbtest, not to abort startup.
func Open(rawURL string) (*Client, error) {
	dsn, driver, err := Normalize(rawURL)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return &Client{
		DB:       db,
		Driver:   driver,
		Masked:   MaskURL(dsn),
		Postgres: driver == "pgx",
	}, nil
}

// Now runs a trivial round trip and returns the server's current timestamp
// as text.  Used by the connectivity probe.
func (c *Client) Now(ctx context.Context) (string, error) {
	var now any
	if err := c.DB.QueryRowContext(ctx, "SELECT CURRENT_TIMESTAMP").Scan(&now); err != nil {
		return "", err
	}
	return fmt.Sprint(now), nil
}

// Close releases the pool.
func (c *Client) Close() error { return c.DB.Close() }
