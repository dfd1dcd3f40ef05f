// Package repo implements the data persistence layer for domain entities,
// backed by the official MongoDB driver. This file contains the document
// store adapter: a process-wide, lazily-initialized client with explicit
// lifecycle and a ping-and-redial liveness policy.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names owned by this service.
const (
	CollEmployees   = "employees"
	CollAttendance  = "attendance"
	CollIdempotency = "idempotency"
)

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique-index violation on insert.
	ErrDuplicate = errors.New("duplicate")

	// ErrUnavailable indicates the document store could not be reached
	// (dial failure, auth failure, timeout). It is a different kind of
	// failure from validation errors and maps to a server-side HTTP status.
	ErrUnavailable = errors.New("document store unavailable")
)

// Store holds the single shared MongoDB client for the process. The client is
// dialed lazily on first collection access and re-dialed transparently when a
// liveness probe finds it dead. All methods are safe for concurrent use; the
// underlying driver maintains its own connection pool.
type Store struct {
	uri            string
	database       string
	connectTimeout time.Duration

	mu     sync.Mutex
	client *mongo.Client
}

// NewStore returns an unconnected Store. No I/O happens until the first
// Connect or Collection call.
func NewStore(uri, database string, connectTimeout time.Duration) *Store {
	if connectTimeout <= 0 {
		connectTimeout = 10 * time.Second
	}
	return &Store{uri: uri, database: database, connectTimeout: connectTimeout}
}

// Connect dials the store and verifies liveness with a ping. It is idempotent:
// an already-live client is reused, a dead one is discarded and re-dialed.
// Dial and ping are bounded by the configured connect timeout; a failure
// surfaces as ErrUnavailable rather than hanging.
func (s *Store) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked(ctx)
}

func (s *Store) connectLocked(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, s.connectTimeout)
	defer cancel()

	if s.client != nil {
		if err := s.client.Ping(cctx, readpref.Primary()); err == nil {
			return nil
		}
		// Dead client: disconnect best-effort and fall through to a fresh dial.
		_ = s.client.Disconnect(cctx)
		s.client = nil
	}

	opts := options.Client().
		ApplyURI(s.uri).
		SetConnectTimeout(s.connectTimeout).
		SetServerSelectionTimeout(s.connectTimeout)

	client, err := mongo.Connect(cctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.Ping(cctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(cctx)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.client = client
	return nil
}

// Collection returns a handle to a named collection, dialing the store first
// if needed. The returned handle is safe for concurrent use.
func (s *Store) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		if err := s.connectLocked(ctx); err != nil {
			return nil, err
		}
	}
	return s.client.Database(s.database).Collection(name), nil
}

// Ping probes store liveness, re-dialing a dead client. Used by callers that
// want to fail fast before a batch of work.
func (s *Store) Ping(ctx context.Context) error {
	return s.Connect(ctx)
}

// Close tears down the client. The Store may be reused afterwards; the next
// collection access re-dials.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

// EnsureIndexes creates the indexes this service relies on. Creation is
// idempotent; Mongo treats an identical existing index as a no-op.
//
// The unique compound index on attendance (employee_id, date) is what makes
// the one-record-per-employee-per-day invariant hold under concurrent
// writers: the pre-insert existence check in the service gives a friendly
// error message, but the index is the authority.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	att, err := s.Collection(ctx, CollAttendance)
	if err != nil {
		return err
	}
	_, err = att.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().
			SetName("ux_attendance_employee_date").
			SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create attendance index: %w", err)
	}

	emp, err := s.Collection(ctx, CollEmployees)
	if err != nil {
		return err
	}
	_, err = emp.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName("ux_employees_employee_id").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("ux_employees_email").SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create employee indexes: %w", err)
	}

	idem, err := s.Collection(ctx, CollIdempotency)
	if err != nil {
		return err
	}
	_, err = idem.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "scope", Value: 1},
				{Key: "key", Value: 1},
			},
			Options: options.Index().SetName("ux_idempotency_user_scope_key").SetUnique(true),
		},
		{
			// TTL monitor removes expired records; expires_at is an absolute deadline.
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("ttl_idempotency_expires").SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("create idempotency indexes: %w", err)
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-index violation.
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// duplicateIndex extracts the violated index name from a duplicate-key write
// error. The server embeds it in the message as "index: <name>"; an empty
// string means the driver did not report one.
func duplicateIndex(err error) string {
	var we mongo.WriteException
	if !errors.As(err, &we) {
		return ""
	}
	for _, e := range we.WriteErrors {
		i := strings.Index(e.Message, "index: ")
		if i < 0 {
			continue
		}
		name := e.Message[i+len("index: "):]
		if j := strings.IndexByte(name, ' '); j >= 0 {
			name = name[:j]
		}
		return name
	}
	return ""
}

// storeErr normalizes driver errors: document-missing becomes ErrNotFound,
// duplicate keys become ErrDuplicate, network/server-selection failures are
// wrapped in ErrUnavailable, everything else passes through.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case isDuplicateKey(err):
		return ErrDuplicate
	case mongo.IsTimeout(err) || mongo.IsNetworkError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}
