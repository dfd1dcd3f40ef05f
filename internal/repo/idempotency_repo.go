package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openhrms/go-hrms-backend/internal/domain"
)

// IdempotencyRepo persists idempotency records for replay-safe writes.
// Records are scoped per (user, scope, key) and expired by a TTL index, so
// reads still filter on expires_at to cover the TTL monitor's sweep lag.
type IdempotencyRepo struct {
	store *Store
}

// NewIdempotencyRepo returns a repository backed by the shared store.
func NewIdempotencyRepo(store *Store) *IdempotencyRepo {
	return &IdempotencyRepo{store: store}
}

// Get fetches the non-expired record for (userID, scope, key).
// Returns ErrNotFound when absent or already expired.
func (r *IdempotencyRepo) Get(ctx context.Context, userID, scope, key string) (*domain.Idempotency, error) {
	coll, err := r.store.Collection(ctx, CollIdempotency)
	if err != nil {
		return nil, err
	}
	var rec domain.Idempotency
	err = coll.FindOne(ctx, bson.M{
		"user_id":    userID,
		"scope":      scope,
		"key":        key,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&rec)
	if err != nil {
		return nil, storeErr(err)
	}
	return &rec, nil
}

// Create stores a fresh idempotency record with the given lifetime.
// A concurrent duplicate of the same (userID, scope, key) surfaces as
// ErrDuplicate; the caller treats that as "someone else won the race".
func (r *IdempotencyRepo) Create(ctx context.Context, userID, scope, key, recordID string, status int, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("idempotency ttl must be positive")
	}
	coll, err := r.store.Collection(ctx, CollIdempotency)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	rec := domain.Idempotency{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Scope:     scope,
		Key:       key,
		RecordID:  recordID,
		Status:    status,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if _, err := coll.InsertOne(ctx, rec); err != nil {
		return storeErr(err)
	}
	return nil
}
