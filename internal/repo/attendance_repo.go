package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openhrms/go-hrms-backend/internal/domain"
)

// AttendanceRepo persists daily attendance markers.
type AttendanceRepo struct {
	store *Store
}

// NewAttendanceRepo returns a repository backed by the shared store.
func NewAttendanceRepo(store *Store) *AttendanceRepo {
	return &AttendanceRepo{store: store}
}

// Insert stores a new attendance marker, stamping CreatedAt if unset.
// The unique (employee_id, date) index rejects a second marker for the same
// employee and day; that collision surfaces as ErrDuplicate.
func (r *AttendanceRepo) Insert(ctx context.Context, a *domain.Attendance) error {
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return err
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := coll.InsertOne(ctx, a)
	if err != nil {
		return storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

// Exists reports whether a marker already exists for the employee on the date.
func (r *AttendanceRepo) Exists(ctx context.Context, employeeID, date string) (bool, error) {
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return false, err
	}
	n, err := coll.CountDocuments(ctx,
		bson.M{"employee_id": employeeID, "date": date},
		options.Count().SetLimit(1))
	if err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

// GetByID fetches a single marker by document id. Used to rebuild the
// response body when an idempotent create is replayed.
func (r *AttendanceRepo) GetByID(ctx context.Context, id string) (*domain.Attendance, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return nil, err
	}
	var a domain.Attendance
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&a); err != nil {
		return nil, storeErr(err)
	}
	return &a, nil
}

// ListAll returns attendance markers across all employees, newest date first.
// An empty date lists everything; otherwise only markers for that day.
func (r *AttendanceRepo) ListAll(ctx context.Context, date string) ([]domain.Attendance, error) {
	filter := bson.M{}
	if date != "" {
		filter["date"] = date
	}
	return r.find(ctx, filter)
}

// ListByEmployee returns all markers for one employee, newest date first.
func (r *AttendanceRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Attendance, error) {
	return r.find(ctx, bson.M{"employee_id": employeeID})
}

func (r *AttendanceRepo) find(ctx context.Context, filter bson.M) ([]domain.Attendance, error) {
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Attendance, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// CountByStatus counts markers with the given status on the given date.
func (r *AttendanceRepo) CountByStatus(ctx context.Context, date string, status domain.AttendanceStatus) (int64, error) {
	coll, err := r.store.Collection(ctx, CollAttendance)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
