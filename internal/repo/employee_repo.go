package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openhrms/go-hrms-backend/internal/domain"
)

// ErrEmployeeIDTaken and ErrEmailTaken narrow ErrDuplicate to the unique
// index that rejected an employee insert. Both match ErrDuplicate under
// errors.Is.
var (
	ErrEmployeeIDTaken = fmt.Errorf("%w: employee_id", ErrDuplicate)
	ErrEmailTaken      = fmt.Errorf("%w: email", ErrDuplicate)
)

// EmployeeRepo persists employee directory records.
type EmployeeRepo struct {
	store *Store
}

// NewEmployeeRepo returns a repository backed by the shared store.
func NewEmployeeRepo(store *Store) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

// Insert stores a new employee record, stamping CreatedAt if unset.
// A unique-index collision surfaces as ErrEmployeeIDTaken or ErrEmailTaken
// when the server names the violated index, or a plain ErrDuplicate when it
// does not.
func (r *EmployeeRepo) Insert(ctx context.Context, e *domain.Employee) error {
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	res, err := coll.InsertOne(ctx, e)
	if err != nil {
		if isDuplicateKey(err) {
			switch duplicateIndex(err) {
			case "ux_employees_employee_id":
				return ErrEmployeeIDTaken
			case "ux_employees_email":
				return ErrEmailTaken
			}
		}
		return storeErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		e.ID = oid
	}
	return nil
}

// GetByEmployeeID looks up a single employee by business key.
// Returns ErrNotFound when no record matches.
func (r *EmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return nil, err
	}
	var e domain.Employee
	if err := coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&e); err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

// GetByID looks up a single employee by document id. A malformed hex id is
// reported as ErrNotFound, same as an absent document.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return nil, err
	}
	var e domain.Employee
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&e); err != nil {
		return nil, storeErr(err)
	}
	return &e, nil
}

// ExistsByEmployeeID reports whether an employee with the given business key
// is present in the directory.
func (r *EmployeeRepo) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return false, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{"employee_id": employeeID}, options.Count().SetLimit(1))
	if err != nil {
		return false, storeErr(err)
	}
	return n > 0, nil
}

// List returns every employee, newest first.
func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Employee, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// Delete removes an employee by document id. Returns ErrNotFound when the id
// is malformed or no document was deleted.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", ErrNotFound, id)
	}
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of employees in the directory.
func (r *EmployeeRepo) Count(ctx context.Context) (int64, error) {
	coll, err := r.store.Collection(ctx, CollEmployees)
	if err != nil {
		return 0, err
	}
	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}
