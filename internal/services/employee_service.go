// Package services – EmployeeService
//
// This file implements the EmployeeService, which manages the employee
// directory. It normalizes and validates profile fields and maps store-level
// uniqueness violations onto distinct sentinel errors so handlers can tell a
// taken business key from a taken email address.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openhrms/go-hrms-backend/internal/domain"
	"github.com/openhrms/go-hrms-backend/internal/repo"
)

// EmployeeStore defines the repository contract required by EmployeeService.
type EmployeeStore interface {
	Insert(ctx context.Context, e *domain.Employee) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// EmployeeService provides directory-level operations: registering, listing,
// and removing employees.
type EmployeeService struct {
	// Repo is the employee repository used by this service.
	Repo EmployeeStore
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(r EmployeeStore) *EmployeeService {
	return &EmployeeService{Repo: r}
}

// Create registers a new employee in the directory.
//
// Normalization: all fields are trimmed; email is lowercased.
// Validation: employee id, full name, and email are required
// (ErrEmptyEmployeeID for a blank key, ErrInvalidEmployee otherwise).
// A taken business key yields ErrDuplicateEmployeeID; a taken email yields
// ErrDuplicateEmail.
func (s *EmployeeService) Create(ctx context.Context, employeeID, fullName, email, department string) (*domain.Employee, error) {
	tr := otel.Tracer("services/EmployeeService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(attribute.String("employee.id", employeeID)),
	)
	defer span.End()

	employeeID = strings.TrimSpace(employeeID)
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	department = strings.TrimSpace(department)

	if employeeID == "" {
		return nil, ErrEmptyEmployeeID
	}
	if fullName == "" || email == "" {
		return nil, ErrInvalidEmployee
	}

	// Friendly pre-checks; the unique indexes remain the authority under
	// concurrent writers.
	if _, err := s.Repo.GetByEmployeeID(ctx, employeeID); err == nil {
		return nil, ErrDuplicateEmployeeID
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	e := &domain.Employee{
		EmployeeID: employeeID,
		FullName:   fullName,
		Email:      email,
		Department: department,
	}
	if err := s.Repo.Insert(ctx, e); err != nil {
		switch {
		case errors.Is(err, repo.ErrEmployeeIDTaken):
			// A racing writer took the key after the pre-check passed.
			return nil, ErrDuplicateEmployeeID
		case errors.Is(err, repo.ErrDuplicate):
			// The email index, or a collision the server did not attribute;
			// the key path was already pre-checked.
			return nil, ErrDuplicateEmail
		default:
			return nil, err
		}
	}
	return e, nil
}

// List returns every employee in the directory, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	tr := otel.Tracer("services/EmployeeService")
	ctx, span := tr.Start(ctx, "List")
	defer span.End()

	return s.Repo.List(ctx)
}

// Delete removes an employee by document id and returns the removed record.
// A missing or malformed id yields ErrEmployeeNotFound. Existing attendance
// markers keep their snapshot and remain listable after the employee is gone.
func (s *EmployeeService) Delete(ctx context.Context, id string) (*domain.Employee, error) {
	tr := otel.Tracer("services/EmployeeService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("employee.doc_id", id)),
	)
	defer span.End()

	e, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

// GetByEmployeeID resolves an employee by business key.
func (s *EmployeeService) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	e, err := s.Repo.GetByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

// Count returns the number of employees in the directory.
func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}
