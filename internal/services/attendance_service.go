// Package services – AttendanceService
//
// This file implements the AttendanceService, which governs daily attendance
// markers. It validates input (real calendar dates, allowed statuses, known
// employees), snapshots the employee profile into each marker at creation
// time, and enforces the one-marker-per-employee-per-day rule. Service-level
// errors (e.g. ErrInvalidDate, ErrEmployeeNotFound, ErrDuplicateAttendance)
// are returned for predictable cases so handlers can map them to HTTP results
// consistently.
//
// Observability: all public methods are OpenTelemetry-instrumented; spans
// include employee identifiers and date parameters where applicable.
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
	"github.com/openhrms/go-hrms-backend/internal/utils"
)

// AttendanceStore defines the repository contract required by
// AttendanceService for marker persistence.
type AttendanceStore interface {
	// Insert stores a new marker; a same-day duplicate yields repo.ErrDuplicate.
	Insert(ctx context.Context, a *domain.Attendance) error

	// Exists reports whether a marker exists for the employee on the date.
	Exists(ctx context.Context, employeeID, date string) (bool, error)

	// GetByID fetches a marker by document id.
	GetByID(ctx context.Context, id string) (*domain.Attendance, error)

	// ListAll returns markers across employees, optionally filtered to one day.
	ListAll(ctx context.Context, date string) ([]domain.Attendance, error)

	// ListByEmployee returns all markers for one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Attendance, error)

	// CountByStatus counts markers with a status on a date.
	CountByStatus(ctx context.Context, date string, status domain.AttendanceStatus) (int64, error)

	// DepartmentBreakdown aggregates one day's markers per department.
	DepartmentBreakdown(ctx context.Context, date string) ([]repo.DepartmentPresence, error)
}

// EmployeeDirectory is the read-side contract AttendanceService needs from the
// employee directory.
type EmployeeDirectory interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	Count(ctx context.Context) (int64, error)
}

// EmployeeRef is the employee sub-object embedded in attendance responses.
// On paths that resolve the directory live (create, per-employee listing) ID
// is the store-assigned document id; on snapshot paths the snapshot holds no
// document id, so ID falls back to the business key.
type EmployeeRef struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// AttendanceRecord is the wire form of one attendance marker.
type AttendanceRecord struct {
	ID        string      `json:"id"`
	Employee  EmployeeRef `json:"employee"`
	Date      string      `json:"date"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
}

// EmployeeAttendance wraps one employee's markers with identity and a count.
type EmployeeAttendance struct {
	EmployeeID string             `json:"employee_id"`
	FullName   string             `json:"full_name"`
	Count      int                `json:"count"`
	Attendance []AttendanceRecord `json:"attendance"`
}

// DashboardSummary aggregates headline numbers for the dashboard endpoint.
type DashboardSummary struct {
	TotalEmployees int64                     `json:"total_employees"`
	PresentToday   int64                     `json:"present_today"`
	Departments    []repo.DepartmentPresence `json:"departments"`
}

// AttendanceService provides the attendance use-cases: recording a daily
// marker, listing markers, and the dashboard summary.
type AttendanceService struct {
	// Repo is the attendance repository used by this service.
	Repo AttendanceStore
	// Directory resolves employee business keys.
	Directory EmployeeDirectory
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(r AttendanceStore, dir EmployeeDirectory) *AttendanceService {
	return &AttendanceService{Repo: r, Directory: dir}
}

// Create records one attendance marker for employeeID on date.
//
// Semantics and validation:
//   - status must be "Present" or "Absent"; otherwise ErrInvalidStatus.
//   - date must be a real calendar day in YYYY-MM-DD form; otherwise ErrInvalidDate.
//   - employeeID is trimmed; blank yields ErrEmptyEmployeeID.
//   - The employee must exist in the directory; otherwise ErrEmployeeNotFound.
//   - At most one marker per employee per day; a second yields ErrDuplicateAttendance.
//
// Concurrency:
//   - The pre-insert existence check gives a friendly fast path, but the
//     unique (employee_id, date) index is the authority: a racing writer that
//     slips past the check still loses at insert and gets
//     ErrDuplicateAttendance.
//
// The employee's name, email, and department are snapshotted into the marker
// at creation time and never refreshed afterwards.
func (s *AttendanceService) Create(ctx context.Context, employeeID, date, status string) (*AttendanceRecord, error) {
	tr := otel.Tracer("services/AttendanceService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("employee.id", employeeID),
			attribute.String("attendance.date", date),
		),
	)
	defer span.End()

	st := domain.AttendanceStatus(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}
	if !utils.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrEmptyEmployeeID
	}

	emp, err := s.Directory.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	exists, err := s.Repo.Exists(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateAttendance
	}

	a := &domain.Attendance{
		EmployeeID:         employeeID,
		EmployeeName:       emp.FullName,
		EmployeeEmail:      emp.Email,
		EmployeeDepartment: emp.Department,
		Date:               date,
		Status:             st,
	}
	if err := s.Repo.Insert(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateAttendance
		}
		return nil, err
	}
	return &AttendanceRecord{
		ID:        a.ID.Hex(),
		Employee:  refFromEmployee(emp),
		Date:      a.Date,
		Status:    string(a.Status),
		CreatedAt: utils.FormatUTC(a.CreatedAt),
	}, nil
}

// Get fetches one marker by document id and formats it from its stored
// snapshot. Used to rebuild the response when an idempotent create replays.
func (s *AttendanceService) Get(ctx context.Context, id string) (*AttendanceRecord, error) {
	a, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := recordFromSnapshot(a)
	return &rec, nil
}

// ListAll returns attendance markers across all employees, newest date first,
// optionally restricted to a single day. The filter is matched exactly
// against the stored date string, so a malformed value matches nothing and
// yields an empty list rather than an error. Records are rendered from the
// snapshot stored in each marker, so deleted or since-renamed employees still
// appear exactly as they were when the marker was recorded.
func (s *AttendanceService) ListAll(ctx context.Context, date string) ([]AttendanceRecord, error) {
	tr := otel.Tracer("services/AttendanceService")
	ctx, span := tr.Start(ctx, "ListAll",
		trace.WithAttributes(attribute.String("attendance.date", date)),
	)
	defer span.End()

	items, err := s.Repo.ListAll(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make([]AttendanceRecord, 0, len(items))
	for i := range items {
		out = append(out, recordFromSnapshot(&items[i]))
	}
	return out, nil
}

// ListByEmployee returns every marker for one employee, newest date first,
// wrapped with the employee's identity and a count. Unlike ListAll, the
// employee sub-object reflects the directory's current profile: the business
// key is resolved live, so a rename or email change shows up here even on old
// markers. A missing employee yields ErrEmployeeNotFound rather than an empty
// list.
func (s *AttendanceService) ListByEmployee(ctx context.Context, employeeID string) (*EmployeeAttendance, error) {
	tr := otel.Tracer("services/AttendanceService")
	ctx, span := tr.Start(ctx, "ListByEmployee",
		trace.WithAttributes(attribute.String("employee.id", employeeID)),
	)
	defer span.End()

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, ErrEmptyEmployeeID
	}
	emp, err := s.Directory.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	items, err := s.Repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	ref := refFromEmployee(emp)
	out := make([]AttendanceRecord, 0, len(items))
	for i := range items {
		a := &items[i]
		out = append(out, AttendanceRecord{
			ID:        a.ID.Hex(),
			Employee:  ref,
			Date:      a.Date,
			Status:    string(a.Status),
			CreatedAt: utils.FormatUTC(a.CreatedAt),
		})
	}
	return &EmployeeAttendance{
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Count:      len(out),
		Attendance: out,
	}, nil
}

// CountByStatus counts markers carrying the given status on one calendar day.
// The status must be a valid marker status and the date a real calendar day.
func (s *AttendanceService) CountByStatus(ctx context.Context, date string, status domain.AttendanceStatus) (int64, error) {
	tr := otel.Tracer("services/AttendanceService")
	ctx, span := tr.Start(ctx, "CountByStatus",
		trace.WithAttributes(
			attribute.String("attendance.date", date),
			attribute.String("attendance.status", string(status)),
		),
	)
	defer span.End()

	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	if !utils.ValidDate(date) {
		return 0, ErrInvalidDate
	}
	return s.Repo.CountByStatus(ctx, date, status)
}

// Dashboard computes the headline summary: total employees in the directory,
// markers with status Present for today (UTC), and today's per-department
// breakdown.
func (s *AttendanceService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	tr := otel.Tracer("services/AttendanceService")
	ctx, span := tr.Start(ctx, "Dashboard")
	defer span.End()

	total, err := s.Directory.Count(ctx)
	if err != nil {
		return nil, err
	}
	today := utils.Today()
	present, err := s.CountByStatus(ctx, today, domain.StatusPresent)
	if err != nil {
		return nil, err
	}
	depts, err := s.Repo.DepartmentBreakdown(ctx, today)
	if err != nil {
		return nil, err
	}
	return &DashboardSummary{
		TotalEmployees: total,
		PresentToday:   present,
		Departments:    depts,
	}, nil
}

// refFromEmployee renders the sub-object from a live directory document.
func refFromEmployee(e *domain.Employee) EmployeeRef {
	return EmployeeRef{
		ID:         e.ID.Hex(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
	}
}

// recordFromSnapshot renders a marker using the employee profile stored
// inside it at creation time. The snapshot holds no directory document id,
// so the ref's ID carries the business key.
func recordFromSnapshot(a *domain.Attendance) AttendanceRecord {
	return AttendanceRecord{
		ID: a.ID.Hex(),
		Employee: EmployeeRef{
			ID:         a.EmployeeID,
			EmployeeID: a.EmployeeID,
			FullName:   a.EmployeeName,
			Email:      a.EmployeeEmail,
			Department: a.EmployeeDepartment,
		},
		Date:      a.Date,
		Status:    string(a.Status),
		CreatedAt: utils.FormatUTC(a.CreatedAt),
	}
}
