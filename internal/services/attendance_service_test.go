package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openhrms/go-hrms-backend/internal/domain"
	"github.com/openhrms/go-hrms-backend/internal/repo"
	"github.com/openhrms/go-hrms-backend/internal/utils"
)

// stubAttendanceStore is an in-memory AttendanceStore for service tests.
type stubAttendanceStore struct {
	records []domain.Attendance

	insertErr error
	existsErr error
	listErr   error
}

func (s *stubAttendanceStore) Insert(_ context.Context, a *domain.Attendance) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	for _, r := range s.records {
		if r.EmployeeID == a.EmployeeID && r.Date == a.Date {
			return repo.ErrDuplicate
		}
	}
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	s.records = append(s.records, *a)
	return nil
}

func (s *stubAttendanceStore) Exists(_ context.Context, employeeID, date string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAttendanceStore) GetByID(_ context.Context, id string) (*domain.Attendance, error) {
	for i := range s.records {
		if s.records[i].ID.Hex() == id {
			return &s.records[i], nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *stubAttendanceStore) ListAll(_ context.Context, date string) ([]domain.Attendance, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Attendance, 0)
	for _, r := range s.records {
		if date == "" || r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAttendanceStore) ListByEmployee(_ context.Context, employeeID string) ([]domain.Attendance, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Attendance, 0)
	for _, r := range s.records {
		if r.EmployeeID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubAttendanceStore) CountByStatus(_ context.Context, date string, status domain.AttendanceStatus) (int64, error) {
	var n int64
	for _, r := range s.records {
		if r.Date == date && r.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *stubAttendanceStore) DepartmentBreakdown(_ context.Context, date string) ([]repo.DepartmentPresence, error) {
	byDept := map[string]*repo.DepartmentPresence{}
	order := []string{}
	for _, r := range s.records {
		if r.Date != date {
			continue
		}
		row, ok := byDept[r.EmployeeDepartment]
		if !ok {
			row = &repo.DepartmentPresence{Department: r.EmployeeDepartment}
			byDept[r.EmployeeDepartment] = row
			order = append(order, r.EmployeeDepartment)
		}
		if r.Status == domain.StatusPresent {
			row.Present++
		} else {
			row.Absent++
		}
	}
	out := make([]repo.DepartmentPresence, 0, len(order))
	for _, d := range order {
		out = append(out, *byDept[d])
	}
	return out, nil
}

// stubDirectory is an in-memory EmployeeDirectory keyed by business key.
type stubDirectory struct {
	employees map[string]*domain.Employee
	getErr    error
}

func (d *stubDirectory) GetByEmployeeID(_ context.Context, employeeID string) (*domain.Employee, error) {
	if d.getErr != nil {
		return nil, d.getErr
	}
	if e, ok := d.employees[employeeID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (d *stubDirectory) Count(_ context.Context) (int64, error) {
	return int64(len(d.employees)), nil
}

func newTestDirectory() *stubDirectory {
	return &stubDirectory{employees: map[string]*domain.Employee{
		"EMP001": {ID: primitive.NewObjectID(), EmployeeID: "EMP001", FullName: "Ada Lovelace", Email: "ada@example.com", Department: "Engineering"},
		"EMP002": {ID: primitive.NewObjectID(), EmployeeID: "EMP002", FullName: "Grace Hopper", Email: "grace@example.com", Department: "Engineering"},
		"EMP003": {ID: primitive.NewObjectID(), EmployeeID: "EMP003", FullName: "Jean Bartik", Email: "jean@example.com", Department: "Sales"},
	}}
}

func TestAttendanceCreate_HappyPath(t *testing.T) {
	store := &stubAttendanceStore{}
	dir := newTestDirectory()
	svc := NewAttendanceService(store, dir)

	rec, err := svc.Create(context.Background(), "EMP001", "2026-03-02", "Present")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Employee.EmployeeID != "EMP001" || rec.Employee.FullName != "Ada Lovelace" {
		t.Fatalf("record employee = %+v; snapshot not taken", rec.Employee)
	}
	if rec.Employee.ID != dir.employees["EMP001"].ID.Hex() {
		t.Fatalf("record employee id = %q; want directory document id", rec.Employee.ID)
	}
	if rec.Date != "2026-03-02" || rec.Status != "Present" {
		t.Fatalf("record = %+v", rec)
	}
	if rec.ID == "" || rec.CreatedAt == "" {
		t.Fatalf("record missing id or created_at: %+v", rec)
	}
	if len(store.records) != 1 {
		t.Fatalf("stored records = %d; want 1", len(store.records))
	}
	if store.records[0].EmployeeEmail != "ada@example.com" {
		t.Fatalf("stored snapshot email = %q", store.records[0].EmployeeEmail)
	}
}

func TestAttendanceCreate_Validation(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceStore{}, newTestDirectory())
	ctx := context.Background()

	cases := []struct {
		name       string
		employeeID string
		date       string
		status     string
		want       error
	}{
		{"bad status", "EMP001", "2026-03-02", "Late", ErrInvalidStatus},
		{"empty status", "EMP001", "2026-03-02", "", ErrInvalidStatus},
		{"lowercase status", "EMP001", "2026-03-02", "present", ErrInvalidStatus},
		{"bad date shape", "EMP001", "02-03-2026", "Present", ErrInvalidDate},
		{"impossible date", "EMP001", "2026-02-30", "Present", ErrInvalidDate},
		{"blank employee", "   ", "2026-03-02", "Present", ErrEmptyEmployeeID},
		{"unknown employee", "EMP999", "2026-03-02", "Present", ErrEmployeeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.employeeID, tc.date, tc.status); !errors.Is(err, tc.want) {
				t.Fatalf("Create = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestAttendanceCreate_Duplicate(t *testing.T) {
	store := &stubAttendanceStore{}
	svc := NewAttendanceService(store, newTestDirectory())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "EMP001", "2026-03-02", "Present"); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if _, err := svc.Create(ctx, "EMP001", "2026-03-02", "Absent"); !errors.Is(err, ErrDuplicateAttendance) {
		t.Fatalf("second Create = %v; want ErrDuplicateAttendance", err)
	}
	// Same employee, different day is fine; different employee, same day too.
	if _, err := svc.Create(ctx, "EMP001", "2026-03-03", "Absent"); err != nil {
		t.Fatalf("next-day Create: %v", err)
	}
	if _, err := svc.Create(ctx, "EMP002", "2026-03-02", "Present"); err != nil {
		t.Fatalf("other-employee Create: %v", err)
	}
}

func TestAttendanceCreate_RaceLosesAtInsert(t *testing.T) {
	// The existence check passes but the insert hits the unique index, as
	// happens when two writers race. The index error must come back as the
	// same sentinel the fast path uses.
	store := &stubAttendanceStore{insertErr: repo.ErrDuplicate}
	svc := NewAttendanceService(store, newTestDirectory())

	if _, err := svc.Create(context.Background(), "EMP001", "2026-03-02", "Present"); !errors.Is(err, ErrDuplicateAttendance) {
		t.Fatalf("Create = %v; want ErrDuplicateAttendance", err)
	}
}

func TestAttendanceCreate_StoreFailure(t *testing.T) {
	store := &stubAttendanceStore{existsErr: repo.ErrUnavailable}
	svc := NewAttendanceService(store, newTestDirectory())

	if _, err := svc.Create(context.Background(), "EMP001", "2026-03-02", "Present"); !errors.Is(err, repo.ErrUnavailable) {
		t.Fatalf("Create = %v; want ErrUnavailable passthrough", err)
	}
}

func TestAttendanceListAll_MalformedFilterMatchesNothing(t *testing.T) {
	store := &stubAttendanceStore{}
	svc := NewAttendanceService(store, newTestDirectory())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "EMP001", "2026-03-02", "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// The filter is compared exactly against stored date strings; a value
	// that is not a real day simply matches no rows.
	out, err := svc.ListAll(ctx, "2026-13-01")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("ListAll = %#v; want empty non-nil slice", out)
	}
}

func TestAttendanceListAll_EmptyIsNotNil(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceStore{}, newTestDirectory())
	out, err := svc.ListAll(context.Background(), "")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("ListAll = %#v; want empty non-nil slice", out)
	}
}

func TestAttendanceListByEmployee_UnknownEmployee(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceStore{}, newTestDirectory())
	if _, err := svc.ListByEmployee(context.Background(), "EMP999"); !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("ListByEmployee = %v; want ErrEmployeeNotFound", err)
	}
	if _, err := svc.ListByEmployee(context.Background(), "  "); !errors.Is(err, ErrEmptyEmployeeID) {
		t.Fatalf("ListByEmployee blank = %v; want ErrEmptyEmployeeID", err)
	}
}

// ListAll renders from the snapshot taken at creation time; ListByEmployee
// resolves the directory's current profile. After a rename the two views of
// the same marker disagree on the name, as intended.
func TestAttendance_SnapshotAsymmetry(t *testing.T) {
	store := &stubAttendanceStore{}
	dir := newTestDirectory()
	svc := NewAttendanceService(store, dir)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "EMP001", "2026-03-02", "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dir.employees["EMP001"].FullName = "Ada King"
	dir.employees["EMP001"].Department = "Research"

	all, err := svc.ListAll(ctx, "")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("ListAll len = %d; want 1", len(all))
	}
	if all[0].Employee.FullName != "Ada Lovelace" || all[0].Employee.Department != "Engineering" {
		t.Fatalf("ListAll employee = %+v; want creation-time snapshot", all[0].Employee)
	}
	if all[0].Employee.ID != "EMP001" || all[0].Employee.EmployeeID != "EMP001" {
		t.Fatalf("ListAll employee ref = %+v; want business key on snapshot path", all[0].Employee)
	}

	mine, err := svc.ListByEmployee(ctx, "EMP001")
	if err != nil {
		t.Fatalf("ListByEmployee: %v", err)
	}
	if mine.EmployeeID != "EMP001" || mine.FullName != "Ada King" || mine.Count != 1 {
		t.Fatalf("ListByEmployee envelope = %+v; want live identity and count 1", mine)
	}
	if len(mine.Attendance) != 1 {
		t.Fatalf("ListByEmployee len = %d; want 1", len(mine.Attendance))
	}
	got := mine.Attendance[0].Employee
	if got.FullName != "Ada King" || got.Department != "Research" {
		t.Fatalf("ListByEmployee employee = %+v; want live profile", got)
	}
	if got.ID != dir.employees["EMP001"].ID.Hex() {
		t.Fatalf("ListByEmployee employee id = %q; want directory document id", got.ID)
	}
}

func TestAttendanceGet_FormatsSnapshot(t *testing.T) {
	store := &stubAttendanceStore{}
	svc := NewAttendanceService(store, newTestDirectory())
	ctx := context.Background()

	created, err := svc.Create(ctx, "EMP003", "2026-03-02", "Absent")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Date != created.Date || got.Status != created.Status {
		t.Fatalf("Get = %+v; want %+v", got, created)
	}
	if got.Employee.FullName != "Jean Bartik" || got.Employee.Email != "jean@example.com" {
		t.Fatalf("Get employee = %+v; want stored snapshot", got.Employee)
	}
	// The snapshot carries no directory document id, so the ref's id is the
	// business key here, unlike the create response.
	if got.Employee.ID != "EMP003" || got.Employee.EmployeeID != "EMP003" {
		t.Fatalf("Get employee ref = %+v", got.Employee)
	}
}

func TestAttendanceCountByStatus(t *testing.T) {
	store := &stubAttendanceStore{}
	svc := NewAttendanceService(store, newTestDirectory())
	ctx := context.Background()

	if _, err := svc.Create(ctx, "EMP001", "2026-03-02", "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "EMP002", "2026-03-02", "Absent"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	n, err := svc.CountByStatus(ctx, "2026-03-02", domain.StatusPresent)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountByStatus = %d; want 1", n)
	}
	if _, err := svc.CountByStatus(ctx, "2026-03-02", domain.AttendanceStatus("Late")); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("CountByStatus = %v; want ErrInvalidStatus", err)
	}
	if _, err := svc.CountByStatus(ctx, "2026-13-01", domain.StatusPresent); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("CountByStatus = %v; want ErrInvalidDate", err)
	}
}

func TestDashboard_Summary(t *testing.T) {
	store := &stubAttendanceStore{}
	dir := newTestDirectory()
	svc := NewAttendanceService(store, dir)
	ctx := context.Background()
	today := utils.Today()

	if _, err := svc.Create(ctx, "EMP001", today, "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "EMP002", today, "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "EMP003", today, "Absent"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// A marker from another day must not leak into today's numbers.
	if _, err := svc.Create(ctx, "EMP001", "2020-01-01", "Present"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	sum, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if sum.TotalEmployees != 3 {
		t.Fatalf("TotalEmployees = %d; want 3", sum.TotalEmployees)
	}
	if sum.PresentToday != 2 {
		t.Fatalf("PresentToday = %d; want 2", sum.PresentToday)
	}
	if len(sum.Departments) != 2 {
		t.Fatalf("Departments = %+v; want 2 rows", sum.Departments)
	}
}
