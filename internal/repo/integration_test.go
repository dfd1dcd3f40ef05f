package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/openhrms/go-hrms-backend/internal/domain"
)

// testStore dials the instance named by MONGO_TEST_URI, skipping the test when
// the variable is unset. Each call gets a throwaway database that is dropped
// on cleanup so runs do not interfere.
func testStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set; skipping store integration test")
	}
	dbName := fmt.Sprintf("hrms_test_%d", time.Now().UnixNano())
	s := NewStore(uri, dbName, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Connect(ctx); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := s.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.mu.Lock()
		client := s.client
		s.mu.Unlock()
		if client != nil {
			_ = client.Database(dbName).Drop(ctx)
		}
		_ = s.Close(ctx)
	})
	return s
}

func TestAttendanceRepo_InsertAndDuplicate(t *testing.T) {
	s := testStore(t)
	r := NewAttendanceRepo(s)
	ctx := context.Background()

	a := &domain.Attendance{
		EmployeeID:         "EMP001",
		EmployeeName:       "Ada Lovelace",
		EmployeeEmail:      "ada@example.com",
		EmployeeDepartment: "Engineering",
		Date:               "2026-03-02",
		Status:             domain.StatusPresent,
	}
	if err := r.Insert(ctx, a); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if a.ID.IsZero() {
		t.Fatalf("Insert did not backfill document id")
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("Insert did not stamp CreatedAt")
	}

	// Second marker for the same employee and day must hit the unique index.
	dup := &domain.Attendance{EmployeeID: "EMP001", Date: "2026-03-02", Status: domain.StatusAbsent}
	if err := r.Insert(ctx, dup); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Insert duplicate = %v; want ErrDuplicate", err)
	}

	ok, err := r.Exists(ctx, "EMP001", "2026-03-02")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("Exists = false; want true")
	}

	got, err := r.GetByID(ctx, a.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EmployeeName != "Ada Lovelace" || got.Status != domain.StatusPresent {
		t.Fatalf("GetByID = %+v; snapshot fields lost", got)
	}
}

func TestAttendanceRepo_ListOrderingAndFilter(t *testing.T) {
	s := testStore(t)
	r := NewAttendanceRepo(s)
	ctx := context.Background()

	seed := []domain.Attendance{
		{EmployeeID: "EMP001", Date: "2026-03-01", Status: domain.StatusPresent},
		{EmployeeID: "EMP001", Date: "2026-03-03", Status: domain.StatusAbsent},
		{EmployeeID: "EMP002", Date: "2026-03-02", Status: domain.StatusPresent},
	}
	for i := range seed {
		if err := r.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	all, err := r.ListAll(ctx, "")
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll len = %d; want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Date < all[i].Date {
			t.Fatalf("ListAll not sorted newest first: %q before %q", all[i-1].Date, all[i].Date)
		}
	}

	day, err := r.ListAll(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("ListAll(date): %v", err)
	}
	if len(day) != 1 || day[0].EmployeeID != "EMP002" {
		t.Fatalf("ListAll(2026-03-02) = %+v; want only EMP002", day)
	}

	mine, err := r.ListByEmployee(ctx, "EMP001")
	if err != nil {
		t.Fatalf("ListByEmployee: %v", err)
	}
	if len(mine) != 2 || mine[0].Date != "2026-03-03" {
		t.Fatalf("ListByEmployee = %+v; want 2 rows newest first", mine)
	}

	n, err := r.CountByStatus(ctx, "2026-03-02", domain.StatusPresent)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if n != 1 {
		t.Fatalf("CountByStatus = %d; want 1", n)
	}
}

func TestEmployeeRepo_CRUD(t *testing.T) {
	s := testStore(t)
	r := NewEmployeeRepo(s)
	ctx := context.Background()

	e := &domain.Employee{
		EmployeeID: "EMP010",
		FullName:   "Grace Hopper",
		Email:      "grace@example.com",
		Department: "Engineering",
	}
	if err := r.Insert(ctx, e); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if e.ID.IsZero() {
		t.Fatalf("Insert did not backfill document id")
	}

	// The violated index is reported back so callers can tell the two
	// uniqueness rules apart; both still match ErrDuplicate.
	if err := r.Insert(ctx, &domain.Employee{
		EmployeeID: "EMP010", Email: "other@example.com",
	}); !errors.Is(err, ErrEmployeeIDTaken) || !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate employee_id = %v; want ErrEmployeeIDTaken", err)
	}
	if err := r.Insert(ctx, &domain.Employee{
		EmployeeID: "EMP011", Email: "grace@example.com",
	}); !errors.Is(err, ErrEmailTaken) || !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate email = %v; want ErrEmailTaken", err)
	}

	got, err := r.GetByEmployeeID(ctx, "EMP010")
	if err != nil {
		t.Fatalf("GetByEmployeeID: %v", err)
	}
	if got.FullName != "Grace Hopper" {
		t.Fatalf("GetByEmployeeID name = %q", got.FullName)
	}
	if _, err := r.GetByEmployeeID(ctx, "NOPE"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByEmployeeID missing = %v; want ErrNotFound", err)
	}

	ok, err := r.ExistsByEmployeeID(ctx, "EMP010")
	if err != nil || !ok {
		t.Fatalf("ExistsByEmployeeID = %v, %v; want true, nil", ok, err)
	}

	byID, err := r.GetByID(ctx, e.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.EmployeeID != "EMP010" {
		t.Fatalf("GetByID = %+v", byID)
	}
	if _, err := r.GetByID(ctx, "not-a-hex-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID malformed id = %v; want ErrNotFound", err)
	}

	n, err := r.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("Count = %d; want 1", n)
	}

	if err := r.Delete(ctx, e.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := r.Delete(ctx, e.ID.Hex()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete again = %v; want ErrNotFound", err)
	}
	if err := r.Delete(ctx, "not-a-hex-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete malformed id = %v; want ErrNotFound", err)
	}
}

func TestIdempotencyRepo_Lifecycle(t *testing.T) {
	s := testStore(t)
	r := NewIdempotencyRepo(s)
	ctx := context.Background()

	if _, err := r.Get(ctx, "u1", "/api/attendance/", "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get before create = %v; want ErrNotFound", err)
	}

	if err := r.Create(ctx, "u1", "/api/attendance/", "k1", "rec-1", 201, time.Hour); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rec, err := r.Get(ctx, "u1", "/api/attendance/", "k1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.RecordID != "rec-1" || rec.Status != 201 {
		t.Fatalf("Get = %+v; want rec-1/201", rec)
	}

	if err := r.Create(ctx, "u1", "/api/attendance/", "k1", "rec-2", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Create duplicate = %v; want ErrDuplicate", err)
	}
	if err := r.Create(ctx, "u1", "/api/attendance/", "k2", "rec-3", 201, 0); err == nil {
		t.Fatalf("Create with zero ttl succeeded; want error")
	}
}

func TestAttendanceRepo_DepartmentBreakdown(t *testing.T) {
	s := testStore(t)
	r := NewAttendanceRepo(s)
	ctx := context.Background()

	seed := []domain.Attendance{
		{EmployeeID: "E1", EmployeeDepartment: "Engineering", Date: "2026-03-02", Status: domain.StatusPresent},
		{EmployeeID: "E2", EmployeeDepartment: "Engineering", Date: "2026-03-02", Status: domain.StatusAbsent},
		{EmployeeID: "E3", EmployeeDepartment: "Sales", Date: "2026-03-02", Status: domain.StatusPresent},
		{EmployeeID: "E4", EmployeeDepartment: "Sales", Date: "2026-03-01", Status: domain.StatusPresent},
	}
	for i := range seed {
		if err := r.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	rows, err := r.DepartmentBreakdown(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("DepartmentBreakdown: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v; want 2 departments", rows)
	}
	if rows[0].Department != "Engineering" || rows[0].Present != 1 || rows[0].Absent != 1 {
		t.Fatalf("Engineering row = %+v", rows[0])
	}
	if rows[1].Department != "Sales" || rows[1].Present != 1 || rows[1].Absent != 0 {
		t.Fatalf("Sales row = %+v", rows[1])
	}
}
