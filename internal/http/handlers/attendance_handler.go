// Attendance HTTP handlers.
//
// This file exposes REST endpoints for attendance resources:
//   - POST /attendance/                 (record a daily marker)
//   - GET  /attendance/all/             (list markers across employees, optional ?date=)
//   - GET  /attendance/{employee_id}/   (list one employee's markers)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses.
//
// Idempotency:
// If the client supplies an Idempotency-Key header on the create endpoint and
// a previous successful result exists for (user, path, key), the handler
// returns that recorded marker and sets `Idempotency-Replayed: true`.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openhrms/go-hrms-backend/internal/domain"
	"github.com/openhrms/go-hrms-backend/internal/repo"
	"github.com/openhrms/go-hrms-backend/internal/services"
	"github.com/openhrms/go-hrms-backend/internal/sysutil"
)

//
// Service contracts (context-aware)
//

// AttendanceService defines the attendance operations consumed by HTTP
// handlers. Implementations should be safe for concurrent use and must honor
// the provided context for cancellation and timeouts.
type AttendanceService interface {
	// Create records one marker for employeeID on date with the given status.
	Create(ctx context.Context, employeeID, date, status string) (*services.AttendanceRecord, error)
	// Get fetches one marker by document id.
	Get(ctx context.Context, id string) (*services.AttendanceRecord, error)
	// ListAll returns markers across employees, optionally for a single day.
	ListAll(ctx context.Context, date string) ([]services.AttendanceRecord, error)
	// ListByEmployee returns one employee's markers with identity and count.
	ListByEmployee(ctx context.Context, employeeID string) (*services.EmployeeAttendance, error)
	// Dashboard returns the headline summary.
	Dashboard(ctx context.Context) (*services.DashboardSummary, error)
}

// EmployeeService defines the directory operations consumed by HTTP handlers.
type EmployeeService interface {
	Create(ctx context.Context, employeeID, fullName, email, department string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id string) (*domain.Employee, error)
}

// IdempotencyStore records completed writes so retried requests can replay the
// original outcome instead of re-executing it.
type IdempotencyStore interface {
	Get(ctx context.Context, userID, scope, key string) (*domain.Idempotency, error)
	Create(ctx context.Context, userID, scope, key, recordID string, status int, ttl time.Duration) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for attendance, employees, and the dashboard.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	attSvc AttendanceService
	empSvc EmployeeService

	// idem is optional; when nil the Idempotency-Key header is ignored.
	idem    IdempotencyStore
	idemTTL time.Duration
}

// New constructs a Handlers instance bound to the given services. idem may be
// nil to disable idempotent replay on the create endpoint.
func New(attSvc AttendanceService, empSvc EmployeeService, idem IdempotencyStore, idemTTL time.Duration) *Handlers {
	if idemTTL <= 0 {
		idemTTL = 24 * time.Hour
	}
	return &Handlers{attSvc: attSvc, empSvc: empSvc, idem: idem, idemTTL: idemTTL}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	var fromCtx string
	if v, ok := c.Get("userID"); ok {
		fromCtx, _ = v.(string)
	}
	var fromHeader string
	if c != nil && c.Request != nil {
		fromHeader = c.GetHeader("X-User-ID")
	}
	return strings.TrimSpace(sysutil.FirstNonEmpty(fromCtx, fromHeader, "demo-user"))
}

// idempotencyKey reads the Idempotency-Key header if an upstream middleware
// validated it, falling back to the raw header.
func idempotencyKey(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Idempotency-Key"))
}

//
// DTOs
//

// CreateAttendanceRequest is the JSON payload for recording a daily marker.
// The binding tags enforce the domain constraints at the transport layer; the
// service re-validates (notably that the date is a real calendar day).
type CreateAttendanceRequest struct {
	// EmployeeID is the business key of the employee ("EMP001"), not the
	// store-assigned document id.
	EmployeeID string `json:"employee_id" binding:"required,max=50" example:"EMP001"`
	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date" binding:"required,datetime=2006-01-02" example:"2026-03-02"`
	// Status is "Present" or "Absent" (case-sensitive).
	Status string `json:"status" binding:"required,oneof=Present Absent" example:"Present"`
}

// CreateAttendanceResponse wraps the created marker with a confirmation message.
type CreateAttendanceResponse struct {
	Message    string                     `json:"message" example:"Attendance recorded successfully"`
	Attendance *services.AttendanceRecord `json:"attendance"`
}

//
// Handlers
//

// CreateAttendance godoc
// @ID          createAttendance
// @Summary     Record attendance
// @Description Records one attendance marker per employee per calendar day.
// @Description Supports idempotency via the Idempotency-Key header: retrying with the same key replays the recorded result.
// @Tags        Attendance
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"  example(user123)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.CreateAttendanceRequest  true  "Attendance payload"
//
// @Success     201  {object}  handlers.CreateAttendanceResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload or duplicate marker"
// @Failure     404  {object}  handlers.ErrorResponse  "Employee not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /attendance/ [post]
func (h *Handlers) CreateAttendance(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"employee_id, date (YYYY-MM-DD) and status (Present|Absent) are required")
		return
	}

	currentUser := userID(c)
	scope := c.FullPath()

	// Replay path: a completed write under the same key returns the recorded
	// marker without touching the attendance collection again.
	idemKey := idempotencyKey(c)
	if idemKey != "" && h.idem != nil {
		if rec, err := h.idem.Get(ctx, currentUser, scope, idemKey); err == nil && rec != nil {
			if prev, err2 := h.attSvc.Get(ctx, rec.RecordID); err2 == nil {
				c.Header("Idempotency-Replayed", "true")
				ok(c, rec.Status, CreateAttendanceResponse{
					Message:    "Attendance recorded successfully",
					Attendance: prev,
				})
				return
			}
		}
	}

	record, err := h.attSvc.Create(ctx, req.EmployeeID, req.Date, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "status must be Present or Absent")
		case errors.Is(err, services.ErrInvalidDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "date must be a real calendar day in YYYY-MM-DD form")
		case errors.Is(err, services.ErrEmptyEmployeeID):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "employee_id must not be empty")
		case errors.Is(err, services.ErrEmployeeNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")
		case errors.Is(err, services.ErrDuplicateAttendance):
			fail(c, http.StatusBadRequest, ErrCodeDuplicateAttendance, "attendance already recorded for this date")
		case errors.Is(err, repo.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	// Store path: best effort; a failed bookkeeping write never fails the
	// request that already committed.
	if idemKey != "" && h.idem != nil {
		_ = h.idem.Create(ctx, currentUser, scope, idemKey, record.ID, http.StatusCreated, h.idemTTL)
	}

	ok(c, http.StatusCreated, CreateAttendanceResponse{
		Message:    "Attendance recorded successfully",
		Attendance: record,
	})
}

// ListAllAttendance godoc
// @ID          listAllAttendance
// @Summary     List attendance across employees
// @Description Returns a JSON array of all attendance markers, newest date first. Pass ?date=YYYY-MM-DD to restrict to one day; the filter matches the stored date string exactly.
// @Tags        Attendance
// @Produce     json
//
// @Param       date  query  string  false  "Calendar day filter (YYYY-MM-DD)"  example(2026-03-02)
//
// @Success     200  {array}   services.AttendanceRecord
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /attendance/all/ [get]
func (h *Handlers) ListAllAttendance(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))

	records, err := h.attSvc.ListAll(c.Request.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	// Clients consume this listing as a bare array, not an envelope.
	ok(c, http.StatusOK, records)
}

// GetAttendance dispatches GET /attendance/{employee_id}/ on the path
// parameter. Gin's router cannot mount a static "all" segment next to the
// ":employee_id" wildcard, so "all" is a reserved value that routes to the
// cross-employee listing.
func (h *Handlers) GetAttendance(c *gin.Context) {
	if c.Param("employee_id") == "all" {
		h.ListAllAttendance(c)
		return
	}
	h.ListEmployeeAttendance(c)
}

// ListEmployeeAttendance godoc
// @ID          listEmployeeAttendance
// @Summary     List one employee's attendance
// @Description Returns every marker for the given employee business key, newest date first.
// @Tags        Attendance
// @Produce     json
//
// @Param       employee_id  path  string  true  "Employee business key"  example(EMP001)
//
// @Success     200  {object}  services.EmployeeAttendance
// @Failure     404  {object}  handlers.ErrorResponse  "Employee not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /attendance/{employee_id}/ [get]
func (h *Handlers) ListEmployeeAttendance(c *gin.Context) {
	employeeID := c.Param("employee_id")

	result, err := h.attSvc.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyEmployeeID):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "employee_id must not be empty")
		case errors.Is(err, services.ErrEmployeeNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")
		case errors.Is(err, repo.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, result)
}
