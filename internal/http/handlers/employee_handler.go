// Employee HTTP handlers.
//
// This file exposes REST endpoints for the employee directory:
//   - POST   /employees/        (register)
//   - GET    /employees/        (list)
//   - DELETE /employees/{id}/   (remove by document id)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openhrms/go-hrms-backend/internal/domain"
	"github.com/openhrms/go-hrms-backend/internal/repo"
	"github.com/openhrms/go-hrms-backend/internal/services"
	"github.com/openhrms/go-hrms-backend/internal/utils"
)

// CreateEmployeeRequest is the JSON payload for registering an employee.
type CreateEmployeeRequest struct {
	// EmployeeID is the unique business key ("EMP001").
	EmployeeID string `json:"employee_id" binding:"required,max=50" example:"EMP001"`
	FullName   string `json:"full_name" binding:"required,max=255" example:"Ada Lovelace"`
	Email      string `json:"email" binding:"required,email" example:"ada@example.com"`
	Department string `json:"department" binding:"max=255" example:"Engineering"`
}

// EmployeeResponse is the wire form of one directory record.
type EmployeeResponse struct {
	ID         string `json:"id" example:"64f1a2b3c4d5e6f7a8b9c0d1"`
	EmployeeID string `json:"employee_id" example:"EMP001"`
	FullName   string `json:"full_name" example:"Ada Lovelace"`
	Email      string `json:"email" example:"ada@example.com"`
	Department string `json:"department" example:"Engineering"`
	CreatedAt  string `json:"created_at" example:"2026-03-02T09:30:00Z"`
}

// CreateEmployeeResponse confirms a registration.
type CreateEmployeeResponse struct {
	Message  string           `json:"message" example:"Employee created successfully"`
	Employee EmployeeResponse `json:"employee"`
}

// DeleteEmployeeResponse confirms a removal and echoes the removed record.
type DeleteEmployeeResponse struct {
	Message  string           `json:"message" example:"Employee deleted successfully"`
	Employee EmployeeResponse `json:"employee"`
}

// CreateEmployee godoc
// @ID          createEmployee
// @Summary     Register an employee
// @Description Adds a new employee to the directory. Employee id and email must be unique.
// @Tags        Employees
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateEmployeeRequest  true  "Employee payload"
//
// @Success     201  {object}  handlers.CreateEmployeeResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid payload, or employee id / email already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /employees/ [post]
func (h *Handlers) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"employee_id, full_name and a valid email are required")
		return
	}

	e, err := h.empSvc.Create(c.Request.Context(), req.EmployeeID, req.FullName, req.Email, req.Department)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyEmployeeID), errors.Is(err, services.ErrInvalidEmployee):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "employee_id, full_name and email are required")
		case errors.Is(err, services.ErrDuplicateEmployeeID):
			fail(c, http.StatusBadRequest, ErrCodeDuplicateEmployee, "An employee with this employee ID already exists.")
		case errors.Is(err, services.ErrDuplicateEmail):
			fail(c, http.StatusBadRequest, ErrCodeDuplicateEmployee, "An employee with this email already exists.")
		case errors.Is(err, repo.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, CreateEmployeeResponse{
		Message:  "Employee created successfully",
		Employee: employeeResponse(e),
	})
}

// ListEmployees godoc
// @ID          listEmployees
// @Summary     List employees
// @Description Returns a JSON array of every employee in the directory, newest first.
// @Tags        Employees
// @Produce     json
//
// @Success     200  {array}   handlers.EmployeeResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /employees/ [get]
func (h *Handlers) ListEmployees(c *gin.Context) {
	items, err := h.empSvc.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, repo.ErrUnavailable) {
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	out := make([]EmployeeResponse, 0, len(items))
	for i := range items {
		out = append(out, employeeResponse(&items[i]))
	}
	// Clients consume the directory as a bare array, not an envelope.
	ok(c, http.StatusOK, out)
}

// DeleteEmployee godoc
// @ID          deleteEmployee
// @Summary     Remove an employee
// @Description Deletes a directory record by document id. Existing attendance markers keep their snapshot.
// @Tags        Employees
// @Produce     json
//
// @Param       id  path  string  true  "Employee document id"  example(64f1a2b3c4d5e6f7a8b9c0d1)
//
// @Success     200  {object}  handlers.DeleteEmployeeResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Employee not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /employees/{id}/ [delete]
func (h *Handlers) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	e, err := h.empSvc.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "employee not found")
		case errors.Is(err, repo.ErrUnavailable):
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, DeleteEmployeeResponse{
		Message:  "Employee deleted successfully",
		Employee: employeeResponse(e),
	})
}

func employeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID.Hex(),
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  utils.FormatUTC(e.CreatedAt),
	}
}
