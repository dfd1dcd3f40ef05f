// Dashboard HTTP handler.
//
// Exposes GET /dashboard/, the headline summary used by the admin UI: total
// employees in the directory, markers with status Present for today (UTC),
// and today's per-department breakdown.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openhrms/go-hrms-backend/internal/repo"
)

// Dashboard godoc
// @ID          dashboard
// @Summary     Dashboard summary
// @Description Returns total employees, today's present count, and today's per-department breakdown. "Today" is the current UTC calendar day.
// @Tags        Dashboard
// @Produce     json
//
// @Success     200  {object}  services.DashboardSummary
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /dashboard/ [get]
func (h *Handlers) Dashboard(c *gin.Context) {
	sum, err := h.attSvc.Dashboard(c.Request.Context())
	if err != nil {
		if errors.Is(err, repo.ErrUnavailable) {
			fail(c, http.StatusInternalServerError, ErrCodeStoreUnavailable, "document store unavailable")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sum)
}
