package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/catalog"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/vacation"
)

// Every response shares one envelope so the UI has a single unwrap path.
type envelope struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondErr(c *gin.Context, status int, msg string) {
	c.JSON(status, envelope{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// fail maps domain sentinels onto HTTP status codes. Unknown errors are
// logged and reported generically so store internals never leak out.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, staff.ErrNotFound),
		errors.Is(err, vacation.ErrNotFound),
		errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, staff.ErrImportExpired):
		respondErr(c, http.StatusNotFound, err.Error())
	case errors.Is(err, staff.ErrDuplicateBatch),
		errors.Is(err, staff.ErrAllDuplicates),
		errors.Is(err, catalog.ErrExists):
		respondErr(c, http.StatusConflict, err.Error())
	case errors.Is(err, staff.ErrNameRequired),
		errors.Is(err, staff.ErrInvalidStatus),
		errors.Is(err, staff.ErrInvalidVisa),
		errors.Is(err, staff.ErrInvalidAction),
		errors.Is(err, vacation.ErrStaffRequired),
		errors.Is(err, vacation.ErrDateOrder),
		errors.Is(err, vacation.ErrInvalidStatus),
		errors.Is(err, catalog.ErrEmptyName):
		respondErr(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		respondErr(c, http.StatusInternalServerError, "internal error")
	}
}
