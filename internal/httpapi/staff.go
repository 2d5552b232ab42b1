package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

func (h *Handler) listStaff(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}
	records, err := h.staff.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	if records == nil {
		records = []staff.Record{}
	}
	respond(c, http.StatusOK, "", records)
}

// filterFromQuery binds the filter spec from query params; every param
// is optional and an absent param means no constraint.
func filterFromQuery(c *gin.Context) (staff.Filter, error) {
	f := staff.Filter{
		View:       c.Query("view"),
		Search:     c.Query("q"),
		VisaType:   staff.VisaType(c.Query("visaType")),
		Hotel:      c.Query("hotel"),
		Expire:     c.Query("expire"),
		Department: c.Query("department"),
		CardNo:     c.Query("cardNo"),
	}
	if !f.VisaType.Valid() {
		return staff.Filter{}, fmt.Errorf("unknown visa type %q", f.VisaType)
	}
	switch f.Expire {
	case "", staff.BucketExpired, staff.BucketExpiring, staff.BucketValid:
	default:
		return staff.Filter{}, fmt.Errorf("unknown expire bucket %q", f.Expire)
	}
	if v := c.Query("salaryMin"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return staff.Filter{}, fmt.Errorf("invalid salaryMin %q", v)
		}
		f.SalaryMin = &min
	}
	if v := c.Query("salaryMax"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return staff.Filter{}, fmt.Errorf("invalid salaryMax %q", v)
		}
		f.SalaryMax = &max
	}
	if v := c.Query("passportExpireDate"); v != "" {
		d, err := staff.ParseDate(v)
		if err != nil {
			return staff.Filter{}, err
		}
		f.PassportExpireDate = d
	}
	return f, nil
}

func (h *Handler) getStaff(c *gin.Context) {
	rec, err := h.staff.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "", rec)
}

func (h *Handler) createStaff(c *gin.Context) {
	var rec staff.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	created, err := h.staff.Create(c.Request.Context(), rec)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "staff created", created)
}

func (h *Handler) updateStaff(c *gin.Context) {
	var rec staff.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	updated, err := h.staff.Update(c.Request.Context(), c.Param("id"), rec)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "staff updated", updated)
}

func (h *Handler) deleteStaff(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "staff deleted", nil)
}

type bulkPayload struct {
	Action string   `json:"action"`
	IDs    []string `json:"ids"`
	Data   struct {
		Hotel  string `json:"hotel"`
		Status string `json:"status"`
	} `json:"data"`
}

func (h *Handler) bulkStaff(c *gin.Context) {
	var p bulkPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	changed, err := h.staff.Bulk(c.Request.Context(), staff.BulkRequest{
		Action: staff.BulkAction(strings.TrimSpace(p.Action)),
		IDs:    p.IDs,
		Hotel:  p.Data.Hotel,
		Status: staff.Status(p.Data.Status),
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "bulk action applied", gin.H{"changed": changed})
}
