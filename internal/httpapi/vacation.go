package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/vacation"
)

func (h *Handler) listVacations(c *gin.Context) {
	status := vacation.Status(c.Query("status"))
	if status != "" && !status.Valid() {
		respondErr(c, http.StatusBadRequest, fmt.Sprintf("unknown vacation status %q", status))
		return
	}
	requests, err := h.vacations.List(c.Request.Context(), c.Query("staffId"), status)
	if err != nil {
		fail(c, err)
		return
	}
	if requests == nil {
		requests = []vacation.Request{}
	}
	respond(c, http.StatusOK, "", requests)
}

func (h *Handler) getVacation(c *gin.Context) {
	req, err := h.vacations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "", req)
}

func (h *Handler) createVacation(c *gin.Context) {
	var req vacation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	created, err := h.vacations.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "vacation request created", created)
}

func (h *Handler) updateVacation(c *gin.Context) {
	var req vacation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	updated, err := h.vacations.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "vacation request updated", updated)
}

func (h *Handler) deleteVacation(c *gin.Context) {
	if err := h.vacations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "vacation request deleted", nil)
}
