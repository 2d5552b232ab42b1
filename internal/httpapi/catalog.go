package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/catalog"
)

func (h *Handler) listCatalog(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := h.catalogs.List(c.Request.Context(), kind)
		if err != nil {
			fail(c, err)
			return
		}
		if names == nil {
			names = []string{}
		}
		respond(c, http.StatusOK, "", names)
	}
}

func (h *Handler) addCatalog(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p struct {
			Name string `json:"name"`
		}
		if err := c.ShouldBindJSON(&p); err != nil {
			respondErr(c, http.StatusBadRequest, "invalid payload: "+err.Error())
			return
		}
		name, err := h.catalogs.Add(c.Request.Context(), kind, p.Name)
		if err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusCreated, "name added", gin.H{"name": name})
	}
}

func (h *Handler) removeCatalog(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.catalogs.Remove(c.Request.Context(), kind, c.Param("name")); err != nil {
			fail(c, err)
			return
		}
		respond(c, http.StatusOK, "name removed", nil)
	}
}
