package httpapi

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/auth"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/catalog"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/cdn"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/config"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/vacation"
)

// Handler owns the HTTP surface around the domain services.
type Handler struct {
	cfg       config.App
	staff     *staff.Service
	importer  *staff.Importer
	vacations *vacation.Service
	catalogs  *catalog.Service
	cdn       *cdn.Client // nil when not configured
}

// New wires the handler.
func New(cfg config.App, staffSvc *staff.Service, importer *staff.Importer,
	vacations *vacation.Service, catalogs *catalog.Service, cdnClient *cdn.Client) *Handler {
	return &Handler{
		cfg:       cfg,
		staff:     staffSvc,
		importer:  importer,
		vacations: vacations,
		catalogs:  catalogs,
		cdn:       cdnClient,
	}
}

// Register mounts all API routes under /api/v1. Reads stay open; writes
// go through the auth middleware (a pass-through unless an admin key is
// configured).
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api/v1")
	guard := auth.Require(h.cfg.AuthEnabled(), h.cfg.JWTSigningKey, h.cfg.JWTIssuer)

	api.POST("/auth/token", h.issueToken)

	api.GET("/staff", h.listStaff)
	api.GET("/staff/export", h.exportStaff)
	api.GET("/staff/:id", h.getStaff)
	api.GET("/stats", h.stats)

	mutate := api.Group("", guard)
	mutate.POST("/staff", h.createStaff)
	mutate.PUT("/staff/:id", h.updateStaff)
	mutate.DELETE("/staff/:id", h.deleteStaff)
	mutate.POST("/staff/bulk", h.bulkStaff)
	mutate.POST("/staff/import", h.importStaff)
	mutate.POST("/staff/import/confirm", h.confirmImport)
	mutate.POST("/uploads", h.upload)

	for path, kind := range map[string]catalog.Kind{
		"/hotels":      catalog.Hotels,
		"/companies":   catalog.Companies,
		"/departments": catalog.Departments,
	} {
		api.GET(path, h.listCatalog(kind))
		mutate.POST(path, h.addCatalog(kind))
		mutate.DELETE(path+"/:name", h.removeCatalog(kind))
	}

	api.GET("/vacations", h.listVacations)
	api.GET("/vacations/:id", h.getVacation)
	mutate.POST("/vacations", h.createVacation)
	mutate.PUT("/vacations/:id", h.updateVacation)
	mutate.DELETE("/vacations/:id", h.deleteVacation)
}

func (h *Handler) stats(c *gin.Context) {
	staffStats, err := h.staff.Snapshot(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	vacationCounts, err := h.vacations.CountByStatus(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{
		"staff":     staffStats,
		"vacations": vacationCounts,
	})
}

func (h *Handler) issueToken(c *gin.Context) {
	if !h.cfg.AuthEnabled() {
		respondErr(c, http.StatusServiceUnavailable, "auth not configured")
		return
	}
	var p struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&p); err != nil || p.Key == "" {
		respondErr(c, http.StatusBadRequest, "key required")
		return
	}
	if p.Key != h.cfg.AdminAPIKey {
		respondErr(c, http.StatusUnauthorized, "invalid key")
		return
	}
	token, err := auth.Issue("admin", h.cfg.JWTIssuer, h.cfg.JWTSigningKey, h.cfg.AccessTTL)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{
		"accessToken": token.Value,
		"expiresAt":   token.ExpiresAt.Unix(),
	})
}

// upload pushes a photo to the CDN and returns the URL for the record's
// photo field. Accepts multipart "file" or a JSON base64 data URL.
func (h *Handler) upload(c *gin.Context) {
	if h.cdn == nil {
		respondErr(c, http.StatusServiceUnavailable, "image storage not configured")
		return
	}

	var result *cdn.UploadResult
	var err error
	if strings.Contains(c.ContentType(), "multipart/form-data") {
		file, header, ferr := c.Request.FormFile("file")
		if ferr != nil {
			respondErr(c, http.StatusBadRequest, "file field required")
			return
		}
		defer file.Close()
		data, ferr := io.ReadAll(file)
		if ferr != nil {
			fail(c, ferr)
			return
		}
		result, err = h.cdn.UploadBytes(data, header.Filename)
	} else {
		var body struct {
			Data string `json:"data"`
		}
		if berr := c.ShouldBindJSON(&body); berr != nil || body.Data == "" {
			respondErr(c, http.StatusBadRequest, `provide {"data": "<base64 data URL>"}`)
			return
		}
		result, err = h.cdn.UploadBase64(body.Data)
	}
	if err != nil {
		log.Printf("photo upload failed: %v", err)
		respondErr(c, http.StatusBadGateway, "image upload failed")
		return
	}
	respond(c, http.StatusOK, "", gin.H{
		"url":   result.SecureURL,
		"bytes": result.Bytes,
	})
}
