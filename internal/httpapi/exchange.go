package httpapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/exchange"
	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

func (h *Handler) exportStaff(c *gin.Context) {
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

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	var buf bytes.Buffer
	var contentType, ext string
	switch format {
	case "csv":
		err = exchange.WriteCSV(&buf, records)
		contentType, ext = "text/csv", "csv"
	case "xlsx":
		err = exchange.WriteXLSX(&buf, records)
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	case "docx":
		err = exchange.WriteDOCX(&buf, records, time.Now())
		contentType, ext = "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx"
	case "json":
		err = exchange.WriteJSON(&buf, records)
		contentType, ext = "application/json", "json"
	default:
		respondErr(c, http.StatusBadRequest, fmt.Sprintf("unknown export format %q", format))
		return
	}
	if err != nil {
		fail(c, err)
		return
	}

	filename := "staff_" + time.Now().Format("20060102") + "." + ext
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// importStaff accepts either a multipart upload under "file" or a raw
// JSON array body. The format comes from ?format=, falling back to the
// uploaded filename's extension, then to JSON.
func (h *Handler) importStaff(c *gin.Context) {
	confirm := c.Query("confirm") == "true"

	var reader io.Reader
	format := strings.ToLower(c.Query("format"))

	if file, header, err := c.Request.FormFile("file"); err == nil {
		defer file.Close()
		reader = file
		if format == "" {
			format = strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
		}
	} else {
		reader = c.Request.Body
		if format == "" {
			format = "json"
		}
	}

	var rows []staff.Record
	var err error
	switch format {
	case "json":
		rows, err = exchange.ReadJSON(reader)
	case "csv":
		rows, err = exchange.ReadCSV(reader)
	case "xlsx":
		rows, err = exchange.ReadXLSX(reader)
	default:
		respondErr(c, http.StatusBadRequest, fmt.Sprintf("unknown import format %q", format))
		return
	}
	if err != nil {
		respondErr(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.importer.Import(c.Request.Context(), rows, confirm)
	if err == staff.ErrAllDuplicates {
		respondErr(c, http.StatusConflict, fmt.Sprintf(
			"all rows duplicate existing batch numbers: %s", strings.Join(result.Duplicates, ", ")))
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if result.Token != "" {
		respond(c, http.StatusAccepted, "duplicates found; confirm to import the valid rows", result)
		return
	}
	respond(c, http.StatusCreated, "import complete", result)
}

func (h *Handler) confirmImport(c *gin.Context) {
	var p struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&p); err != nil || p.Token == "" {
		respondErr(c, http.StatusBadRequest, "token required")
		return
	}
	result, err := h.importer.Confirm(c.Request.Context(), p.Token)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "import complete", result)
}
