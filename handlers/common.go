// handlers/common.go
package handlers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

const sessionEmailKey = "sessionEmail"

// sessionEmail returns the authenticated email set by the session
// middleware, or "" when the request carries no valid session
func sessionEmail(c *gin.Context) string {
	return c.GetString(sessionEmailKey)
}

// parseDateRange reads start_date/end_date/filter_field query parameters.
// Unparseable dates are ignored rather than rejected; the filter just
// narrows less.
func parseDateRange(c *gin.Context) (*time.Time, *time.Time, string) {
	var start, end *time.Time
	if v := c.Query("start_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			start = &t
		}
	}
	if v := c.Query("end_date"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end = &t
		}
	}
	return start, end, c.Query("filter_field")
}

// collectDocumentFiles opens the uploaded "documents" files of a multipart
// form. The returned closer must be called after the service consumed the
// readers.
func collectDocumentFiles(c *gin.Context) ([]models.DocumentFile, func()) {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil, func() {}
	}

	var files []models.DocumentFile
	var closers []func() error
	for _, header := range form.File["documents"] {
		opened, err := header.Open()
		if err != nil {
			log.Printf("Failed to open uploaded file %s: %v", header.Filename, err)
			continue
		}
		closers = append(closers, opened.Close)
		files = append(files, models.DocumentFile{
			Name:   utils.CleanFileName(header.Filename),
			Size:   header.Size,
			Reader: opened,
		})
	}

	return files, func() {
		for _, close := range closers {
			close()
		}
	}
}

// parseRemoveIndices reads the documents_to_remove form field, accepting
// both repeated values and a single comma-separated value
func parseRemoveIndices(c *gin.Context) []int {
	values := c.PostFormArray("documents_to_remove")
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	var indices []int
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if index, err := strconv.Atoi(value); err == nil {
			indices = append(indices, index)
		}
	}
	return indices
}

// pathID parses the :id path parameter
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
