package handler

import (
	"errors"
	"net/http"

	"online_tuition/internal/service"
	"online_tuition/internal/validation"
	"online_tuition/internal/view"

	"github.com/gin-gonic/gin"
)

// wantsJSON is true for JSON bodies and for clients that prefer JSON over HTML
func wantsJSON(c *gin.Context) bool {
	if c.ContentType() == gin.MIMEJSON {
		return true
	}
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

// respondError maps service errors to status codes. HTML callers get page re-rendered with the
// failure, JSON callers get the usual {"error": ...} body.
func respondError(c *gin.Context, err error, pageName string, page view.Page) {
	_ = c.Error(err)

	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error(), "fields": verrs})
			return
		}
		page.Fields = verrs
		c.HTML(http.StatusBadRequest, pageName, page)
	case errors.Is(err, service.ErrStorageUnavailable):
		respondFailure(c, http.StatusInternalServerError, "Storage is unavailable, please try again later", pageName, page)
	default:
		respondFailure(c, http.StatusInternalServerError, "Internal server error", pageName, page)
	}
}

func respondFailure(c *gin.Context, code int, message string, pageName string, page view.Page) {
	if wantsJSON(c) {
		c.JSON(code, gin.H{"error": message})
		return
	}
	page.Error = message
	c.HTML(code, pageName, page)
}

func badRequest(c *gin.Context, err error, pageName string, page view.Page) {
	_ = c.Error(err)
	respondFailure(c, http.StatusBadRequest, "Invalid request: "+err.Error(), pageName, page)
}
