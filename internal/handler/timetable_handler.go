package handler

import (
	"net/http"

	"online_tuition/internal/model"
	"online_tuition/internal/service"
	"online_tuition/internal/view"

	"github.com/gin-gonic/gin"
)

// TimetableHandler handles timetable related requests
type TimetableHandler struct {
	service service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler
func NewTimetableHandler(s service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: s}
}

func (h *TimetableHandler) EntryForm(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageAdminTimetable, view.Page{Title: "Add a class"})
}

func (h *TimetableHandler) CreateEntry(c *gin.Context) {
	var req model.CreateTimetableRequest
	page := view.Page{Title: "Add a class"}

	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, view.PageAdminTimetable, page)
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, view.PageAdminTimetable, page)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, entry)
		return
	}
	c.Redirect(http.StatusSeeOther, "/timetable")
}

func (h *TimetableHandler) ShowTimetable(c *gin.Context) {
	page := view.Page{Title: "Timetable"}

	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		respondError(c, err, view.PageTimetable, page)
		return
	}

	page.Entries = entries
	c.HTML(http.StatusOK, view.PageTimetable, page)
}

func (h *TimetableHandler) ListEntries(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve timetable"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// RegisterTimetableRoutes registers timetable routes. Creating an entry goes through authMW and adminMW.
func (h *TimetableHandler) RegisterTimetableRoutes(r gin.IRouter, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	r.GET("/timetable", h.ShowTimetable)
	r.GET("/api/timetable", h.ListEntries)
	r.POST("/timetable", authMW, adminMW, h.CreateEntry)
	r.GET("/admin/timetable", h.EntryForm)
}
