package handler

import (
	"net/http"

	"online_tuition/internal/model"
	"online_tuition/internal/service"
	"online_tuition/internal/view"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles student and admin signup and the student listing
type AccountHandler struct {
	service service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(s service.AccountService) *AccountHandler {
	return &AccountHandler{service: s}
}

func (h *AccountHandler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageIndex, view.Page{Title: "Student sign up"})
}

func (h *AccountHandler) AdminSignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, view.PageAdminSignup, view.Page{Title: "Admin sign up"})
}

func (h *AccountHandler) SignupStudent(c *gin.Context) {
	var req model.SignupStudentRequest
	page := view.Page{Title: "Student sign up"}

	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, view.PageIndex, page)
		return
	}
	page.Form = map[string]string{"studentName": req.Name, "parentEmail": req.Email, "parentPhone": req.Phone}

	student, err := h.service.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, view.PageIndex, page)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Student registered successfully",
			"id":      student.ID,
			"email":   student.Email,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AccountHandler) SignupAdmin(c *gin.Context) {
	var req model.SignupAdminRequest
	page := view.Page{Title: "Admin sign up"}

	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, view.PageAdminSignup, page)
		return
	}
	page.Form = map[string]string{"email": req.Email}

	admin, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, view.PageAdminSignup, page)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Admin registered successfully",
			"id":      admin.ID,
			"email":   admin.Email,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// ListStudents returns every student as JSON, password hashes omitted
func (h *AccountHandler) ListStudents(c *gin.Context) {
	students, err := h.service.ListStudents(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve students"})
		return
	}
	c.JSON(http.StatusOK, students)
}

// RegisterAccountRoutes registers signup routes
func (h *AccountHandler) RegisterAccountRoutes(r gin.IRouter) {
	r.GET("/", h.IndexPage)
	r.POST("/students", h.SignupStudent)
	r.GET("/students", h.ListStudents)

	admin := r.Group("/admin")
	{
		admin.GET("/signup", h.AdminSignupPage)
		admin.POST("/signup", h.SignupAdmin)
	}
}
