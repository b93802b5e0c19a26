package handler

import (
	"net/http"

	"online_tuition/internal/model"
	"online_tuition/internal/service"
	"online_tuition/internal/view"

	"github.com/gin-gonic/gin"
)

// loginFlow is what differs between the student and admin login pages
type loginFlow struct {
	kind       model.AccountKind
	title      string
	action     string
	signupPath string
	success    string
}

var (
	studentLogin = loginFlow{kind: model.KindStudent, title: "Student log in", action: "/login", signupPath: "/", success: "/timetable"}
	adminLogin   = loginFlow{kind: model.KindAdmin, title: "Admin log in", action: "/admin/login", signupPath: "/admin/signup", success: "/admin/timetable"}
)

func (f loginFlow) page() view.Page {
	return view.Page{Title: f.title, Action: f.action, SignupPath: f.signupPath}
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) loginPage(flow loginFlow) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, view.PageLogin, flow.page())
	}
}

// login runs the shared login flow for one account kind
func (h *AuthHandler) login(flow loginFlow) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.LoginRequest
		page := flow.page()

		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err, view.PageLogin, page)
			return
		}
		page.Form = map[string]string{"email": req.Email}

		decision, err := h.service.Login(c.Request.Context(), flow.kind, req.Email, req.Password)
		if err != nil {
			respondError(c, err, view.PageLogin, page)
			return
		}

		if !decision.Accepted {
			respondFailure(c, http.StatusBadRequest, decision.Message(), view.PageLogin, page)
			return
		}

		if wantsJSON(c) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Login successful",
				"id":      decision.AccountID,
				"kind":    decision.Kind,
			})
			return
		}
		c.Redirect(http.StatusSeeOther, flow.success)
	}
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(r gin.IRouter) {
	r.GET("/login", h.loginPage(studentLogin))
	r.POST("/login", h.login(studentLogin))

	admin := r.Group("/admin")
	{
		admin.GET("/login", h.loginPage(adminLogin))
		admin.POST("/login", h.login(adminLogin))
	}
}
