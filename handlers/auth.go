package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

type AuthHandler struct {
	api   *services.Client
	store session.Store
}

func NewAuthHandler(api *services.Client, store session.Store) *AuthHandler {
	return &AuthHandler{api: api, store: store}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	data := baseContext(c, h.store, "Login")
	data["Next"] = c.Query("next")
	c.HTML(http.StatusOK, "login.html", flash(c, data))
}

// Login exchanges the form credentials for a backend token and persists
// token, role and profile in the session cookie. Any role outside the three
// known ones is refused.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	next := c.PostForm("next")

	renderError := func(msg string) {
		data := baseContext(c, h.store, "Login")
		data["Error"] = msg
		data["Email"] = email
		data["Next"] = next
		c.HTML(http.StatusOK, "login.html", data)
	}

	if email == "" || password == "" {
		renderError("Email and password are required")
		return
	}

	token, role, user, err := h.api.Login(c.Request.Context(), email, password)
	if err != nil {
		renderError(err.Error())
		return
	}

	if !models.ValidRole(role) {
		renderError("Unauthorized role")
		return
	}

	err = h.store.Login(c, session.Session{
		Token:  token,
		Role:   role,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		log.Printf("[Auth] failed to write session: %v", err)
		renderError("Login failed, please try again")
		return
	}

	if next != "" && next[0] == '/' {
		c.Redirect(http.StatusSeeOther, next)
		return
	}
	c.Redirect(http.StatusSeeOther, "/home")
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	data := baseContext(c, h.store, "Create an Account")
	data["Form"] = models.RegisterRequest{Role: models.RolePatient}
	c.HTML(http.StatusOK, "signup.html", data)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	form := models.RegisterRequest{
		Name:           c.PostForm("name"),
		Email:          c.PostForm("email"),
		Password:       c.PostForm("password"),
		Role:           c.PostForm("role"),
		Gender:         c.PostForm("gender"),
		Phone:          c.PostForm("phone"),
		Specialization: c.PostForm("specialization"),
	}

	renderError := func(msg string) {
		data := baseContext(c, h.store, "Create an Account")
		data["Error"] = msg
		data["Form"] = form
		c.HTML(http.StatusOK, "signup.html", data)
	}

	if form.Name == "" || form.Email == "" || form.Password == "" {
		renderError("Name, email and password are required")
		return
	}
	if !models.ValidRole(form.Role) {
		renderError("Please choose a valid role")
		return
	}

	msg, err := h.api.Register(c.Request.Context(), form)
	if err != nil {
		renderError(err.Error())
		return
	}

	redirectWithSuccess(c, "/login", msg)
}

// Logout clears the session. Safe to hit while already logged out.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
