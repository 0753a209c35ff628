package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/config"
	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

type PatientHandler struct {
	api   *services.Client
	store session.Store
	cfg   *config.Config
}

func NewPatientHandler(api *services.Client, store session.Store, cfg *config.Config) *PatientHandler {
	return &PatientHandler{api: api, store: store, cfg: cfg}
}

// Dashboard shows the patient's profile card and their appointments, and
// refreshes itself on the configured interval.
func (h *PatientHandler) Dashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	data := baseContext(c, h.store, "Patient Dashboard")
	data["Refresh"] = h.cfg.DashboardRefreshSeconds

	profile, err := h.api.PatientProfile(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		data["Error"] = err.Error()
		c.HTML(http.StatusOK, "patient_dashboard.html", data)
		return
	}
	data["Profile"] = profile

	appointments, err := h.api.PatientAppointments(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		data["Error"] = err.Error()
	}
	data["Appointments"] = appointments

	c.HTML(http.StatusOK, "patient_dashboard.html", flash(c, data))
}

// CancelAppointment requests the transition; the backend decides whether it
// is allowed. The following dashboard GET refetches the authoritative list.
func (h *PatientHandler) CancelAppointment(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.CancelAppointment(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/patient/dashboard", err.Error())
		return
	}
	redirectWithSuccess(c, "/patient/dashboard", "Appointment cancelled successfully")
}

func (h *PatientHandler) DeleteAppointment(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeleteAppointment(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/patient/dashboard", err.Error())
		return
	}
	redirectWithSuccess(c, "/patient/dashboard", "Appointment deleted successfully")
}

func (h *PatientHandler) ShowEditProfile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	profile, err := h.api.PatientProfile(c.Request.Context(), s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}

	data := baseContext(c, h.store, "Edit Profile")
	if err != nil {
		data["Error"] = err.Error()
	}
	data["Profile"] = profile
	c.HTML(http.StatusOK, "patient_profile_edit.html", data)
}

func (h *PatientHandler) UpdateProfile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	update := models.ProfileUpdate{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Gender:      c.PostForm("gender"),
		DateOfBirth: c.PostForm("dob"),
	}

	if err := h.api.UpdatePatientProfile(c.Request.Context(), s.Token, update); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := baseContext(c, h.store, "Edit Profile")
		data["Error"] = err.Error()
		data["Profile"] = models.Patient{
			Name:        update.Name,
			Email:       update.Email,
			Phone:       update.Phone,
			Gender:      update.Gender,
			DateOfBirth: update.DateOfBirth,
		}
		c.HTML(http.StatusOK, "patient_profile_edit.html", data)
		return
	}

	redirectWithSuccess(c, "/patient/dashboard", "Profile updated successfully")
}

// DeleteAccount removes the account and ends the session.
func (h *PatientHandler) DeleteAccount(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeletePatientAccount(c.Request.Context(), s.Token); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/patient/dashboard", err.Error())
		return
	}

	h.store.Logout(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
