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

type DoctorHandler struct {
	api   *services.Client
	store session.Store
	cfg   *config.Config
}

func NewDoctorHandler(api *services.Client, store session.Store, cfg *config.Config) *DoctorHandler {
	return &DoctorHandler{api: api, store: store, cfg: cfg}
}

// FindDoctors shows the approved-doctor directory, narrowed by the search
// and specialization query filters.
func (h *DoctorHandler) FindDoctors(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	doctors, err := h.api.ApprovedDoctors(c.Request.Context(), s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}

	data := baseContext(c, h.store, "Find Doctors")
	search := c.Query("search")
	specialization := c.Query("specialization")
	data["Search"] = search
	data["Specialization"] = specialization

	if err != nil {
		data["Error"] = "Failed to fetch approved doctors. Please try again."
		data["Doctors"] = []models.Doctor{}
	} else {
		data["Doctors"] = models.FilterDoctors(doctors, search, specialization)
	}

	c.HTML(http.StatusOK, "find_doctors.html", data)
}

// Dashboard shows the doctor's own profile (including approval status) and
// the appointments booked with them. The page refreshes itself on a fixed
// interval to approximate real-time updates.
func (h *DoctorHandler) Dashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	data := baseContext(c, h.store, "Doctor Dashboard")
	data["Refresh"] = h.cfg.DashboardRefreshSeconds
	data["StatusFilter"] = c.Query("status")

	profile, err := h.api.DoctorProfile(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		data["Error"] = err.Error()
		c.HTML(http.StatusOK, "doctor_dashboard.html", data)
		return
	}
	data["Profile"] = profile

	appointments, err := h.api.DoctorAppointments(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		data["Error"] = err.Error()
	}
	data["Appointments"] = models.FilterAppointmentsByStatus(appointments, c.Query("status"))

	c.HTML(http.StatusOK, "doctor_dashboard.html", flash(c, data))
}

func (h *DoctorHandler) Accept(c *gin.Context) {
	h.transition(c, "accepted", func(token, id string) error {
		return h.api.AcceptAppointment(c.Request.Context(), token, id)
	})
}

func (h *DoctorHandler) Reject(c *gin.Context) {
	h.transition(c, "rejected", func(token, id string) error {
		return h.api.RejectAppointment(c.Request.Context(), token, id)
	})
}

// Complete uses the generic status endpoint; accept and reject have their
// own doctor-scoped ones.
func (h *DoctorHandler) Complete(c *gin.Context) {
	h.transition(c, "completed", func(token, id string) error {
		return h.api.UpdateAppointmentStatus(c.Request.Context(), token, id, models.StatusCompleted)
	})
}

// transition applies one status change, then sends the browser back to the
// dashboard, whose GET refetches the list. Local state is never patched.
func (h *DoctorHandler) transition(c *gin.Context, verb string, fn func(token, id string) error) {
	s, _ := middleware.CurrentSession(c)
	id := c.Param("id")

	if err := fn(s.Token, id); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/doctor/dashboard", err.Error())
		return
	}
	redirectWithSuccess(c, "/doctor/dashboard", "Appointment "+verb)
}

func (h *DoctorHandler) DeleteAppointment(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeleteAppointment(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/doctor/dashboard", err.Error())
		return
	}
	redirectWithSuccess(c, "/doctor/dashboard", "Appointment deleted")
}

func (h *DoctorHandler) ShowEditProfile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	profile, err := h.api.DoctorProfile(c.Request.Context(), s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}

	data := baseContext(c, h.store, "Edit Doctor Profile")
	if err != nil {
		data["Error"] = err.Error()
	}
	data["Profile"] = profile
	c.HTML(http.StatusOK, "doctor_profile_edit.html", data)
}

func (h *DoctorHandler) UpdateProfile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	update := models.ProfileUpdate{
		Name:           c.PostForm("name"),
		Email:          c.PostForm("email"),
		Phone:          c.PostForm("phone"),
		Specialization: c.PostForm("specialization"),
		Qualifications: c.PostForm("qualifications"),
	}

	if err := h.api.UpdateDoctorProfile(c.Request.Context(), s.Token, update); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		data := baseContext(c, h.store, "Edit Doctor Profile")
		data["Error"] = err.Error()
		data["Profile"] = models.User{
			Name:           update.Name,
			Email:          update.Email,
			Phone:          update.Phone,
			Specialization: update.Specialization,
			Qualifications: update.Qualifications,
		}
		c.HTML(http.StatusOK, "doctor_profile_edit.html", data)
		return
	}

	redirectWithSuccess(c, "/doctor/dashboard", "Profile updated successfully")
}

// DeleteProfile removes the doctor's own account and ends the session.
func (h *DoctorHandler) DeleteProfile(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeleteDoctorProfile(c.Request.Context(), s.Token); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/doctor/dashboard", err.Error())
		return
	}

	h.store.Logout(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
