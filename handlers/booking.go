package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

type BookingHandler struct {
	api   *services.Client
	store session.Store
	// now is swapped in tests so date validation is deterministic.
	now func() time.Time
}

func NewBookingHandler(api *services.Client, store session.Store) *BookingHandler {
	return &BookingHandler{api: api, store: store, now: time.Now}
}

// Show loads the chosen doctor and renders the booking form.
func (h *BookingHandler) Show(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	doctor, err := h.api.DoctorByID(c.Request.Context(), s.Token, c.Param("doctorId"))
	if sessionExpired(c, h.store, err) {
		return
	}

	data := baseContext(c, h.store, "Book an Appointment")
	if err != nil {
		data["Error"] = err.Error()
		c.HTML(http.StatusOK, "book_appointment.html", data)
		return
	}

	data["Doctor"] = doctor
	data["Form"] = models.BookingForm{}
	data["MinDate"] = h.now().Format("2006-01-02")
	c.HTML(http.StatusOK, "book_appointment.html", flash(c, data))
}

// Submit validates the form locally first; those checks are advisory, and a
// backend validation message is shown verbatim even when it repeats one.
func (h *BookingHandler) Submit(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	ctx := c.Request.Context()
	doctorID := c.Param("doctorId")

	form := models.BookingForm{
		DoctorID: doctorID,
		FullName: c.PostForm("fullName"),
		Phone:    c.PostForm("phone"),
		Email:    c.PostForm("email"),
		Purpose:  c.PostForm("purpose"),
		Date:     c.PostForm("date"),
		Time:     c.PostForm("time"),
	}

	render := func(errMsg, successMsg string, keepForm bool) {
		doctor, err := h.api.DoctorByID(ctx, s.Token, doctorID)
		if sessionExpired(c, h.store, err) {
			return
		}
		data := baseContext(c, h.store, "Book an Appointment")
		data["Doctor"] = doctor
		data["MinDate"] = h.now().Format("2006-01-02")
		if keepForm {
			data["Form"] = form
		} else {
			data["Form"] = models.BookingForm{}
		}
		if errMsg != "" {
			data["Error"] = errMsg
		}
		if successMsg != "" {
			data["Success"] = successMsg
		}
		c.HTML(http.StatusOK, "book_appointment.html", data)
	}

	if err := form.Validate(h.now()); err != nil {
		render(err.Error(), "", true)
		return
	}

	msg, err := h.api.CreateAppointment(ctx, s.Token, form)
	if err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		render(err.Error(), "", true)
		return
	}

	// Cleared form on success, same as the booking page always did.
	render("", msg, false)
}
