package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/config"
	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

type AdminHandler struct {
	api   *services.Client
	store session.Store
	cfg   *config.Config
}

func NewAdminHandler(api *services.Client, store session.Store, cfg *config.Config) *AdminHandler {
	return &AdminHandler{api: api, store: store, cfg: cfg}
}

// Dashboard renders the three tabs: patients, doctors (filterable by
// approval status) and appointments (filterable by status). Each list is
// fetched independently; one failing does not blank the others.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	data := baseContext(c, h.store, "Admin Dashboard")
	data["Refresh"] = h.cfg.DashboardRefreshSeconds

	tab := c.Query("tab")
	if tab != "doctors" && tab != "appointments" {
		tab = "patients"
	}
	data["Tab"] = tab
	doctorFilter := c.Query("doctorStatus")
	appointmentFilter := c.Query("appointmentStatus")
	data["DoctorStatus"] = doctorFilter
	data["AppointmentStatus"] = appointmentFilter

	var errs []string

	patients, err := h.api.AdminPatients(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		errs = append(errs, err.Error())
	}
	data["Patients"] = patients

	doctors, err := h.api.AdminDoctors(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		errs = append(errs, err.Error())
	}
	data["DoctorCount"] = len(doctors)
	data["Doctors"] = models.FilterDoctorsByApproval(doctors, doctorFilter)

	appointments, err := h.api.AllAppointments(ctx, s.Token)
	if sessionExpired(c, h.store, err) {
		return
	}
	if err != nil {
		errs = append(errs, err.Error())
	}
	data["AppointmentCount"] = len(appointments)
	data["Appointments"] = models.FilterAppointmentsByStatus(appointments, appointmentFilter)

	if len(errs) > 0 {
		data["Errors"] = errs
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", flash(c, data))
}

func (h *AdminHandler) ApproveDoctor(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.ApproveDoctor(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/admin/dashboard?tab=doctors", err.Error())
		return
	}
	redirectWithSuccess(c, "/admin/dashboard?tab=doctors", "Doctor approved successfully!")
}

func (h *AdminHandler) DeleteDoctor(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeleteDoctor(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/admin/dashboard?tab=doctors", err.Error())
		return
	}
	redirectWithSuccess(c, "/admin/dashboard?tab=doctors", "Doctor deleted successfully!")
}

func (h *AdminHandler) DeletePatient(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	if err := h.api.DeletePatient(c.Request.Context(), s.Token, c.Param("id")); err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/admin/dashboard", err.Error())
		return
	}
	redirectWithSuccess(c, "/admin/dashboard", "Patient deleted successfully!")
}

// ExportAppointments streams every appointment as a spreadsheet.
func (h *AdminHandler) ExportAppointments(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)

	appointments, err := h.api.AllAppointments(c.Request.Context(), s.Token)
	if err != nil {
		if sessionExpired(c, h.store, err) {
			return
		}
		redirectWithError(c, "/admin/dashboard?tab=appointments", err.Error())
		return
	}

	headers := map[string]string{
		"A1": "Patient",
		"B1": "Doctor",
		"C1": "Date",
		"D1": "Time",
		"E1": "Purpose",
		"F1": "Status",
	}
	file := excelize.NewFile()
	sheet := "Appointments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for cell, v := range headers {
		file.SetCellValue(sheet, cell, v)
	}

	for i, a := range appointments {
		row := i + 2
		patient, doctor := "-", "-"
		if a.Patient != nil {
			patient = a.Patient.Name
		}
		if a.Doctor != nil {
			doctor = a.Doctor.Name
		}
		file.SetCellValue(sheet, fmt.Sprintf("A%v", row), patient)
		file.SetCellValue(sheet, fmt.Sprintf("B%v", row), doctor)
		file.SetCellValue(sheet, fmt.Sprintf("C%v", row), a.DisplayDate())
		file.SetCellValue(sheet, fmt.Sprintf("D%v", row), a.Time)
		file.SetCellValue(sheet, fmt.Sprintf("E%v", row), a.Purpose)
		file.SetCellValue(sheet, fmt.Sprintf("F%v", row), a.Status)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="appointments.xlsx"`)
	if err := file.Write(c.Writer); err != nil {
		log.Printf("[Admin] appointment export failed: %v", err)
	}
}
