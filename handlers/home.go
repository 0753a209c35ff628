package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

type HomeHandler struct {
	store   session.Store
	monitor *services.Monitor
}

func NewHomeHandler(store session.Store, monitor *services.Monitor) *HomeHandler {
	return &HomeHandler{store: store, monitor: monitor}
}

func (h *HomeHandler) Home(c *gin.Context) {
	data := baseContext(c, h.store, "Home")
	up, checkedAt := h.monitor.Status()
	data["BackendUp"] = up
	data["BackendChecked"] = !checkedAt.IsZero()
	c.HTML(http.StatusOK, "home.html", flash(c, data))
}

func (h *HomeHandler) Unauthorized(c *gin.Context) {
	data := baseContext(c, h.store, "Unauthorized")
	c.HTML(http.StatusOK, "unauthorized.html", data)
}

func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Server is running",
	})
}
