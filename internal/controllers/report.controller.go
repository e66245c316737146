package controllers

import (
	"net/http"

	"healthsnap/internal/render"
	"healthsnap/internal/services"

	"github.com/gin-gonic/gin"
)

// GetReport returns the current report in its machine-readable form.
func GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, services.GetCachedReport())
}

// GetDashboard renders the current report as the HTML dashboard.
func GetDashboard(c *gin.Context) {
	page, err := render.HTML(services.GetCachedReport())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
