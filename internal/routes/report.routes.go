package routes

import (
	"healthsnap/internal/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes wires the serve-mode HTTP surface.
func RegisterReportRoutes(r *gin.Engine) {
	r.GET("/", controllers.GetDashboard)
	r.GET("/report.json", controllers.GetReport)
	r.GET("/ws", controllers.HandleWebSocket)
}
