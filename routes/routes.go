package routes

import (
	"net/http"

	"bookhive/handlers"
	"bookhive/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(
	r *gin.Engine,
	availability *handlers.AvailabilityHandler,
	booking *handlers.BookingHandler,
	staff *handlers.StaffHandler,
	catalog *handlers.CatalogHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	RegisterBookingRoutes(r, availability, booking)

	tenant := r.Group("/api/tenants/:tenantID")
	{
		tenant.GET("/staff", staff.ListStaff)
		tenant.POST("/staff", staff.CreateStaff)
		tenant.GET("/staff/:staffID", staff.GetStaff)
		tenant.PUT("/staff/:staffID", staff.UpdateStaff)
		tenant.DELETE("/staff/:staffID", staff.DeleteStaff)
		tenant.PUT("/staff/:staffID/skills", staff.SetSkill)
		tenant.DELETE("/staff/:staffID/skills/:serviceID", staff.RemoveSkill)

		tenant.GET("/services", catalog.ListServices)
		tenant.POST("/services", catalog.CreateService)
		tenant.GET("/services/:serviceID", catalog.GetService)
	}
}
