package handlers

import (
	"net/http"
	"time"

	catalogRepo "bookhive/database/repository/catalog"
	"bookhive/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the tenant service catalog.
type CatalogHandler struct {
	Catalog catalogRepo.ServiceCatalog
}

func NewCatalogHandler(catalog catalogRepo.ServiceCatalog) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// ListServices lists a tenant's services.
// GET /api/tenants/:tenantID/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Catalog.ListByTenant(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetService fetches one service.
// GET /api/tenants/:tenantID/services/:serviceID
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.Catalog.GetByID(c.Request.Context(), c.Param("tenantID"), c.Param("serviceID"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService adds a service to the tenant catalog.
// POST /api/tenants/:tenantID/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var service models.Service
	if err := c.ShouldBindJSON(&service); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if service.BaseDuration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "base_duration must be positive"})
		return
	}
	service.TenantID = c.Param("tenantID")
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	service.CreatedAt = time.Now()

	if err := h.Catalog.Create(c.Request.Context(), &service); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}
