package catalogRepo

import (
	"context"

	"bookhive/models"
)

// ServiceCatalog defines read/write access to a tenant's service catalog.
type ServiceCatalog interface {
	GetByID(ctx context.Context, tenantID, serviceID string) (*models.Service, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
}
