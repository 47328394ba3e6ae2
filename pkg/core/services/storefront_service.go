package services

import (
	"context"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type StorefrontService struct {
	api ports.CatalogAPI
}

func NewStorefrontService(api ports.CatalogAPI) *StorefrontService {
	return &StorefrontService{api: api}
}

// LoadCatalog fetches the public product list once. On failure the list is
// empty and the error is the backend's *domain.OpError.
func (s *StorefrontService) LoadCatalog(ctx context.Context) ([]domain.Product, error) {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return []domain.Product{}, err
	}
	return products, nil
}

// RedirectURL is the click-counting link for a product card.
func (s *StorefrontService) RedirectURL(id string) string {
	return s.api.RedirectURL(id)
}

var _ ports.StorefrontService = (*StorefrontService)(nil)
