package services

import (
	"context"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type AdminService struct {
	api        ports.CatalogAPI
	aggregator *catalog.Aggregator
}

// NewAdminService works without an aggregator; analytics are then computed
// on every call.
func NewAdminService(api ports.CatalogAPI, aggregator *catalog.Aggregator) *AdminService {
	return &AdminService{api: api, aggregator: aggregator}
}

// ListProducts loads the authoritative admin list as an immutable snapshot.
func (s *AdminService) ListProducts(ctx context.Context, session domain.Session) (catalog.Snapshot, error) {
	products, err := s.api.ListAdminProducts(ctx, session)
	if err != nil {
		return catalog.NewSnapshot(nil), err
	}
	return catalog.NewSnapshot(products), nil
}

// FindProduct looks id up in a fresh admin listing.
func (s *AdminService) FindProduct(ctx context.Context, session domain.Session, id string) (*domain.Product, error) {
	snapshot, err := s.ListProducts(ctx, session)
	if err != nil {
		return nil, err
	}
	for _, p := range snapshot.Products() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SaveProduct validates the form, then creates or updates depending on its
// mode. Validation failures never reach the backend.
func (s *AdminService) SaveProduct(ctx context.Context, session domain.Session, form catalog.ProductForm) error {
	in, err := form.Input()
	if err != nil {
		return err
	}

	if form.Editing() {
		_, err = s.api.UpdateProduct(ctx, session, form.EditingID, in)
	} else {
		_, err = s.api.CreateProduct(ctx, session, in)
	}
	return err
}

func (s *AdminService) DeleteProduct(ctx context.Context, session domain.Session, id string) error {
	return s.api.DeleteProduct(ctx, session, id)
}

// Analytics summarizes a snapshot, memoized per content.
func (s *AdminService) Analytics(snapshot catalog.Snapshot) domain.Analytics {
	return s.aggregator.Summarize(snapshot)
}

var _ ports.AdminService = (*AdminService)(nil)
