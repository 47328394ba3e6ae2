package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type ProductService struct {
	repo ports.ProductRepository
}

func NewProductService(repo ports.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func validateInput(in domain.ProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidProduct)
	}
	if strings.TrimSpace(in.AffiliateURL) == "" {
		return fmt.Errorf("%w: affiliateUrl is required", domain.ErrInvalidProduct)
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(product)

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces every editable field. Clicks and ID are kept.
func (s *ProductService) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	in.Apply(product)
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// ListPublic returns only active products.
func (s *ProductService) ListPublic(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, map[string]interface{}{"active": true})
}

func (s *ProductService) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, nil)
}

// Redirect counts a click on id and returns the affiliate URL to send the
// browser to.
func (s *ProductService) Redirect(ctx context.Context, id, referer, userAgent, ip string) (string, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	click := &domain.Click{
		ProductID: product.ID,
		Referer:   referer,
		UserAgent: userAgent,
		IPHash:    hashIP(ip),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordClick(ctx, click); err != nil {
		return "", err
	}
	return product.AffiliateURL, nil
}

func hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:8])
}

var _ ports.ProductService = (*ProductService)(nil)
