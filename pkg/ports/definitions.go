package ports

import (
	"context"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// CatalogAPI is the REST backend as seen by the storefront. Every failing
// call returns a *domain.OpError.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListAdminProducts(ctx context.Context, session domain.Session) ([]domain.Product, error)
	CreateProduct(ctx context.Context, session domain.Session, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, session domain.Session, id string, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, session domain.Session, id string) error
	Login(ctx context.Context, email, password string) (string, error)
	RedirectURL(id string) string
}

// StorefrontService backs the public page
type StorefrontService interface {
	LoadCatalog(ctx context.Context) ([]domain.Product, error)
	RedirectURL(id string) string
}

// AdminService backs the admin panel
type AdminService interface {
	ListProducts(ctx context.Context, session domain.Session) (catalog.Snapshot, error)
	FindProduct(ctx context.Context, session domain.Session, id string) (*domain.Product, error)
	SaveProduct(ctx context.Context, session domain.Session, form catalog.ProductForm) error
	DeleteProduct(ctx context.Context, session domain.Session, id string) error
	Analytics(snapshot catalog.Snapshot) domain.Analytics
}

// AuthService exchanges admin credentials for a session
type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.Session, error)
}

// ProductRepository defines storage operations for the reference catalog API
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters map[string]interface{}) ([]domain.Product, error)
	Dump(ctx context.Context) ([]domain.Product, error) // For migration
	Import(ctx context.Context, product *domain.Product) error

	// Clicks
	RecordClick(ctx context.Context, click *domain.Click) error
}

// ProductService defines the catalog API business operations
type ProductService interface {
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	Redirect(ctx context.Context, id, referer, userAgent, ip string) (string, error)
}

// CredentialService issues and checks admin bearer tokens
type CredentialService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Verify(token string) (string, error)
}
