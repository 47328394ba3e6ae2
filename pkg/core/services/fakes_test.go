package services

import (
	"context"
	"sync"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// memoryRepo is an in-memory ports.ProductRepository
type memoryRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product
	order    []string
	clicks   []domain.Click
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: map[string]domain.Product{}}
}

func (r *memoryRepo) Create(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.Clicks = 0
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryRepo) Import(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryRepo) Update(ctx context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.products[p.ID]
	clicks := existing.Clicks
	existing = *p
	existing.Clicks = clicks
	r.products[p.ID] = existing
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryRepo) List(ctx context.Context, filters map[string]interface{}) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Product{}
	for _, id := range r.order {
		p := r.products[id]
		if active, ok := filters["active"].(bool); ok && p.IsActive != active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Dump(ctx context.Context) ([]domain.Product, error) {
	return r.List(ctx, nil)
}

func (r *memoryRepo) RecordClick(ctx context.Context, click *domain.Click) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.products[click.ProductID]
	p.Clicks++
	r.products[click.ProductID] = p
	r.clicks = append(r.clicks, *click)
	return nil
}

// fakeAPI is a scripted ports.CatalogAPI
type fakeAPI struct {
	products  []domain.Product
	err       error
	token     string
	created   []domain.ProductInput
	updated   map[string]domain.ProductInput
	deleted   []string
	lastToken string
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeAPI) ListAdminProducts(ctx context.Context, session domain.Session) ([]domain.Product, error) {
	f.lastToken = session.Token
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, session domain.Session, in domain.ProductInput) (*domain.Product, error) {
	f.lastToken = session.Token
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	return &domain.Product{ID: "new"}, nil
}

func (f *fakeAPI) UpdateProduct(ctx context.Context, session domain.Session, id string, in domain.ProductInput) (*domain.Product, error) {
	f.lastToken = session.Token
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		f.updated = map[string]domain.ProductInput{}
	}
	f.updated[id] = in
	return &domain.Product{ID: id}, nil
}

func (f *fakeAPI) DeleteProduct(ctx context.Context, session domain.Session, id string) error {
	f.lastToken = session.Token
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeAPI) RedirectURL(id string) string {
	return "http://api/api/products/" + id + "/redirect"
}
