package services

import (
	"context"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

type AuthService struct {
	api ports.CatalogAPI
}

func NewAuthService(api ports.CatalogAPI) *AuthService {
	return &AuthService{api: api}
}

// Login trades credentials for a session. The token is stored as returned;
// it is never decoded or checked here.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{Token: token}, nil
}
