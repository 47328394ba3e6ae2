// Package backend is the storefront's only path to the catalog REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/catalog"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/logger"
	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/ports"
)

// maxErrorBody caps how much of a failed response is read for its message
const maxErrorBody = 64 << 10

type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient talks to the API rooted at baseURL. timeout bounds every call.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     logger.Component("backend"),
	}
}

// authorized wraps the base client so every request carries the session's
// bearer token.
func (c *Client) authorized(session domain.Session) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: session.Token, TokenType: "Bearer"})
	return &http.Client{
		Timeout:   c.http.Timeout,
		Transport: &oauth2.Transport{Source: src, Base: c.http.Transport},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, nil, domain.OpLoad, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (c *Client) ListAdminProducts(ctx context.Context, session domain.Session) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, &session, domain.OpLoad, http.MethodGet, "/api/products/admin", nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, session domain.Session, in domain.ProductInput) (*domain.Product, error) {
	var created domain.Product
	if err := c.do(ctx, &session, domain.OpSave, http.MethodPost, "/api/products", in, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, session domain.Session, id string, in domain.ProductInput) (*domain.Product, error) {
	var updated domain.Product
	path := "/api/products/" + url.PathEscape(id)
	if err := c.do(ctx, &session, domain.OpSave, http.MethodPut, path, in, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, session domain.Session, id string) error {
	path := "/api/products/" + url.PathEscape(id)
	return c.do(ctx, &session, domain.OpDelete, http.MethodDelete, path, nil, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var res domain.LoginResponse
	req := domain.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, nil, domain.OpLogin, http.MethodPost, "/api/auth/login", req, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", &domain.OpError{Op: domain.OpLogin, Status: http.StatusOK, Message: res.Message, Err: errors.New("response carried no token")}
	}
	return res.Token, nil
}

// RedirectURL is where the browser goes for "View Deal".
func (c *Client) RedirectURL(id string) string {
	return catalog.RedirectURL(c.baseURL, id)
}

func (c *Client) do(ctx context.Context, session *domain.Session, op domain.Op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &domain.OpError{Op: op, Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.OpError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil || session != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.http
	if session != nil {
		hc = c.authorized(*session)
	}

	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return &domain.OpError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.OpError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: errorMessage(resp.Body),
			Err:     errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &domain.OpError{Op: op, Status: resp.StatusCode, Err: err}
	}
	return nil
}

// errorMessage pulls {"message": ...} (or {"error": ...}) out of an error body.
func errorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// Ensure interface compliance
var _ ports.CatalogAPI = (*Client)(nil)
