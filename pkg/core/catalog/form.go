package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

// ValidationError reports a form field that blocks submission
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProductForm is the admin create/edit form. An empty EditingID means
// create mode.
type ProductForm struct {
	Title        string
	Description  string
	ImageURL     string
	AffiliateURL string
	Category     string
	Price        string
	IsActive     bool
	EditingID    string
}

// NewProductForm returns a blank form in create mode.
func NewProductForm() ProductForm {
	return ProductForm{IsActive: true}
}

// FormFromProduct loads p into the form in edit mode.
func FormFromProduct(p domain.Product) ProductForm {
	return ProductForm{
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		AffiliateURL: p.AffiliateURL,
		Category:     p.Category,
		Price:        FormatPrice(p.Price),
		IsActive:     p.IsActive,
		EditingID:    p.ID,
	}
}

// Editing reports whether the form targets an existing product.
func (f ProductForm) Editing() bool {
	return f.EditingID != ""
}

// Reset clears every field and returns to create mode.
func (f *ProductForm) Reset() {
	*f = NewProductForm()
}

// Validate checks the required fields.
func (f ProductForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Message: "Title is required"}
	}
	if strings.TrimSpace(f.AffiliateURL) == "" {
		return &ValidationError{Field: "affiliateUrl", Message: "Affiliate URL is required"}
	}
	return nil
}

// Input validates the form and converts it into a request body. A blank
// price is omitted rather than sent as zero.
func (f ProductForm) Input() (domain.ProductInput, error) {
	if err := f.Validate(); err != nil {
		return domain.ProductInput{}, err
	}

	in := domain.ProductInput{
		Title:        f.Title,
		Description:  f.Description,
		ImageURL:     f.ImageURL,
		AffiliateURL: f.AffiliateURL,
		Category:     f.Category,
		IsActive:     f.IsActive,
	}

	if raw := strings.TrimSpace(f.Price); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return domain.ProductInput{}, &ValidationError{Field: "price", Message: "Price must be a number"}
		}
		in.Price = &price
	}
	return in, nil
}
