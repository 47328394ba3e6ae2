package catalog

import (
	"errors"
	"testing"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

func TestNewProductFormDefaults(t *testing.T) {
	f := NewProductForm()
	if !f.IsActive {
		t.Error("new form should default to active")
	}
	if f.Editing() {
		t.Error("new form should be in create mode")
	}
	if f.Title != "" || f.Price != "" || f.AffiliateURL != "" {
		t.Errorf("new form should be blank: %+v", f)
	}
}

func TestFormFromProduct(t *testing.T) {
	p := domain.Product{
		ID:           "p1",
		Title:        "Mic",
		AffiliateURL: "https://shop/mic",
		Price:        domain.Float64(89),
		IsActive:     false,
	}
	f := FormFromProduct(p)

	if !f.Editing() || f.EditingID != "p1" {
		t.Errorf("expected edit mode for p1, got %q", f.EditingID)
	}
	if f.Price != "89" {
		t.Errorf("Price = %q, want 89", f.Price)
	}
	if f.IsActive {
		t.Error("IsActive should follow the product")
	}
	if f.Category != "" || f.Description != "" {
		t.Error("absent fields should load as empty")
	}
}

func TestResetLeavesEditMode(t *testing.T) {
	f := FormFromProduct(domain.Product{ID: "p1", Title: "Mic", AffiliateURL: "https://x", IsActive: false})
	f.Reset()

	if f != NewProductForm() {
		t.Errorf("Reset() = %+v, want defaults", f)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		form  ProductForm
		field string
	}{
		{name: "Missing title", form: ProductForm{AffiliateURL: "https://x"}, field: "title"},
		{name: "Blank title", form: ProductForm{Title: "  ", AffiliateURL: "https://x"}, field: "title"},
		{name: "Missing affiliate URL", form: ProductForm{Title: "Mic"}, field: "affiliateUrl"},
		{name: "Valid", form: ProductForm{Title: "Mic", AffiliateURL: "https://x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestInput(t *testing.T) {
	t.Run("Blank price is omitted", func(t *testing.T) {
		in, err := ProductForm{Title: "Mic", AffiliateURL: "https://x", Price: " ", IsActive: true}.Input()
		if err != nil {
			t.Fatal(err)
		}
		if in.Price != nil {
			t.Errorf("Price = %v, want nil", *in.Price)
		}
		if !in.IsActive {
			t.Error("IsActive lost")
		}
	})

	t.Run("Price is parsed as a number", func(t *testing.T) {
		in, err := ProductForm{Title: "Mic", AffiliateURL: "https://x", Price: "49.99"}.Input()
		if err != nil {
			t.Fatal(err)
		}
		if in.Price == nil || *in.Price != 49.99 {
			t.Errorf("Price = %v, want 49.99", in.Price)
		}
	})

	for _, raw := range []string{"cheap", "NaN", "Inf", "-inf", "1e400"} {
		t.Run("Bad price "+raw+" is a validation error", func(t *testing.T) {
			_, err := ProductForm{Title: "Mic", AffiliateURL: "https://x", Price: raw}.Input()
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != "price" || verr.Message != "Price must be a number" {
				t.Errorf("expected price ValidationError, got %v", err)
			}
		})
	}
}
