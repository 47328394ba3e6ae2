package catalog

import (
	"reflect"
	"testing"

	"github.com/wadjakorntonsri/go-affiliate-storefront/pkg/core/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Noise Cancelling Headphones", Description: "Over-ear, 30h battery", Category: "Audio", Clicks: 5, IsActive: true},
		{ID: "2", Title: "Bluetooth Speaker", Description: "Waterproof speaker for your phone", Category: "Audio", Clicks: 3, IsActive: true},
		{ID: "3", Title: "Ultrabook 14", Description: "Light laptop", Category: "Laptop", Clicks: 2, IsActive: false},
		{ID: "4", Title: "Phone Stand", Description: "Aluminium desk stand", Clicks: 0, IsActive: true},
	}
}

func ids(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	tests := []struct {
		name     string
		category string
		term     string
		want     []string
	}{
		{name: "All and empty term", category: AllCategories, term: "", want: []string{"1", "2", "3", "4"}},
		{name: "Whitespace term is ignored", category: AllCategories, term: "   ", want: []string{"1", "2", "3", "4"}},
		{name: "Category Audio", category: "Audio", want: []string{"1", "2"}},
		{name: "Category Laptop", category: "Laptop", want: []string{"3"}},
		{name: "Unknown category", category: "Garden", want: []string{}},
		{name: "Search in title", category: AllCategories, term: "speaker", want: []string{"2"}},
		{name: "Search in description", category: AllCategories, term: "waterproof", want: []string{"2"}},
		{name: "Search title or description", category: AllCategories, term: "phone", want: []string{"1", "2", "4"}},
		{name: "Search is case-insensitive", category: AllCategories, term: "PHONE", want: []string{"1", "2", "4"}},
		{name: "Category and search", category: "Audio", term: "speaker", want: []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(products, tt.category, tt.term))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter(%q, %q) = %v, want %v", tt.category, tt.term, got, tt.want)
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := ids(products)

	_ = Filter(products, "Audio", "speaker")

	if got := ids(products); !reflect.DeepEqual(got, before) {
		t.Errorf("input changed: got %v, want %v", got, before)
	}
}

func TestFilterCaseVariantsMatch(t *testing.T) {
	products := sampleProducts()
	for _, pair := range [][2]string{{"Phone", "phone"}, {"AUDIO", "audio"}, {"Stand", "sTaNd"}} {
		a := ids(Filter(products, AllCategories, pair[0]))
		b := ids(Filter(products, AllCategories, pair[1]))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%q gave %v, %q gave %v", pair[0], a, pair[1], b)
		}
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		want     []string
	}{
		{name: "Empty list", products: nil, want: []string{"All"}},
		{name: "First-seen order, no blanks", products: sampleProducts(), want: []string{"All", "Audio", "Laptop"}},
		{
			name: "Duplicates collapse",
			products: []domain.Product{
				{Category: "Course"}, {Category: "Audio"}, {Category: "Course"},
			},
			want: []string{"All", "Course", "Audio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categories(tt.products); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Categories() = %v, want %v", got, tt.want)
			}
		})
	}
}
