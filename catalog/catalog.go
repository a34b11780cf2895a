// Package catalog holds the boutique's product listing. The listing is static:
// it is loaded once at startup and never mutated, so reads need no locking.
package catalog

import (
	"sort"
	"strings"

	"github.com/velora-boutique/velora-api/models"
)

type Store struct {
	products []models.Product
}

func NewStore() *Store {
	return &Store{products: productsData}
}

// All returns a copy of the product list so callers cannot mutate the catalog.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ByID(id int) (models.Product, bool) {
	for _, product := range s.products {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

func (s *Store) Featured() []models.Product {
	var out []models.Product
	for _, product := range s.products {
		if product.Featured {
			out = append(out, product)
		}
	}
	return out
}

func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, product := range s.products {
		if !seen[product.Category] {
			seen[product.Category] = true
			out = append(out, product.Category)
		}
	}
	sort.Strings(out)
	return out
}

const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// Filter narrows and orders the catalog. Zero values leave a criterion off;
// MaxPrice of 0 means no upper bound.
type Filter struct {
	Category string
	Search   string
	MinPrice float64
	MaxPrice float64
	Sort     string
}

func (s *Store) Find(filter Filter) []models.Product {
	result := make([]models.Product, 0, len(s.products))
	for _, product := range s.products {
		if filter.Category != "" && filter.Category != "all" && product.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !matchesSearch(product, filter.Search) {
			continue
		}
		if product.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && product.Price > filter.MaxPrice {
			continue
		}
		result = append(result, product)
	}

	switch filter.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortName:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	default:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Featured && !result[j].Featured })
	}
	return result
}

func matchesSearch(product models.Product, query string) bool {
	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(product.Name), query) ||
		strings.Contains(strings.ToLower(product.Description), query) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
