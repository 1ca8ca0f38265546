package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"tire-shop/models"
)

var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrProductNotFound    = errors.New("product not found")
)

// CatalogRepository serves the static product catalog. The source file is
// read once; a failed load is remembered and surfaced on every access
// instead of being retried.
type CatalogRepository struct {
	mu       sync.RWMutex
	path     string
	products []models.Product
	loadErr  error
}

func NewCatalogRepository(path string) *CatalogRepository {
	return &CatalogRepository{path: path}
}

func (r *CatalogRepository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		r.products = nil
		r.loadErr = fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		return r.loadErr
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		r.products = nil
		r.loadErr = fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		return r.loadErr
	}

	for i := range products {
		if products[i].Images == nil {
			products[i].Images = []string{}
		}
	}

	r.products = products
	r.loadErr = nil
	return nil
}

func (r *CatalogRepository) Products() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.products, nil
}

func (r *CatalogRepository) ByID(id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return nil, r.loadErr
	}
	for i := range r.products {
		if r.products[i].ID == id {
			return &r.products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// Brands returns the distinct non-empty brand values in first-seen order.
func (r *CatalogRepository) Brands() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return nil, r.loadErr
	}

	seen := map[string]bool{}
	brands := []string{}
	for i := range r.products {
		brand := r.products[i].Brand
		if brand == "" || seen[brand] {
			continue
		}
		seen[brand] = true
		brands = append(brands, brand)
	}
	return brands, nil
}

// Filter returns the products matching the conjunction of the filter's
// predicates, in catalog order.
func (r *CatalogRepository) Filter(f models.Filter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.loadErr != nil {
		return nil, r.loadErr
	}

	filtered := []models.Product{}
	for i := range r.products {
		if f.Matches(&r.products[i]) {
			filtered = append(filtered, r.products[i])
		}
	}
	return filtered, nil
}
