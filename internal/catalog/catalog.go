package catalog

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"

	"github.com/Juan171109/automation-task/internal/models"
)

// Catalog errors
var (
	ErrDuplicateCode = errors.New("duplicate product code")
	ErrEmptyCatalog  = errors.New("catalog has no products")
)

var validate = validator.New()

// Catalog is the fixed, read-only list of purchasable products
type Catalog struct {
	products []models.Product
	index    map[string]int
}

// New validates products and builds a catalog that keeps their order
func New(products []models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		products: make([]models.Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)

	for i, p := range c.products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("invalid product %q: %w", p.Code, err)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%w: %s", models.ErrNegativePrice, p.Code)
		}
		if _, ok := c.index[p.Code]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, p.Code)
		}
		c.index[p.Code] = i
	}

	return c, nil
}

// Lookup returns the product with the given code
func (c *Catalog) Lookup(code string) (models.Product, bool) {
	i, ok := c.index[code]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// All returns a copy of every product in insertion order
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Search yields the products whose code or description contains term,
// ignoring case. A blank term yields the whole catalog. The sequence is
// recomputed every time it is ranged over.
func (c *Catalog) Search(term string) iter.Seq[models.Product] {
	term = strings.TrimSpace(term)
	return func(yield func(models.Product) bool) {
		fold := cases.Fold()
		needle := fold.String(term)
		for _, p := range c.products {
			if needle != "" &&
				!strings.Contains(fold.String(p.Code), needle) &&
				!strings.Contains(fold.String(p.Description), needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
