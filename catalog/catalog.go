package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var seed []byte

// Category groups products in the shop navigation.
type Category string

const (
	All       Category = "all"
	Keychains Category = "keychains"
	Prints    Category = "prints"
	Badges    Category = "badges"
	Charms    Category = "charms"
)

var categories = []Category{Keychains, Prints, Badges, Charms}

// Categories returns the product categories in navigation order, without All.
func Categories() []Category { return slices.Clone(categories) }

// ParseCategory accepts a category name or "all". Empty input means All.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" || c == All {
		return All, true
	}
	return c, slices.Contains(categories, c)
}

// Product is an immutable catalog entry.
type Product struct {
	Price       decimal.Decimal `json:"price"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Tags        []string        `json:"tags"`
	ID          int             `json:"id"`
	Popular     bool            `json:"popular"`
}

// clone copies p so callers cannot alter the catalog through Tags.
func (p Product) clone() Product {
	p.Tags = slices.Clone(p.Tags)
	return p
}

// Query narrows the catalog. Zero value matches everything.
type Query struct {
	Category Category
	Search   string
}

// Catalog is the read-only product list. Safe for concurrent use.
type Catalog struct {
	byID     map[int]int
	products []Product
}

// New validates products and builds a catalog preserving their order.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		switch {
		case p.ID <= 0:
			return nil, fmt.Errorf("%w: id %d must be positive", ErrInvalidProduct, p.ID)
		case p.Price.IsNegative():
			return nil, fmt.Errorf("%w: product %d has negative price", ErrInvalidProduct, p.ID)
		case p.Name == "":
			return nil, fmt.Errorf("%w: product %d has no name", ErrInvalidProduct, p.ID)
		case !slices.Contains(categories, p.Category):
			return nil, fmt.Errorf("%w: product %d has unknown category %q", ErrInvalidProduct, p.ID, p.Category)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
		}
		p.Tags = slices.Clone(p.Tags)
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

type seedProduct struct {
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Price       string   `yaml:"price"`
	Description string   `yaml:"description"`
	Emoji       string   `yaml:"emoji"`
	Tags        []string `yaml:"tags"`
	ID          int      `yaml:"id"`
	Popular     bool     `yaml:"popular"`
}

// Parse builds a catalog from YAML seed data.
func Parse(data []byte) (*Catalog, error) {
	var raw []seedProduct
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	products := make([]Product, 0, len(raw))
	for _, r := range raw {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			return nil, fmt.Errorf("%w: product %d price %q: %w", ErrInvalidSeed, r.ID, r.Price, err)
		}
		products = append(products, Product{
			ID:          r.ID,
			Name:        r.Name,
			Category:    Category(r.Category),
			Price:       price,
			Description: r.Description,
			Emoji:       r.Emoji,
			Tags:        r.Tags,
			Popular:     r.Popular,
		})
	}
	return New(products)
}

// Load parses the embedded seed catalog.
func Load() (*Catalog, error) {
	return Parse(seed)
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// All returns every product in catalog order.
func (c *Catalog) All() []Product {
	return c.where(func(Product) bool { return true })
}

// ByID returns the product with id.
func (c *Catalog) ByID(id int) (Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return c.products[i].clone(), nil
}

// ByCategory returns products of cat. All or "" returns everything.
func (c *Catalog) ByCategory(cat Category) []Product {
	return c.where(func(p Product) bool { return cat == "" || cat == All || p.Category == cat })
}

// Popular returns products flagged popular.
func (c *Catalog) Popular() []Product {
	return c.where(func(p Product) bool { return p.Popular })
}

// Search matches q case-insensitively against name, description and tags.
// A blank query matches everything.
func (c *Catalog) Search(q string) []Product {
	return c.where(matcher(q))
}

// PriceRange returns products priced within [min, max].
func (c *Catalog) PriceRange(minPrice, maxPrice decimal.Decimal) []Product {
	return c.where(func(p Product) bool {
		return p.Price.GreaterThanOrEqual(minPrice) && p.Price.LessThanOrEqual(maxPrice)
	})
}

// Filter applies category and search together, keeping catalog order.
func (c *Catalog) Filter(q Query) []Product {
	match := matcher(q.Search)
	return c.where(func(p Product) bool {
		return (q.Category == "" || q.Category == All || p.Category == q.Category) && match(p)
	})
}

func (c *Catalog) where(keep func(Product) bool) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if keep(p) {
			out = append(out, p.clone())
		}
	}
	return out
}

func matcher(q string) func(Product) bool {
	term := strings.ToLower(strings.TrimSpace(q))
	if term == "" {
		return func(Product) bool { return true }
	}
	return func(p Product) bool {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			return true
		}
		return slices.ContainsFunc(p.Tags, func(t string) bool {
			return strings.Contains(strings.ToLower(t), term)
		})
	}
}
