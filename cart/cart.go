package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/catalog"
)

// MaxQuantity caps the units of one product in a cart.
const MaxQuantity = 99

// LineItem is a product snapshot plus the quantity held. Quantity is
// always between 1 and MaxQuantity inside a Cart.
type LineItem struct {
	Price     decimal.Decimal  `json:"price"`
	Name      string           `json:"name"`
	Emoji     string           `json:"emoji"`
	Category  catalog.Category `json:"category"`
	ProductID int              `json:"id"`
	Quantity  int              `json:"quantity"`
}

// Subtotal is price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an insertion ordered list of line items, unique per product.
type Cart struct {
	Items []LineItem `json:"items"`
}

// Add inserts p with quantity 1, or increments it when already present.
// A line already at MaxQuantity is left unchanged.
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.Items[i].Quantity = min(c.Items[i].Quantity+1, MaxQuantity)
		return
	}
	c.Items = append(c.Items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Emoji:     p.Emoji,
		Category:  p.Category,
		Quantity:  1,
	})
}

// Remove deletes the line item regardless of quantity.
func (c *Cart) Remove(productID int) error {
	i := c.index(productID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Items = slices.Delete(c.Items, i, i+1)
	return nil
}

// SetQuantity overwrites the quantity. qty <= 0 removes the item and
// values above MaxQuantity are clamped.
func (c *Cart) SetQuantity(productID, qty int) error {
	if qty <= 0 {
		return c.Remove(productID)
	}
	i := c.index(productID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Items[i].Quantity = min(qty, MaxQuantity)
	return nil
}

// Item returns the line item of productID.
func (c *Cart) Item(productID int) (LineItem, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// Count is the total number of units.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Clear empties the cart.
func (c *Cart) Clear() { c.Items = nil }

// Subtotal sums line item subtotals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// Clone returns a deep copy.
func (c *Cart) Clone() *Cart {
	return &Cart{Items: slices.Clone(c.Items)}
}

func (c *Cart) index(productID int) int {
	return slices.IndexFunc(c.Items, func(it LineItem) bool { return it.ProductID == productID })
}

// normalize drops items that break the quantity invariant and merges
// duplicate ids. It reports whether anything changed.
func (c *Cart) normalize() bool {
	changed := false
	out := make([]LineItem, 0, len(c.Items))
	seen := make(map[int]int, len(c.Items))
	for _, it := range c.Items {
		if it.Quantity < 1 || it.ProductID <= 0 || it.Price.IsNegative() {
			changed = true
			continue
		}
		if i, dup := seen[it.ProductID]; dup {
			out[i].Quantity += it.Quantity
			changed = true
			continue
		}
		seen[it.ProductID] = len(out)
		out = append(out, it)
	}
	c.Items = out
	return changed
}
