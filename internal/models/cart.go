package models

// Shipping is waived once the subtotal exceeds the threshold.
const (
	FreeShippingThreshold = 200.0
	ShippingFee           = 30.0
)

type CartLine struct {
	ItemID    uint    `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds the active session's unsubmitted selection. At most one line
// exists per item id; quantities merge on repeated adds.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Add merges quantity into an existing line for the item or appends a new
// line. Quantities below 1 are clamped, never rejected.
func (c *Cart) Add(item MenuItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Quantity += quantity
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.Price,
		Quantity:  quantity,
	})
}

// SetQuantity replaces a line's quantity. A quantity of zero or less removes
// the line.
func (c *Cart) SetQuantity(itemID uint, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(itemID uint) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems is the unit count across all lines, used for cart badges.
func (c *Cart) TotalItems() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Totals derives subtotal, shipping and total from the current lines. Nothing
// is stored; the derivation is recomputed on every read.
func (c *Cart) Totals() CartTotals {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	return CartTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
