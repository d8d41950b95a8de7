package cart

import "github.com/spicekitchen/backend/internal/models"

// Line is one menu item snapshot plus a chosen quantity. Quantity is always
// positive while the line exists; a line that would reach zero is removed.
type Line struct {
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart holds the lines of one browsing session in insertion order. At most
// one line exists per menu item id. Totals are recomputed on every read.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// FromLines builds a cart from already-assembled lines, merging duplicate
// item ids and dropping lines with a non-positive quantity.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		c.AddItem(l.Item)
		if l.Quantity > 1 {
			c.UpdateQuantity(l.Item.ID, l.Quantity-1)
		}
	}
	return c
}

// AddItem increments the quantity of an existing line for the item, or
// appends a new line with quantity 1.
func (c *Cart) AddItem(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
}

// UpdateQuantity adjusts the line for id by delta, flooring at zero. A line
// whose quantity reaches zero is removed. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id uint, delta int) {
	for i := range c.lines {
		if c.lines[i].Item.ID != id {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q < 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = q
		return
	}
}

// RemoveItem drops the line for id regardless of its quantity.
func (c *Cart) RemoveItem(id uint) {
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	return c.lines
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Item.Price * int64(l.Quantity)
	}
	return total
}
