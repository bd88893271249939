package session

// VATRate is the Saudi value-added tax applied at checkout.
const VATRate = 0.15

// CartItem is one product line in a cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart holds a store's shopping cart as a plain value. Mutations go
// through the reducer methods; persistence is the caller's concern
// (load when the session opens, save after each change).
type Cart struct {
	StoreID string     `json:"store_id"`
	Items   []CartItem `json:"items"`
}

// NewCart returns an empty cart for a store.
func NewCart(storeID string) *Cart {
	return &Cart{StoreID: storeID}
}

// AddItem adds quantity units of a product, merging with an existing
// line for the same product. Quantity values below 1 count as 1.
func (c *Cart) AddItem(productID, name string, price float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  quantity,
	})
}

// SetQuantity fixes a line's quantity. Zero or negative removes the
// line; an unknown product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops a product line from the cart.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems returns the unit count across all lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the pre-tax sum of all lines.
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Tax is the VAT due on the subtotal.
func (c *Cart) Tax() float64 {
	return c.Subtotal() * VATRate
}

// Total is the subtotal plus VAT.
func (c *Cart) Total() float64 {
	return c.Subtotal() + c.Tax()
}
