package entity

// Product is a glass type from the shop catalog. The catalog is fixed at
// process start; base prices do not change at runtime.
type Product struct {
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"` // rupiah per square meter
}

// Catalog is the immutable set of products the shop sells. Order is
// preserved for listing; lookups are by exact name.
type Catalog struct {
	products []Product
	byName   map[string]*Product
}

// NewCatalog builds a catalog from the configured product list. Later
// duplicates of the same name are ignored.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]*Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byName[p.Name]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byName[p.Name] = &c.products[len(c.products)-1]
	}
	return c
}

// Find returns the product with the given name, or nil if the catalog does
// not carry it.
func (c *Catalog) Find(name string) *Product {
	return c.byName[name]
}

// Products returns the catalog in listing order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
