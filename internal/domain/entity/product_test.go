package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCatalogDeduplicatesByName(t *testing.T) {
	catalog := NewCatalog([]Product{
		{Name: "Kaca Polos 5MM", BasePrice: 190000},
		{Name: "Kaca Riben 5MM", BasePrice: 200000},
		{Name: "Kaca Polos 5MM", BasePrice: 999999}, // later duplicate ignored
	})

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, int64(190000), catalog.Find("Kaca Polos 5MM").BasePrice)
}

func TestCatalogFindUnknown(t *testing.T) {
	catalog := NewCatalog([]Product{{Name: "Kaca Polos 5MM", BasePrice: 190000}})
	assert.Nil(t, catalog.Find("Kaca Cermin"))
}

func TestCatalogPreservesOrder(t *testing.T) {
	catalog := NewCatalog([]Product{
		{Name: "B", BasePrice: 2},
		{Name: "A", BasePrice: 1},
		{Name: "C", BasePrice: 3},
	})

	names := make([]string, 0, catalog.Len())
	for _, p := range catalog.Products() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"B", "A", "C"}, names)
}
