package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/apperror"
)

func newTestCartService() *CartService {
	catalog := entity.NewCatalog([]entity.Product{
		{Name: "Kaca Polos 5MM", BasePrice: 190000},
		{Name: "Kaca Riben 5MM", BasePrice: 200000},
	})
	return NewCartService(NewCatalogService(catalog), 500)
}

func TestCartServiceAddLine(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()

	cart, err := svc.AddLine(session, &AddLineInput{
		ProductName: "Kaca Polos 5MM",
		WidthCM:     100,
		HeightCM:    50,
		Quantity:    2,
	})
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(95500), cart.Lines[0].UnitPrice)
	assert.Equal(t, int64(191000), cart.Lines[0].Subtotal)
}

func TestCartServiceAddLineDefaultsQuantity(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()

	cart, err := svc.AddLine(session, &AddLineInput{
		ProductName: "Kaca Polos 5MM",
		WidthCM:     60,
		HeightCM:    40,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCartServiceAddLineRejectsBadDimensions(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()

	cases := []AddLineInput{
		{ProductName: "Kaca Polos 5MM", WidthCM: 0, HeightCM: 50},
		{ProductName: "Kaca Polos 5MM", WidthCM: 100, HeightCM: -1},
	}
	for _, input := range cases {
		_, err := svc.AddLine(session, &input)
		require.Error(t, err)
		assert.Equal(t, 422, apperror.GetAppError(err).Code)
	}
	assert.True(t, session.Cart.IsEmpty())
}

func TestCartServiceAddLineRejectsNegativeQuantity(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()

	_, err := svc.AddLine(session, &AddLineInput{
		ProductName: "Kaca Polos 5MM",
		WidthCM:     100,
		HeightCM:    50,
		Quantity:    -2,
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCartServiceAddLineUnknownProduct(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()

	_, err := svc.AddLine(session, &AddLineInput{
		ProductName: "Kaca Cermin",
		WidthCM:     100,
		HeightCM:    50,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "Kaca Cermin")
	assert.True(t, session.Cart.IsEmpty(), "cart unchanged on rejected input")
}

func TestCartServiceRemoveLineOutOfRange(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()
	_, err := svc.AddLine(session, &AddLineInput{ProductName: "Kaca Polos 5MM", WidthCM: 100, HeightCM: 50})
	require.NoError(t, err)

	_, err = svc.RemoveLine(session, 3)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, appErr.Message, "index 3")
	assert.Len(t, session.Cart.Lines, 1)
}

func TestCartServiceRemoveLine(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()
	_, err := svc.AddLine(session, &AddLineInput{ProductName: "Kaca Polos 5MM", WidthCM: 100, HeightCM: 50})
	require.NoError(t, err)

	cart, err := svc.RemoveLine(session, 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartServiceClear(t *testing.T) {
	svc := newTestCartService()
	session := entity.NewSession()
	_, err := svc.AddLine(session, &AddLineInput{ProductName: "Kaca Polos 5MM", WidthCM: 100, HeightCM: 50})
	require.NoError(t, err)

	svc.Clear(session)
	assert.True(t, session.Cart.IsEmpty())
}
