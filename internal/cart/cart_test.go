package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopeasy_back_end/internal/catalog"
	"shopeasy_back_end/internal/models"
)

func testCatalog() *catalog.Store {
	return catalog.NewStoreFromProducts([]models.Product{
		{ID: 1, Title: "Sac à dos", Price: 9.99, Category: "men's clothing"},
		{ID: 2, Title: "T-shirt", Price: 22.30, Category: "men's clothing"},
		{ID: 3, Title: "Bague en or", Price: 168.00, Category: "jewelery"},
	})
}

func TestAddNewLine(t *testing.T) {
	items := Add([]models.CartItem{}, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddIncrementsExistingLine(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 2}}
	items = Add(items, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddPreservesOrderAndAppends(t *testing.T) {
	items := []models.CartItem{{ProductID: 2, Quantity: 1}, {ProductID: 1, Quantity: 1}}
	items = Add(items, 3)
	require.Len(t, items, 3)
	assert.Equal(t, 2, items[0].ProductID)
	assert.Equal(t, 1, items[1].ProductID)
	assert.Equal(t, 3, items[2].ProductID)
}

func TestChangeQuantityDelta(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 1}}
	items = ChangeQuantity(items, 1, 4)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	// add suivi d'un delta de -N où N est la quantité : la ligne disparaît
	items := Add([]models.CartItem{}, 1)
	items = Add(items, 1)
	items = ChangeQuantity(items, 1, -2)
	assert.Empty(t, items)
}

func TestChangeQuantityBelowZeroRemovesLine(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}
	items = ChangeQuantity(items, 1, -10)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
}

func TestChangeQuantityUnknownProductIsNoop(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 2}}
	items = ChangeQuantity(items, 42, -1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemove(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}
	items = Remove(items, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	items = Remove(items, 42) // inconnu : no-op
	assert.Len(t, items, 1)
}

func TestComputeTotalsExample(t *testing.T) {
	store := testCatalog()

	items := []models.CartItem{{ProductID: 1, Quantity: 2}}
	items = Add(items, 1)

	totals := ComputeTotals(items, store)
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, 29.97, totals.AmountDue)
}

func TestComputeTotalsAdditive(t *testing.T) {
	store := testCatalog()

	left := []models.CartItem{{ProductID: 1, Quantity: 2}}
	right := []models.CartItem{{ProductID: 2, Quantity: 1}, {ProductID: 3, Quantity: 3}}

	sum := ComputeTotals(append(append([]models.CartItem{}, left...), right...), store)
	lt := ComputeTotals(left, store)
	rt := ComputeTotals(right, store)

	assert.Equal(t, lt.ItemCount+rt.ItemCount, sum.ItemCount)
	assert.InDelta(t, lt.AmountDue+rt.AmountDue, sum.AmountDue, 0.001)
}

func TestComputeTotalsUsesCurrentCatalogPrice(t *testing.T) {
	items := []models.CartItem{{ProductID: 1, Quantity: 2}}

	before := catalog.NewStoreFromProducts([]models.Product{{ID: 1, Price: 10.00}})
	after := catalog.NewStoreFromProducts([]models.Product{{ID: 1, Price: 12.50}})

	assert.Equal(t, 20.00, ComputeTotals(items, before).AmountDue)
	assert.Equal(t, 25.00, ComputeTotals(items, after).AmountDue)
}

func TestComputeTotalsSkipsVanishedProduct(t *testing.T) {
	store := testCatalog()
	items := []models.CartItem{{ProductID: 1, Quantity: 1}, {ProductID: 999, Quantity: 2}}

	totals := ComputeTotals(items, store)
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, 9.99, totals.AmountDue)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals([]models.CartItem{}, testCatalog())
	assert.Zero(t, totals.ItemCount)
	assert.Zero(t, totals.AmountDue)
}
