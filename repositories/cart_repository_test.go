package repositories

import (
	"testing"

	"store-admin/models"
	"store-admin/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_SaveLoad(t *testing.T) {
	repo := NewCartRepository(storage.NewMemoryStore())

	cart := models.Cart{
		Items:     []models.CartItem{{ID: 1, Name: "Laptop", Price: 1000, Quantity: 2}},
		Total:     2000,
		ItemCount: 2,
	}
	require.NoError(t, repo.Save("visitor", cart))

	loaded := repo.Load("visitor")
	assert.Equal(t, cart, loaded)
}

func TestCartRepository_LoadMissing(t *testing.T) {
	repo := NewCartRepository(storage.NewMemoryStore())

	cart := repo.Load("nobody")
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
	assert.Zero(t, cart.ItemCount)
}

func TestCartRepository_LoadCorrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewCartRepository(store)

	tests := []struct {
		name string
		blob string
	}{
		{"truncated json", `{"items":[{"id":1`},
		{"items is a string", `{"items":"x"}`},
		{"null items", `{"items":null,"total":99}`},
		{"array at top level", `[1,2,3]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Set("cart:visitor", tt.blob))
			cart := repo.Load("visitor")
			assert.Equal(t, models.EmptyCart(), cart)
		})
	}
}

func TestCartRepository_PerVisitorIsolation(t *testing.T) {
	repo := NewCartRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Save("a", models.Cart{
		Items: []models.CartItem{{ID: 1, Quantity: 1}}, ItemCount: 1,
	}))

	assert.Empty(t, repo.Load("b").Items)
	assert.Len(t, repo.Load("a").Items, 1)
}
