package repositories

import (
	"encoding/json"

	"store-admin/models"
	"store-admin/storage"
)

const cartKeyPrefix = "cart:"

type CartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) *CartRepository {
	return &CartRepository{store: store}
}

// Load returns the persisted cart for a visitor. A missing or structurally
// invalid blob yields the empty cart, never an error.
func (r *CartRepository) Load(sessionID string) models.Cart {
	raw, err := r.store.Get(cartKeyPrefix + sessionID)
	if err != nil {
		return models.EmptyCart()
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil || cart.Items == nil {
		return models.EmptyCart()
	}
	return cart
}

func (r *CartRepository) Save(sessionID string, cart models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.store.Set(cartKeyPrefix+sessionID, string(raw))
}
