package services

import (
	"store-admin/libs"
	"store-admin/models"
	"store-admin/repositories"
)

// CartService owns a visitor's cart aggregate. Each operation is a pure
// transition over the loaded cart followed by a best-effort persist; the
// in-memory result is authoritative, storage is a mirror for the next start.
type CartService struct {
	carts *repositories.CartRepository
	log   *libs.Logger
}

func NewCartService(carts *repositories.CartRepository, log *libs.Logger) *CartService {
	return &CartService{carts: carts, log: log}
}

func (s *CartService) Get(sessionID string) models.Cart {
	return s.carts.Load(sessionID)
}

// AddItem puts a product in the cart: an existing line gains quantity 1, a
// new product starts at quantity 1.
func (s *CartService) AddItem(sessionID string, product models.Product) models.Cart {
	cart := addItem(s.carts.Load(sessionID), product)
	s.persist(sessionID, cart)
	return cart
}

// RemoveItem drops the line with the given product id. Absent ids are a no-op.
func (s *CartService) RemoveItem(sessionID string, productID int) models.Cart {
	cart := removeItem(s.carts.Load(sessionID), productID)
	s.persist(sessionID, cart)
	return cart
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line.
func (s *CartService) UpdateQuantity(sessionID string, productID, quantity int) models.Cart {
	cart := updateQuantity(s.carts.Load(sessionID), productID, quantity)
	s.persist(sessionID, cart)
	return cart
}

func (s *CartService) Clear(sessionID string) models.Cart {
	cart := models.EmptyCart()
	s.persist(sessionID, cart)
	return cart
}

// Checkout snapshots the current cart and empties it. The caller decides what
// to do with an empty snapshot.
func (s *CartService) Checkout(sessionID string) models.Cart {
	cart := s.carts.Load(sessionID)
	s.persist(sessionID, models.EmptyCart())
	return cart
}

func (s *CartService) persist(sessionID string, cart models.Cart) {
	if err := s.carts.Save(sessionID, cart); err != nil {
		s.log.Warn("cart persist failed", "session_id", sessionID, "error", err)
	}
}

// Pure transitions. Each returns a new cart value with totals recomputed by
// full traversal.

func addItem(cart models.Cart, product models.Product) models.Cart {
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	found := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Category: product.Category,
			ImageURL: product.ImageURL,
			Quantity: 1,
		})
	}

	cart.Items = items
	return recalc(cart)
}

func removeItem(cart models.Cart, productID int) models.Cart {
	items := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}

	cart.Items = items
	return recalc(cart)
}

func updateQuantity(cart models.Cart, productID, quantity int) models.Cart {
	if quantity <= 0 {
		return removeItem(cart, productID)
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	cart.Items = items
	return recalc(cart)
}

func recalc(cart models.Cart) models.Cart {
	total := 0.0
	count := 0
	for _, item := range cart.Items {
		total += item.Price * float64(item.Quantity)
		count += item.Quantity
	}
	cart.Total = total
	cart.ItemCount = count
	return cart
}
