package services

import (
	"context"
	"errors"

	"tire-shop/models"
	"tire-shop/repositories"
	"tire-shop/utils"
)

// MsgAddedToCart is the confirmation toast shown after a successful add.
const MsgAddedToCart = "Товар добавлен в корзину!"

// CartService owns the add-to-cart flow for both the catalog and detail
// endpoints, so the cart rules exist in exactly one place.
type CartService struct {
	catalogRepo *repositories.CatalogRepository
	store       repositories.CartStore
	notifier    *utils.Notifier
}

func NewCartService(catalogRepo *repositories.CatalogRepository, store repositories.CartStore, notifier *utils.Notifier) *CartService {
	return &CartService{catalogRepo: catalogRepo, store: store, notifier: notifier}
}

// AddToCart looks the product up in the full catalog and performs the
// add-or-increment. An unknown product id is a silent no-op: the cart is
// untouched, no notification is recorded and added comes back false.
func (s *CartService) AddToCart(ctx context.Context, cartID string, productID int) (added bool, count int, err error) {
	product, err := s.catalogRepo.ByID(productID)
	if errors.Is(err, repositories.ErrProductNotFound) {
		count, err = s.store.TotalItemCount(ctx, cartID)
		return false, count, err
	}
	if err != nil {
		return false, 0, err
	}

	line := models.CartLine{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price.Int(),
		Image: product.FirstImage(),
	}
	if err := s.store.AddOrIncrement(ctx, cartID, line); err != nil {
		return false, 0, err
	}

	s.notifier.Push(cartID, MsgAddedToCart)

	count, err = s.store.TotalItemCount(ctx, cartID)
	if err != nil {
		return true, 0, err
	}
	return true, count, nil
}

func (s *CartService) Lines(ctx context.Context, cartID string) ([]models.CartLine, error) {
	return s.store.Lines(ctx, cartID)
}

func (s *CartService) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	return s.store.TotalItemCount(ctx, cartID)
}
