package service

import (
	"fmt"

	"vashudhara/internal/models"

	"github.com/jinzhu/gorm"
)

// UpsertCart writes the (customer, product, size) line with a fresh product
// snapshot. A non-positive quantity deletes the line instead.
func (s *Service) UpsertCart(customerID, productID, size string, quantity int) error {
	if customerID == "" {
		return fmt.Errorf("%w: missing customer", ErrValidation)
	}
	if quantity <= 0 {
		return s.CartPostgres.Delete(customerID, productID, size)
	}

	p, err := s.CatalogPostgres.Get(productID)
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: unknown product %s", ErrValidation, productID)
	}
	if err != nil {
		return err
	}
	if len(p.SizeList()) > 0 && !p.HasSize(size) {
		return fmt.Errorf("%w: unknown size %q", ErrValidation, size)
	}

	return s.CartPostgres.Upsert(models.CartEntry{
		CustomerID: customerID,
		ProductID:  p.ProductID,
		Size:       size,
		Title:      p.Title,
		Image:      p.Image,
		Brand:      p.Brand,
		Price:      p.Price,
		Quantity:   quantity,
	})
}

func (s *Service) DeleteCartEntry(customerID, productID, size string) error {
	if customerID == "" || productID == "" {
		return fmt.Errorf("%w: missing cart key", ErrValidation)
	}
	return s.CartPostgres.Delete(customerID, productID, size)
}

func (s *Service) ListCart(customerID string) ([]models.CartEntry, error) {
	return s.CartPostgres.List(customerID)
}

func (s *Service) AddWish(customerID, productID string) error {
	if customerID == "" {
		return fmt.Errorf("%w: missing customer", ErrValidation)
	}
	p, err := s.CatalogPostgres.Get(productID)
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%w: unknown product %s", ErrValidation, productID)
	}
	if err != nil {
		return err
	}
	return s.CartPostgres.AddWish(models.WishlistEntry{
		CustomerID: customerID,
		ProductID:  p.ProductID,
		Title:      p.Title,
		Image:      p.Image,
		Brand:      p.Brand,
		Price:      p.Price,
	})
}

func (s *Service) RemoveWish(customerID, productID string) error {
	return s.CartPostgres.RemoveWish(customerID, productID)
}

func (s *Service) ListWishes(customerID string) ([]models.WishlistEntry, error) {
	return s.CartPostgres.ListWishes(customerID)
}
