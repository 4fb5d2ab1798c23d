package service

import (
	"fmt"

	"vashudhara/internal/models"
	"vashudhara/internal/repository/postgres"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

func (s *Service) ListProducts() ([]models.Product, error) {
	return s.CatalogPostgres.GetAll()
}

func (s *Service) ListCategory(category string) ([]models.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: missing category", ErrValidation)
	}
	return s.CatalogPostgres.GetByCategory(category)
}

func (s *Service) GetProduct(id string) (models.Product, error) {
	p, err := s.CatalogPostgres.Get(id)
	if gorm.IsRecordNotFoundError(err) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *Service) CreateProduct(p models.Product) (models.Product, error) {
	if p.ProductID == "" {
		p.ProductID = uuid.NewString()
	}
	p.CreatedAt = s.opt.Now().UTC()
	if err := validate.Struct(p); err != nil {
		return models.Product{}, validationErr(err)
	}
	if err := s.CatalogPostgres.Create(p); err != nil {
		if err == postgres.ErrDuplicate {
			return models.Product{}, ErrConflict
		}
		return models.Product{}, err
	}
	return p, nil
}

func (s *Service) UpdateProduct(p models.Product) error {
	if err := validate.Struct(p); err != nil {
		return validationErr(err)
	}
	err := s.CatalogPostgres.Update(p)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

// DeleteProduct removes the catalog row only; historical orders keep their
// snapshots.
func (s *Service) DeleteProduct(id string) error {
	err := s.CatalogPostgres.Delete(id)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}
