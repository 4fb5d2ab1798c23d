package service

import (
	"vashudhara/internal/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

func (s *Service) CreateAddress(a models.Address) (models.Address, error) {
	if a.AddressID == "" {
		a.AddressID = uuid.NewString()
	}
	if a.Type == "" {
		a.Type = models.AddressHome
	}
	if err := validate.Struct(a); err != nil {
		return models.Address{}, validationErr(err)
	}
	if err := s.AddressPostgres.Create(a); err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (s *Service) UpdateAddress(a models.Address) error {
	if err := validate.Struct(a); err != nil {
		return validationErr(err)
	}
	err := s.AddressPostgres.Update(a)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

func (s *Service) DeleteAddress(customerID, addressID string) error {
	err := s.AddressPostgres.Delete(customerID, addressID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}

func (s *Service) ListAddresses(customerID string) ([]models.Address, error) {
	return s.AddressPostgres.List(customerID)
}

func (s *Service) SetDefaultAddress(customerID, addressID string) error {
	err := s.AddressPostgres.SetDefault(customerID, addressID)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}
