package service

import (
	"crypto/rand"
	"fmt"

	"vashudhara/internal/models"
	"vashudhara/internal/repository/postgres"

	"github.com/jinzhu/gorm"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const codeRetries = 5

func randomCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(buf), nil
}

// GenerateRedeemCode creates a unique 6-character [A-Z0-9] code, retrying
// with a fresh code on collision instead of overwriting.
func (s *Service) GenerateRedeemCode() (models.RedeemCode, error) {
	for i := 0; i < codeRetries; i++ {
		code, err := randomCode()
		if err != nil {
			return models.RedeemCode{}, err
		}
		rc := models.RedeemCode{Code: code}
		err = s.RedeemPostgres.Create(rc)
		if err == postgres.ErrDuplicate {
			continue
		}
		if err != nil {
			return models.RedeemCode{}, err
		}
		return rc, nil
	}
	return models.RedeemCode{}, fmt.Errorf("redeem code generation: %d collisions in a row", codeRetries)
}

func (s *Service) MarkRedeemed(code string) error {
	if len(code) != 6 {
		return fmt.Errorf("%w: malformed code", ErrValidation)
	}
	err := s.RedeemPostgres.MarkRedeemed(code)
	if gorm.IsRecordNotFoundError(err) {
		return ErrNotFound
	}
	return err
}
