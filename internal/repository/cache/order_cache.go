package cache

import (
	"fmt"

	"vashudhara/internal/models"

	"net/http"
)

// OrderCacheRepo is the admin dashboard's read model: every order mutation
// that commits is mirrored here so listing does not hit Postgres.
type OrderCacheRepo struct {
	cch KV
}

func NewOrderCache(cch KV) *OrderCacheRepo {
	return &OrderCacheRepo{cch: cch}
}

func (o *OrderCacheRepo) PutOrder(id string, ord models.Order) {
	o.cch.Put(id, ord)
}

func (o *OrderCacheRepo) GetOrder(id string) (models.Order, error) {
	v, ok := o.cch.Get(id)
	if !ok {
		return models.Order{}, NewErrorHandler(fmt.Errorf("order %s not found", id), http.StatusNotFound)
	}

	ord, ok := v.(models.Order)
	if !ok {
		return models.Order{},
			NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", id),
				http.StatusInternalServerError)
	}
	return ord, nil
}

func (o *OrderCacheRepo) GetAllOrders() ([]models.Order, error) {
	snap := o.cch.Snapshot()
	if len(snap) == 0 {
		return []models.Order{}, nil
	}

	orders := make([]models.Order, 0, len(snap))
	for id, val := range snap {
		ord, ok := val.(models.Order)
		if !ok {
			return nil,
				NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", id),
					http.StatusInternalServerError)
		}
		orders = append(orders, ord)
	}
	return orders, nil
}

func (o *OrderCacheRepo) DeleteOrder(id string) {
	o.cch.Delete(id)
}
