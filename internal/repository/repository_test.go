package repository_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"vashudhara/internal/models"
	"vashudhara/internal/repository"
	"vashudhara/internal/repository/cache"
)

func TestNewRepositoryWithCache_ShardedKV(t *testing.T) {
	kv := cache.NewShardedCache(cache.WithShards(4))
	defer kv.Close()

	r := repository.NewRepositoryWithCache(nil, kv)

	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("o-%d", i)
		r.OrderCache.PutOrder(id, models.Order{OrderID: id, Status: models.StatusPaymentPending})
	}

	got, err := r.OrderCache.GetOrder("o-7")
	require.NoError(t, err)
	require.Equal(t, "o-7", got.OrderID)

	all, err := r.OrderCache.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, all, 10)

	r.OrderCache.DeleteOrder("o-7")
	_, err = r.OrderCache.GetOrder("o-7")
	require.Error(t, err)
}

func TestNewRepository_DefaultKV(t *testing.T) {
	r := repository.NewRepository(nil)

	r.OrderCache.PutOrder("o-1", models.Order{OrderID: "o-1"})
	got, err := r.OrderCache.GetOrder("o-1")
	require.NoError(t, err)
	require.Equal(t, "o-1", got.OrderID)
}
