package cache_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"vashudhara/internal/models"
	"vashudhara/internal/repository/cache"
)

func TestOrderCache_PutGet_All(t *testing.T) {
	cch := cache.NewOrderCache(cache.NewCache())

	_, err := cch.GetOrder("nope")
	require.Error(t, err)
	if eh, ok := err.(cache.ErrorHandler); ok {
		require.Equal(t, http.StatusNotFound, eh.StatusCode)
	}

	in := models.Order{OrderID: "o-1", CustomerID: "cust-1", Status: models.StatusPaymentPending}
	cch.PutOrder(in.OrderID, in)

	got, err := cch.GetOrder("o-1")
	require.NoError(t, err)
	require.Equal(t, "o-1", got.OrderID)

	all, err := cch.GetAllOrders()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "o-1", all[0].OrderID)
}

func TestOrderCache_OverwriteAndDelete(t *testing.T) {
	cch := cache.NewOrderCache(cache.NewCache())

	in := models.Order{OrderID: "o-2", Status: models.StatusPaymentPending}
	cch.PutOrder(in.OrderID, in)

	in.Status = models.StatusPaymentSuccessful
	cch.PutOrder(in.OrderID, in)

	got, err := cch.GetOrder("o-2")
	require.NoError(t, err)
	require.Equal(t, models.StatusPaymentSuccessful, got.Status)

	cch.DeleteOrder("o-2")
	_, err = cch.GetOrder("o-2")
	require.Error(t, err)
}
