package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/infrastructure/remote"
)

func TestProductClient_CreateEnviaTokenYDevuelveID(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok","id":"remote-1"}`))
	}))
	defer srv.Close()

	c := remote.NewProductClient(srv.URL, "tok", time.Second)
	id, err := c.CreateProduct(context.Background(), &entity.Product{
		ID: "local-1", Name: "Auriculares", SKU: "WH001", Price: decimal.RequireFromString("99.99"), Stock: 25, MinStock: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "remote-1", id)
	assert.Equal(t, "WH001", got["sku"])
	assert.Equal(t, "local-1", got["id"])
	assert.InDelta(t, 99.99, got["price"], 0.0001)
	assert.EqualValues(t, 5, got["min_stock"])
}

func TestProductClient_ListConvierteAPrecioDecimal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":"p1","name":"Camiseta","price":19.99,"cost":8,"sku":"TS001","category":"Clothing","stock":50,"min_stock":10,"is_active":true}],"count":1}`))
	}))
	defer srv.Close()

	list, err := remote.NewProductClient(srv.URL, "", time.Second).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "p1", list[0].ID)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 10, list[0].MinStock)
}

func TestProductClient_StatusNoExitosoEsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to delete product"}`))
	}))
	defer srv.Close()

	err := remote.NewProductClient(srv.URL, "", time.Second).DeleteProduct(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestProductClient_TimeoutCortaLaLlamada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	start := time.Now()
	_, err := remote.NewProductClient(srv.URL, "", 50*time.Millisecond).ListProducts(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
