package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteCatalogAdapter_Products(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"Kettle","price":1099,"gst":18,"category":"kitchen"}]`))
	}))
	defer ts.Close()

	a := NewRemoteCatalogAdapter(ts.URL)

	products, err := a.Products()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Kettle", products[0].Name)
	assert.True(t, decimal.NewFromInt(1099).Equal(products[0].Price))
}

func TestRemoteCatalogAdapter_Products_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	a := NewRemoteCatalogAdapter(ts.URL)

	_, err := a.Products()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 503")
}

func TestRemoteCatalogAdapter_Products_BadPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer ts.Close()

	a := NewRemoteCatalogAdapter(ts.URL)

	_, err := a.Products()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode product feed")
}

func TestStaticCatalogAdapter_DefaultSeed(t *testing.T) {
	a := NewStaticCatalogAdapter(nil)

	products, err := a.Products()
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	// Returned slice is a copy; mutating it must not affect the adapter.
	products[0].Name = "mutated"
	again, err := a.Products()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Name)
}
