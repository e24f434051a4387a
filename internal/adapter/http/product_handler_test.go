package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/diillson/warehouse-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	api := setupTestAPI(t)

	t.Run("create then fetch round-trips every field", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
			map[string]interface{}{
				"name":        "Parafuso",
				"description": "Aço inox M4",
				"price":       1.55,
				"quantity":    500,
			}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

		var created model.Product
		testutils.ParseResponse(t, resp, &created)
		require.NotZero(t, created.ID)

		fetch := testutils.MakeRequest(t, api.router, http.MethodGet,
			fmt.Sprintf("/api/products/%d", created.ID), nil, nil)
		testutils.RequireHTTPStatus(t, fetch, http.StatusOK)

		var fetched model.Product
		testutils.ParseResponse(t, fetch, &fetched)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "Parafuso", fetched.Name)
		assert.Equal(t, "Aço inox M4", fetched.Description)
		assert.Equal(t, 1.55, fetched.Price)
		assert.Equal(t, 500, fetched.Quantity)
	})

	t.Run("zero price and quantity are accepted", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
			map[string]interface{}{
				"name":     "Amostra grátis",
				"price":    0,
				"quantity": 0,
			}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusCreated)
	})

	t.Run("missing fields are a validation error", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
			map[string]interface{}{"name": "Sem preço", "quantity": 1}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
			map[string]interface{}{"name": "Inválido", "price": -2.5, "quantity": 1}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)
	})
}

func TestGetProducts(t *testing.T) {
	api := setupTestAPI(t)

	t.Run("empty catalog lists as an empty array", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/api/products", nil, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusOK)
		assert.JSONEq(t, `[]`, resp.Body.String())
	})

	t.Run("lists exactly the created products", func(t *testing.T) {
		created := make(map[uint]string)
		for i := 1; i <= 3; i++ {
			resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
				map[string]interface{}{
					"name":     fmt.Sprintf("Produto %d", i),
					"price":    float64(i) * 1.5,
					"quantity": i * 10,
				}, nil)
			testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

			var product model.Product
			testutils.ParseResponse(t, resp, &product)
			created[product.ID] = product.Name
		}

		resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/api/products", nil, nil)
		testutils.RequireHTTPStatus(t, resp, http.StatusOK)

		var products []model.Product
		testutils.ParseResponse(t, resp, &products)
		require.Len(t, products, 3)
		for _, product := range products {
			assert.Equal(t, created[product.ID], product.Name)
		}
	})
}

func TestGetProduct_NotFound(t *testing.T) {
	api := setupTestAPI(t)

	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/api/products/9999", nil, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)

	var body map[string]interface{}
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, "error", body["status"])
}

func TestGetProduct_InvalidID(t *testing.T) {
	api := setupTestAPI(t)

	resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/api/products/abc", nil, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)
}
