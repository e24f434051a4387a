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

func authHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestCreateClient(t *testing.T) {
	api := setupTestAPI(t)
	api.registerUser(t, "maria", "s3nh4", "Admin")
	token := api.loginToken(t, "maria", "s3nh4")
	api.registerUser(t, "pedro", "0utr4", "Operator")
	operatorToken := api.loginToken(t, "pedro", "0utr4")

	t.Run("requires a session token", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/clients",
			map[string]string{"name": "Mercearia Central"}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
	})

	t.Run("non-admin token is forbidden", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/clients",
			map[string]string{"name": "Mercearia Central"}, authHeader(operatorToken))

		testutils.RequireHTTPStatus(t, resp, http.StatusForbidden)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "admin permission required", body["message"])
	})

	t.Run("create then fetch round-trips", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/clients",
			map[string]string{"name": "Mercearia Central", "contact_info": "central@example.com"},
			authHeader(token))

		testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

		var created model.Client
		testutils.ParseResponse(t, resp, &created)
		require.NotZero(t, created.ID)

		fetch := testutils.MakeRequest(t, api.router, http.MethodGet,
			fmt.Sprintf("/api/clients/%d", created.ID), nil, nil)
		testutils.RequireHTTPStatus(t, fetch, http.StatusOK)

		var fetched model.Client
		testutils.ParseResponse(t, fetch, &fetched)
		assert.Equal(t, "Mercearia Central", fetched.Name)
		assert.Equal(t, "central@example.com", fetched.ContactInfo)
	})

	t.Run("missing client is 404", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodGet, "/api/clients/9999", nil, nil)
		testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
	})
}

func TestCreatePurchase(t *testing.T) {
	api := setupTestAPI(t)
	api.registerUser(t, "maria", "s3nh4", "Admin")
	token := api.loginToken(t, "maria", "s3nh4")
	api.registerUser(t, "pedro", "0utr4", "Operator")
	operatorToken := api.loginToken(t, "pedro", "0utr4")

	// Criar cliente e produto de apoio
	clientResp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/clients",
		map[string]string{"name": "Mercearia Central"}, authHeader(token))
	testutils.RequireHTTPStatus(t, clientResp, http.StatusCreated)
	var client model.Client
	testutils.ParseResponse(t, clientResp, &client)

	productResp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/products",
		map[string]interface{}{"name": "Parafuso", "price": 1.5, "quantity": 100}, nil)
	testutils.RequireHTTPStatus(t, productResp, http.StatusCreated)
	var product model.Product
	testutils.ParseResponse(t, productResp, &product)

	t.Run("requires a session token", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/purchases",
			map[string]interface{}{"client_id": client.ID, "product_id": product.ID, "quantity": 10}, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
	})

	t.Run("non-admin token is forbidden", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/purchases",
			map[string]interface{}{"client_id": client.ID, "product_id": product.ID, "quantity": 10},
			authHeader(operatorToken))

		testutils.RequireHTTPStatus(t, resp, http.StatusForbidden)
	})

	t.Run("records the purchase", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/purchases",
			map[string]interface{}{"client_id": client.ID, "product_id": product.ID, "quantity": 10},
			authHeader(token))

		testutils.RequireHTTPStatus(t, resp, http.StatusCreated)

		var purchase model.Purchase
		testutils.ParseResponse(t, resp, &purchase)
		assert.Equal(t, client.ID, purchase.ClientID)
		assert.Equal(t, product.ID, purchase.ProductID)
		assert.Equal(t, 10, purchase.Quantity)
	})

	t.Run("same pair again is a conflict", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/purchases",
			map[string]interface{}{"client_id": client.ID, "product_id": product.ID, "quantity": 5},
			authHeader(token))

		testutils.RequireHTTPStatus(t, resp, http.StatusConflict)

		var body map[string]interface{}
		testutils.ParseResponse(t, resp, &body)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "purchase already exists", body["message"])
	})

	t.Run("unknown client is 404", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodPost, "/api/purchases",
			map[string]interface{}{"client_id": 9999, "product_id": product.ID, "quantity": 1},
			authHeader(token))

		testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
	})

	t.Run("lists the client purchases", func(t *testing.T) {
		resp := testutils.MakeRequest(t, api.router, http.MethodGet,
			fmt.Sprintf("/api/purchases/%d", client.ID), nil, nil)

		testutils.RequireHTTPStatus(t, resp, http.StatusOK)

		var purchases []model.Purchase
		testutils.ParseResponse(t, resp, &purchases)
		require.Len(t, purchases, 1)
		assert.Equal(t, 10, purchases[0].Quantity)
	})
}
