package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/momenul162/Food-pagol-server/models"
)

func TestCartController(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get cart items for own email", func(mt *mtest.T) {
		cc := NewCartController(mt.Client)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodPagolDB.carts", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "customer@example.com"},
			{Key: "name", Value: "Margherita"},
			{Key: "price", Value: 12.0},
		}))

		req := requestAs(http.MethodGet, "/carts?email=customer@example.com", "customer@example.com", "")
		rr := httptest.NewRecorder()
		cc.GetCartItems(rr, req)

		require.Equal(mt, http.StatusOK, rr.Code)
		var items []models.CartItem
		require.NoError(mt, json.Unmarshal(rr.Body.Bytes(), &items))
		require.Len(mt, items, 1)
		assert.Equal(mt, "Margherita", items[0].Name)
	})

	mt.Run("missing email query returns an empty list", func(mt *mtest.T) {
		cc := NewCartController(mt.Client)

		req := requestAs(http.MethodGet, "/carts", "customer@example.com", "")
		rr := httptest.NewRecorder()
		cc.GetCartItems(rr, req)

		assert.Equal(mt, http.StatusOK, rr.Code)
		assert.JSONEq(mt, "[]", rr.Body.String())
	})

	mt.Run("reading another user's cart is forbidden", func(mt *mtest.T) {
		cc := NewCartController(mt.Client)

		req := requestAs(http.MethodGet, "/carts?email=other@example.com", "customer@example.com", "")
		rr := httptest.NewRecorder()
		cc.GetCartItems(rr, req)

		assert.Equal(mt, http.StatusForbidden, rr.Code)
	})

	mt.Run("add cart item", func(mt *mtest.T) {
		cc := NewCartController(mt.Client)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body := `{"email":"customer@example.com","menuItemId":"abc123","name":"Margherita","price":12}`
		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(body))
		rr := httptest.NewRecorder()
		cc.AddCartItem(rr, req)

		assert.Equal(mt, http.StatusOK, rr.Code)
	})

	mt.Run("delete cart item responds 203", func(mt *mtest.T) {
		cc := NewCartController(mt.Client)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/carts/"+id.Hex(), nil),
			map[string]string{"id": id.Hex()})
		rr := httptest.NewRecorder()
		cc.DeleteCartItem(rr, req)

		assert.Equal(mt, http.StatusNonAuthoritativeInfo, rr.Code)
	})
}
