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

func TestMenuController(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("get menu lists all items", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		first := mtest.CreateCursorResponse(1, "foodPagolDB.menu", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "category", Value: "Pizza"},
			{Key: "name", Value: "Margherita"},
			{Key: "price", Value: 12.0},
		})
		second := mtest.CreateCursorResponse(0, "foodPagolDB.menu", mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "category", Value: "Dessert"},
			{Key: "name", Value: "Tiramisu"},
			{Key: "price", Value: 6.5},
		})
		mt.AddMockResponses(first, second)

		req := httptest.NewRequest(http.MethodGet, "/menu", nil)
		rr := httptest.NewRecorder()
		mc.GetMenu(rr, req)

		require.Equal(mt, http.StatusOK, rr.Code)
		var items []models.MenuItem
		require.NoError(mt, json.Unmarshal(rr.Body.Bytes(), &items))
		require.Len(mt, items, 2)
		assert.Equal(mt, "Margherita", items[0].Name)
		assert.Equal(mt, "Dessert", items[1].Category)
	})

	mt.Run("get menu item by id", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodPagolDB.menu", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "category", Value: "Pizza"},
			{Key: "name", Value: "Margherita"},
			{Key: "price", Value: 12.0},
		}))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/menu/"+id.Hex(), nil),
			map[string]string{"id": id.Hex()})
		rr := httptest.NewRecorder()
		mc.GetMenuItemByID(rr, req)

		require.Equal(mt, http.StatusOK, rr.Code)
		var item models.MenuItem
		require.NoError(mt, json.Unmarshal(rr.Body.Bytes(), &item))
		assert.Equal(mt, id, item.ID)
	})

	mt.Run("get menu item missing is 404", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodPagolDB.menu", mtest.FirstBatch))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/menu/"+id.Hex(), nil),
			map[string]string{"id": id.Hex()})
		rr := httptest.NewRecorder()
		mc.GetMenuItemByID(rr, req)

		assert.Equal(mt, http.StatusNotFound, rr.Code)
	})

	mt.Run("get menu item bad id is 400", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)

		req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/menu/nope", nil),
			map[string]string{"id": "nope"})
		rr := httptest.NewRecorder()
		mc.GetMenuItemByID(rr, req)

		assert.Equal(mt, http.StatusBadRequest, rr.Code)
	})

	mt.Run("create menu item", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body := `{"category":"Pizza","name":"Margherita","image":"m.jpg","price":12,"recipe":"tomato, mozzarella"}`
		req := httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(body))
		rr := httptest.NewRecorder()
		mc.CreateMenuItem(rr, req)

		assert.Equal(mt, http.StatusOK, rr.Code)
	})

	mt.Run("upsert menu item", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		body := `{"category":"Pizza","name":"Margherita","image":"m.jpg","price":13.5,"recipe":"tomato, mozzarella"}`
		req := mux.SetURLVars(httptest.NewRequest(http.MethodPut, "/menu/"+id.Hex(), strings.NewReader(body)),
			map[string]string{"id": id.Hex()})
		rr := httptest.NewRecorder()
		mc.UpsertMenuItem(rr, req)

		assert.Equal(mt, http.StatusOK, rr.Code)
	})

	mt.Run("delete menu item", func(mt *mtest.T) {
		mc := NewMenuController(mt.Client)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/menu/"+id.Hex(), nil),
			map[string]string{"id": id.Hex()})
		rr := httptest.NewRecorder()
		mc.DeleteMenuItem(rr, req)

		assert.Equal(mt, http.StatusOK, rr.Code)
	})
}
