package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newFavoriteTestContext(mt *mtest.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(mt.T, method, target, "")
	c.Set("user_id", primitive.NewObjectID())
	return c, rec
}

func TestAddFavoriteStoresOnce(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first add succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "pgfinder.pgs", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
		)

		fc := &FavoriteController{
			userCollection: mt.DB.Collection("users"),
			pgCollection:   mt.Coll,
		}
		pgID := primitive.NewObjectID()
		c, rec := newFavoriteTestContext(mt, http.MethodPost, "/api/favorites/"+pgID.Hex())
		c.SetParamNames("pgId")
		c.SetParamValues(pgID.Hex())

		err := fc.AddFavorite(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Added to favorites")
	})

	mt.Run("second add of the same listing is rejected", func(mt *mtest.T) {
		// $addToSet leaves the document untouched, so nModified is zero.
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "pgfinder.pgs", mtest.FirstBatch, bson.D{{Key: "n", Value: 1}}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
		)

		fc := &FavoriteController{
			userCollection: mt.DB.Collection("users"),
			pgCollection:   mt.Coll,
		}
		pgID := primitive.NewObjectID()
		c, rec := newFavoriteTestContext(mt, http.MethodPost, "/api/favorites/"+pgID.Hex())
		c.SetParamNames("pgId")
		c.SetParamValues(pgID.Hex())

		err := fc.AddFavorite(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusBadRequest, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "already in favorites")
	})

	mt.Run("favoriting a missing listing is not found", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "pgfinder.pgs", mtest.FirstBatch),
		)

		fc := &FavoriteController{
			userCollection: mt.DB.Collection("users"),
			pgCollection:   mt.Coll,
		}
		pgID := primitive.NewObjectID()
		c, rec := newFavoriteTestContext(mt, http.MethodPost, "/api/favorites/"+pgID.Hex())
		c.SetParamNames("pgId")
		c.SetParamValues(pgID.Hex())

		err := fc.AddFavorite(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusNotFound, rec.Code)
	})
}

func TestRemoveFavoriteIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pulling an absent id still succeeds", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 0}),
		)

		fc := &FavoriteController{
			userCollection: mt.Coll,
			pgCollection:   mt.DB.Collection("pgs"),
		}
		pgID := primitive.NewObjectID()
		c, rec := newFavoriteTestContext(mt, http.MethodDelete, "/api/favorites/"+pgID.Hex())
		c.SetParamNames("pgId")
		c.SetParamValues(pgID.Hex())

		err := fc.RemoveFavorite(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Removed from favorites")
	})
}
