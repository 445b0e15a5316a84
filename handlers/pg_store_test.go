package handlers

import (
	"net/http"
	"testing"

	"github.com/rehanpathan0801/PGFinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSubmitInquiryAppends(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid inquiry is pushed onto the listing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		pc := &PGController{collection: mt.Coll}
		pgID := primitive.NewObjectID()
		c, rec := newTestContext(mt.T, http.MethodPost, "/api/pg/"+pgID.Hex()+"/inquiry",
			`{"message":"Is a single room available from next month?","contactNumber":"9876543210"}`)
		c.SetParamNames("id")
		c.SetParamValues(pgID.Hex())
		c.Set("user_id", primitive.NewObjectID())

		err := pc.SubmitInquiry(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Inquiry sent successfully")
	})

	mt.Run("inquiry against a missing listing is not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		pc := &PGController{collection: mt.Coll}
		pgID := primitive.NewObjectID()
		c, rec := newTestContext(mt.T, http.MethodPost, "/api/pg/"+pgID.Hex()+"/inquiry",
			`{"message":"Is a single room available from next month?","contactNumber":"9876543210"}`)
		c.SetParamNames("id")
		c.SetParamValues(pgID.Hex())
		c.Set("user_id", primitive.NewObjectID())

		err := pc.SubmitInquiry(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusNotFound, rec.Code)
	})
}

func TestGetPGIncludesAvailability(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("listing response carries availableRooms and owner info", func(mt *mtest.T) {
		pgID := primitive.NewObjectID()
		ownerID := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
				{Key: "_id", Value: pgID},
				{Key: "owner", Value: ownerID},
				{Key: "name", Value: "Lakeview PG"},
				{Key: "capacity", Value: 2},
				{Key: "occupied", Value: 1},
				{Key: "isActive", Value: true},
				{Key: "views", Value: int64(8)},
			}}),
			mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: ownerID},
				{Key: "name", Value: "Ravi"},
				{Key: "email", Value: "ravi@example.com"},
				{Key: "phone", Value: "9876543210"},
				{Key: "role", Value: models.RoleOwner},
			}),
		)

		pc := &PGController{collection: mt.Coll, userCollection: mt.DB.Collection("users")}
		c, rec := newTestContext(mt.T, http.MethodGet, "/api/pg/"+pgID.Hex(), "")
		c.SetParamNames("id")
		c.SetParamValues(pgID.Hex())

		err := pc.GetPG(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), `"availableRooms":1`)
		assert.Contains(mt.T, rec.Body.String(), `"ownerInfo"`)
		assert.Contains(mt.T, rec.Body.String(), "Ravi")
	})
}
