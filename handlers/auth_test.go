package handlers

import (
	"net/http"
	"testing"

	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestLoginBlockedUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("blocked account refused before password check", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Blocked User"},
			{Key: "email", Value: "blocked@example.com"},
			{Key: "password", Value: "$2a$10$notcheckedforblockedusers"},
			{Key: "role", Value: models.RoleClient},
			{Key: "isBlocked", Value: true},
		}))

		ac := &AuthController{collection: mt.Coll}
		c, rec := newTestContext(mt.T, http.MethodPost, "/api/auth/login",
			`{"email":"blocked@example.com","password":"whatever123"}`)

		err := ac.Login(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusForbidden, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "blocked")
	})
}

func TestLoginSuccess(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid credentials return a token", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")

		hash, err := utils.HashPassword("secret123")
		require.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Asha"},
			{Key: "email", Value: "asha@example.com"},
			{Key: "password", Value: hash},
			{Key: "role", Value: models.RoleClient},
			{Key: "isBlocked", Value: false},
		}))

		ac := &AuthController{collection: mt.Coll}
		c, rec := newTestContext(mt.T, http.MethodPost, "/api/auth/login",
			`{"email":"asha@example.com","password":"secret123"}`)

		err = ac.Login(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), `"token"`)
		assert.NotContains(mt.T, rec.Body.String(), hash)
	})
}

func TestLoginWrongPassword(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wrong password is unauthorized", func(mt *mtest.T) {
		hash, err := utils.HashPassword("secret123")
		require.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "asha@example.com"},
			{Key: "password", Value: hash},
			{Key: "role", Value: models.RoleClient},
		}))

		ac := &AuthController{collection: mt.Coll}
		c, rec := newTestContext(mt.T, http.MethodPost, "/api/auth/login",
			`{"email":"asha@example.com","password":"not-the-password"}`)

		err = ac.Login(c)
		require.NoError(mt.T, err)
		assert.Equal(mt.T, http.StatusUnauthorized, rec.Code)
	})
}
