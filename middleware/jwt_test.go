package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func callWithRole(t *testing.T, role string, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_role", role)

	handler := RequireRoles(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRolesAllows(t *testing.T) {
	rec := callWithRole(t, models.RoleOwner, models.RoleOwner)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesDenies(t *testing.T) {
	rec := callWithRole(t, models.RoleClient, models.RoleOwner)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = callWithRole(t, "", models.RoleClient)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesAdminTier(t *testing.T) {
	// Admin and super-admin are one tier: listing either admits both.
	rec := callWithRole(t, models.RoleSuperAdmin, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callWithRole(t, models.RoleAdmin, models.RoleSuperAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesMultiple(t *testing.T) {
	rec := callWithRole(t, models.RoleAdmin, models.RoleOwner, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = callWithRole(t, models.RoleClient, models.RoleOwner, models.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddlewareBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func callWithToken(mt *mtest.T, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	handler := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(mt.T, handler(c))
	return rec
}

func TestJWTMiddlewareBlockedUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("valid token of a blocked user is rejected", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		prev := config.DB
		config.DB = mt.DB
		defer func() { config.DB = prev }()

		userID := primitive.NewObjectID()
		token, err := utils.GenerateJWT(userID, "blocked@example.com", models.RoleClient)
		require.NoError(mt.T, err)

		// The account was blocked after the token was issued.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "email", Value: "blocked@example.com"},
			{Key: "role", Value: models.RoleClient},
			{Key: "isBlocked", Value: true},
		}))

		rec := callWithToken(mt, token)
		assert.Equal(mt.T, http.StatusForbidden, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "blocked")
	})

	mt.Run("active user passes through", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		prev := config.DB
		config.DB = mt.DB
		defer func() { config.DB = prev }()

		userID := primitive.NewObjectID()
		token, err := utils.GenerateJWT(userID, "asha@example.com", models.RoleClient)
		require.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: userID},
			{Key: "email", Value: "asha@example.com"},
			{Key: "role", Value: models.RoleClient},
			{Key: "isBlocked", Value: false},
		}))

		rec := callWithToken(mt, token)
		assert.Equal(mt.T, http.StatusOK, rec.Code)
	})

	mt.Run("token of a deleted user is rejected", func(mt *mtest.T) {
		mt.Setenv("JWT_SECRET", "test-secret")
		prev := config.DB
		config.DB = mt.DB
		defer func() { config.DB = prev }()

		token, err := utils.GenerateJWT(primitive.NewObjectID(), "gone@example.com", models.RoleClient)
		require.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "pgfinder.users", mtest.FirstBatch))

		rec := callWithToken(mt, token)
		assert.Equal(mt.T, http.StatusUnauthorized, rec.Code)
	})
}
