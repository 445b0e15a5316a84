package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthController struct {
	collection *mongo.Collection
}

func NewAuthController() *AuthController {
	return &AuthController{
		collection: config.GetCollection(config.UserCollectionName()),
	}
}

func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	count, err := ac.collection.CountDocuments(context.Background(), bson.M{"email": req.Email})
	if err != nil {
		log.Printf("Register lookup error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, map[string]string{"error": "User with this email already exists"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Password hash error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      role,
		Phone:     req.Phone,
		City:      req.City,
		Favorites: []primitive.ObjectID{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := ac.collection.InsertOne(context.Background(), user); err != nil {
		log.Printf("Register insert error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""

	return c.JSON(http.StatusCreated, models.LoginResponse{Token: token, User: user})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var user models.User
	err := ac.collection.FindOne(context.Background(), bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	// Blocked accounts get an explicit refusal, not invalid-credentials.
	if user.IsBlocked {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "Your account has been blocked. Contact admin.",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

func (ac *AuthController) GetProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var user models.User
	err := ac.collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

func (ac *AuthController) UpdateProfile(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.Email != "" {
		updateDoc["email"] = req.Email
	}
	if req.Phone != "" {
		updateDoc["phone"] = req.Phone
	}
	if req.City != "" {
		updateDoc["city"] = req.City
	}
	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("Password hash error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
		}
		updateDoc["password"] = hashedPassword
	}

	_, err := ac.collection.UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$set": updateDoc},
	)
	if err != nil {
		log.Printf("Profile update error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	var user models.User
	if err := ac.collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated user"})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Token generation error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	user.Password = ""

	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}
