package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminController struct {
	pgCollection      *mongo.Collection
	userCollection    *mongo.Collection
	messageCollection *mongo.Collection
	pgController      *PGController
}

func NewAdminController() *AdminController {
	return &AdminController{
		pgCollection:      config.GetCollection(config.PGCollectionName()),
		userCollection:    config.GetCollection(config.UserCollectionName()),
		messageCollection: config.GetCollection(config.MessageCollectionName()),
		pgController:      NewPGController(),
	}
}

// Dashboard returns the admin aggregates: independent point queries, not a
// transactional snapshot.
func (ac *AdminController) Dashboard(c echo.Context) error {
	ctx := context.Background()

	totalPGs, err := ac.pgCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Admin dashboard error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
	}
	totalUsers, err := ac.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Admin dashboard error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
	}
	totalMessages, err := ac.messageCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Printf("Admin dashboard error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "views", Value: -1}}).SetLimit(5)
	cursor, err := ac.pgCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Printf("Admin dashboard error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
	}
	defer cursor.Close(ctx)

	topPGs := []models.PG{}
	for cursor.Next(ctx) {
		var pg models.PG
		if err := cursor.Decode(&pg); err != nil {
			continue
		}
		topPGs = append(topPGs, pg)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"totalPGs":      totalPGs,
		"totalUsers":    totalUsers,
		"totalMessages": totalMessages,
		"topPGs":        topPGs,
	})
}

func (ac *AdminController) GetAllPGs(c echo.Context) error {
	cursor, err := ac.pgCollection.Find(context.Background(), bson.M{})
	if err != nil {
		log.Printf("Admin listings error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
	}
	defer cursor.Close(context.Background())

	pgs := []models.PGWithOwner{}
	for cursor.Next(context.Background()) {
		var pg models.PG
		if err := cursor.Decode(&pg); err != nil {
			continue
		}
		pgs = append(pgs, models.NewPGWithOwner(pg))
	}

	ac.pgController.attachOwners(pgs, true)

	return c.JSON(http.StatusOK, pgs)
}

func (ac *AdminController) DeletePG(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	var pg models.PG
	err = ac.pgCollection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&pg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "PG not found"})
		}
		log.Printf("Admin delete listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete listing"})
	}

	utils.ImageStorage.DeleteImages(context.Background(), pg.Images)

	if _, err := ac.pgCollection.DeleteOne(context.Background(), bson.M{"_id": id}); err != nil {
		log.Printf("Admin delete listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete listing"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "PG deleted successfully"})
}

func (ac *AdminController) GetAllUsers(c echo.Context) error {
	cursor, err := ac.userCollection.Find(context.Background(), bson.M{})
	if err != nil {
		log.Printf("Admin users error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	defer cursor.Close(context.Background())

	users := []models.User{}
	for cursor.Next(context.Background()) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			continue
		}
		user.Password = ""
		users = append(users, user)
	}

	return c.JSON(http.StatusOK, users)
}

func (ac *AdminController) ToggleBlockUser(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	var user models.User
	err = ac.userCollection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		log.Printf("Block user error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	blocked := !user.IsBlocked
	_, err = ac.userCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isBlocked": blocked}},
	)
	if err != nil {
		log.Printf("Block user error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	message := "User has been unblocked"
	if blocked {
		message = "User has been blocked"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

func (ac *AdminController) GetAllMessages(c echo.Context) error {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ac.messageCollection.Find(context.Background(), bson.M{}, findOpts)
	if err != nil {
		log.Printf("Admin messages error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	defer cursor.Close(context.Background())

	messages := []models.Message{}
	for cursor.Next(context.Background()) {
		var message models.Message
		if err := cursor.Decode(&message); err != nil {
			continue
		}
		messages = append(messages, message)
	}

	return c.JSON(http.StatusOK, messages)
}

func (ac *AdminController) DeleteMessage(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid message ID"})
	}

	result, err := ac.messageCollection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		log.Printf("Delete message error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete message"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Message not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
