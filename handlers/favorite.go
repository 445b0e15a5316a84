package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteController struct {
	userCollection *mongo.Collection
	pgCollection   *mongo.Collection
	pgController   *PGController
}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{
		userCollection: config.GetCollection(config.UserCollectionName()),
		pgCollection:   config.GetCollection(config.PGCollectionName()),
		pgController:   NewPGController(),
	}
}

func (fc *FavoriteController) AddFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	pgID, err := primitive.ObjectIDFromHex(c.Param("pgId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	count, err := fc.pgCollection.CountDocuments(context.Background(), bson.M{"_id": pgID})
	if err != nil {
		log.Printf("Favorite listing lookup error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add favorite"})
	}
	if count == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "PG listing not found"})
	}

	// $addToSet keeps the add atomic; ModifiedCount == 0 means the listing
	// was already favorited.
	result, err := fc.userCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favorites": pgID}},
	)
	if err != nil {
		log.Printf("Add favorite error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to add favorite"})
	}
	if result.ModifiedCount == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "PG already in favorites"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Added to favorites successfully"})
}

// RemoveFavorite is idempotent: pulling an id that is not present is a no-op
// that still succeeds.
func (fc *FavoriteController) RemoveFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	pgID, err := primitive.ObjectIDFromHex(c.Param("pgId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	_, err = fc.userCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favorites": pgID}},
	)
	if err != nil {
		log.Printf("Remove favorite error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove favorite"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Removed from favorites successfully"})
}

func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var user models.User
	err := fc.userCollection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	favorites := []models.PGWithOwner{}
	if len(user.Favorites) > 0 {
		cursor, err := fc.pgCollection.Find(context.Background(), bson.M{"_id": bson.M{"$in": user.Favorites}})
		if err != nil {
			log.Printf("Favorites fetch error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
		}
		defer cursor.Close(context.Background())

		for cursor.Next(context.Background()) {
			var pg models.PG
			if err := cursor.Decode(&pg); err != nil {
				continue
			}
			favorites = append(favorites, models.NewPGWithOwner(pg))
		}
	}

	fc.pgController.attachOwners(favorites, false)

	return c.JSON(http.StatusOK, map[string]interface{}{"favorites": favorites})
}
