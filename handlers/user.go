package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserController struct {
	userCollection *mongo.Collection
	pgCollection   *mongo.Collection
}

func NewUserController() *UserController {
	return &UserController{
		userCollection: config.GetCollection(config.UserCollectionName()),
		pgCollection:   config.GetCollection(config.PGCollectionName()),
	}
}

// dashboardInquiry is an inquiry annotated with the listing it belongs to.
type dashboardInquiry struct {
	models.Inquiry
	PGID   primitive.ObjectID `json:"pgId"`
	PGName string             `json:"pgName"`
}

func (uc *UserController) Dashboard(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	if userRole == models.RoleOwner {
		return uc.ownerDashboard(c, userID)
	}
	return uc.clientDashboard(c, userID)
}

func (uc *UserController) ownerDashboard(c echo.Context, userID primitive.ObjectID) error {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := uc.pgCollection.Find(context.Background(), bson.M{"owner": userID}, findOpts)
	if err != nil {
		log.Printf("Dashboard listings error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
	}
	defer cursor.Close(context.Background())

	pgs := []models.PG{}
	for cursor.Next(context.Background()) {
		var pg models.PG
		if err := cursor.Decode(&pg); err != nil {
			continue
		}
		pgs = append(pgs, pg)
	}

	totalInquiries := 0
	var totalViews int64
	inquiries := []dashboardInquiry{}
	for _, pg := range pgs {
		totalInquiries += len(pg.Inquiries)
		totalViews += pg.Views
		for _, inquiry := range pg.Inquiries {
			inquiries = append(inquiries, dashboardInquiry{
				Inquiry: inquiry,
				PGID:    pg.ID,
				PGName:  pg.Name,
			})
		}
	}
	sort.Slice(inquiries, func(i, j int) bool {
		return inquiries[i].CreatedAt.After(inquiries[j].CreatedAt)
	})
	if len(inquiries) > 10 {
		inquiries = inquiries[:10]
	}

	recentListings := pgs
	if len(recentListings) > 5 {
		recentListings = recentListings[:5]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"dashboardData": map[string]interface{}{
			"totalListings":   len(pgs),
			"totalInquiries":  totalInquiries,
			"totalViews":      totalViews,
			"recentListings":  recentListings,
			"recentInquiries": inquiries,
		},
	})
}

func (uc *UserController) clientDashboard(c echo.Context, userID primitive.ObjectID) error {
	var user models.User
	err := uc.userCollection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}

	recentIDs := user.Favorites
	if len(recentIDs) > 5 {
		recentIDs = recentIDs[len(recentIDs)-5:]
	}

	recentFavorites := []models.PG{}
	if len(recentIDs) > 0 {
		cursor, err := uc.pgCollection.Find(context.Background(), bson.M{"_id": bson.M{"$in": recentIDs}})
		if err != nil {
			log.Printf("Dashboard favorites error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch dashboard"})
		}
		defer cursor.Close(context.Background())

		for cursor.Next(context.Background()) {
			var pg models.PG
			if err := cursor.Decode(&pg); err != nil {
				continue
			}
			recentFavorites = append(recentFavorites, pg)
		}
		recentFavorites = reorderFavorites(recentIDs, recentFavorites)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"dashboardData": map[string]interface{}{
			"totalFavorites":  len(user.Favorites),
			"recentFavorites": recentFavorites,
		},
	})
}

// reorderFavorites puts listings in reverse order of ids, newest favorite
// first. $in returns documents in arbitrary order, so the stored order has to
// be reapplied.
func reorderFavorites(ids []primitive.ObjectID, pgs []models.PG) []models.PG {
	byID := make(map[primitive.ObjectID]models.PG, len(pgs))
	for _, pg := range pgs {
		byID[pg.ID] = pg
	}

	ordered := make([]models.PG, 0, len(pgs))
	for i := len(ids) - 1; i >= 0; i-- {
		if pg, ok := byID[ids[i]]; ok {
			ordered = append(ordered, pg)
		}
	}
	return ordered
}

func (uc *UserController) UpdateProfileImage(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "No image uploaded"})
	}
	if file.Size > maxImageSize {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Image exceeds 5MB limit"})
	}

	image := models.Image{}
	if utils.ImageStorage.Enabled {
		image, err = uploadOne(c, file)
		if err != nil {
			log.Printf("Profile image upload error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to upload image"})
		}
	} else {
		log.Println("Image storage not configured, skipping profile image upload")
	}

	_, err = uc.userCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"profileImage": image.URL, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Profile image update error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update profile image"})
	}

	var user models.User
	if err := uc.userCollection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}
	user.Password = ""

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile image updated successfully",
		"user":    user,
	})
}

// DeleteAccount removes the user. Owners first cascade-delete their listings,
// cleaning up stored images best-effort.
func (uc *UserController) DeleteAccount(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	if userRole == models.RoleOwner {
		cursor, err := uc.pgCollection.Find(context.Background(), bson.M{"owner": userID})
		if err != nil {
			log.Printf("Account deletion listings error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete account"})
		}
		for cursor.Next(context.Background()) {
			var pg models.PG
			if err := cursor.Decode(&pg); err != nil {
				continue
			}
			utils.ImageStorage.DeleteImages(context.Background(), pg.Images)
		}
		cursor.Close(context.Background())

		if _, err := uc.pgCollection.DeleteMany(context.Background(), bson.M{"owner": userID}); err != nil {
			log.Printf("Account deletion listings error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete account"})
		}
	}

	if _, err := uc.userCollection.DeleteOne(context.Background(), bson.M{"_id": userID}); err != nil {
		log.Printf("Account deletion error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete account"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Account deleted successfully",
	})
}
