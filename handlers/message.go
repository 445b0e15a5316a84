package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rehanpathan0801/PGFinder/config"
	"github.com/rehanpathan0801/PGFinder/models"
	"github.com/rehanpathan0801/PGFinder/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MessageController struct {
	collection *mongo.Collection
}

func NewMessageController() *MessageController {
	return &MessageController{
		collection: config.GetCollection(config.MessageCollectionName()),
	}
}

// SubmitMessage persists a contact-form submission and then notifies the
// admin address by mail. The mail is best-effort: failures are logged and
// never surfaced to the client.
func (mc *MessageController) SubmitMessage(c echo.Context) error {
	var req models.MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	message := models.Message{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if _, err := mc.collection.InsertOne(context.Background(), message); err != nil {
		log.Printf("Save message error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Failed to send message",
		})
	}

	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" && utils.Mailer.Enabled {
		body := fmt.Sprintf(
			"New contact form submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
			req.Name, req.Email, req.Subject, req.Message,
		)
		if err := utils.Mailer.Send(adminEmail, "New message from PGFinder website", body); err != nil {
			log.Printf("Notification mail error: %v", err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Message sent successfully",
	})
}
