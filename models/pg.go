package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	GenderBoys  = "boys"
	GenderGirls = "girls"
	GenderCoEd  = "co-ed"

	RoomShared = "shared"
	RoomSingle = "single"

	AvailabilityAvailable  = "available"
	AvailabilityOccupied   = "occupied"
	AvailabilityComingSoon = "coming_soon"
)

// Amenities is the closed vocabulary a listing's amenity set must come from.
var Amenities = []string{
	"wifi", "ac", "food", "laundry", "parking", "security",
	"gym", "tv", "furnished", "attached_bathroom", "kitchen",
	"balcony", "garden", "power_backup", "cleaning",
}

type Address struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// GeoPoint is a GeoJSON point, longitude first.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

type Image struct {
	URL      string `json:"url" bson:"url"`
	PublicID string `json:"publicId" bson:"publicId"`
}

type NearbyPlace struct {
	Name     string `json:"name" bson:"name"`
	Distance string `json:"distance" bson:"distance"`
	Type     string `json:"type" bson:"type"`
}

type Rating struct {
	Average float64 `json:"average" bson:"average"`
	Count   int     `json:"count" bson:"count"`
}

type Inquiry struct {
	User          primitive.ObjectID `json:"user" bson:"user"`
	Message       string             `json:"message" bson:"message"`
	ContactNumber string             `json:"contactNumber" bson:"contactNumber"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type PG struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Owner            primitive.ObjectID `json:"owner" bson:"owner"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description" bson:"description"`
	Address          Address            `json:"address" bson:"address"`
	Location         GeoPoint           `json:"location" bson:"location"`
	GenderPreference string             `json:"genderPreference" bson:"genderPreference"`
	RoomType         string             `json:"roomType" bson:"roomType"`
	Rent             float64            `json:"rent" bson:"rent"`
	Deposit          float64            `json:"deposit" bson:"deposit"`
	Amenities        []string           `json:"amenities" bson:"amenities"`
	Images           []Image            `json:"images" bson:"images"`
	ContactNumber    string             `json:"contactNumber" bson:"contactNumber"`
	ContactEmail     string             `json:"contactEmail" bson:"contactEmail"`
	Availability     string             `json:"availability" bson:"availability"`
	Capacity         int                `json:"capacity" bson:"capacity"`
	Occupied         int                `json:"occupied" bson:"occupied"`
	Rules            []string           `json:"rules" bson:"rules"`
	NearbyPlaces     []NearbyPlace      `json:"nearbyPlaces" bson:"nearbyPlaces"`
	Rating           Rating             `json:"rating" bson:"rating"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	Views            int64              `json:"views" bson:"views"`
	Inquiries        []Inquiry          `json:"inquiries" bson:"inquiries"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AvailableRooms is capacity minus occupied, never negative.
func (pg *PG) AvailableRooms() int {
	if pg.Occupied > pg.Capacity {
		return 0
	}
	return pg.Capacity - pg.Occupied
}

// PGWithOwner is a listing joined with the owner's public contact fields and
// the derived room availability.
type PGWithOwner struct {
	PG             `bson:",inline"`
	AvailableRooms int        `json:"availableRooms" bson:"-"`
	OwnerInfo      *OwnerInfo `json:"ownerInfo,omitempty" bson:"ownerInfo,omitempty"`
}

// NewPGWithOwner wraps a listing for a response, computing availability.
func NewPGWithOwner(pg PG) PGWithOwner {
	return PGWithOwner{PG: pg, AvailableRooms: pg.AvailableRooms()}
}

type OwnerInfo struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone string             `json:"phone,omitempty" bson:"phone,omitempty"`
}

type InquiryRequest struct {
	Message       string `json:"message"`
	ContactNumber string `json:"contactNumber"`
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type PGListResponse struct {
	PGs        []PGWithOwner `json:"pgs"`
	Pagination Pagination    `json:"pagination"`
}
