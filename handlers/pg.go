package handlers

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
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

const (
	defaultPageSize = 12
	maxPageSize     = 50
	maxImageCount   = 10
	maxImageSize    = 5 * 1024 * 1024

	searchCacheTTL = 60 * time.Second
)

type PGController struct {
	collection     *mongo.Collection
	userCollection *mongo.Collection
}

func NewPGController() *PGController {
	return &PGController{
		collection:     config.GetCollection(config.PGCollectionName()),
		userCollection: config.GetCollection(config.UserCollectionName()),
	}
}

// listingQuery is the validated search request. Absent filters stay at their
// zero values and are omitted from the generated filter document.
type listingQuery struct {
	City             string
	GenderPreference string
	RoomType         string
	MinRent          *float64
	MaxRent          *float64
	Amenities        []string
	Search           string
	Page             int
	Limit            int
}

// parseListingQuery validates the raw query parameters once at the boundary
// and returns field-level errors for anything malformed.
func parseListingQuery(c echo.Context) (listingQuery, map[string]string) {
	q := listingQuery{Page: 1, Limit: defaultPageSize}
	errs := map[string]string{}

	q.City = strings.TrimSpace(c.QueryParam("city"))
	q.Search = strings.TrimSpace(c.QueryParam("search"))

	if gender := c.QueryParam("genderPreference"); gender != "" {
		if !utils.IsValidGenderPreference(gender) {
			errs["genderPreference"] = "Invalid gender preference"
		}
		q.GenderPreference = gender
	}
	if roomType := c.QueryParam("roomType"); roomType != "" {
		if !utils.IsValidRoomType(roomType) {
			errs["roomType"] = "Invalid room type"
		}
		q.RoomType = roomType
	}
	if minRent := c.QueryParam("minRent"); minRent != "" {
		if value, err := strconv.ParseFloat(minRent, 64); err == nil {
			q.MinRent = &value
		} else {
			errs["minRent"] = "minRent must be a number"
		}
	}
	if maxRent := c.QueryParam("maxRent"); maxRent != "" {
		if value, err := strconv.ParseFloat(maxRent, 64); err == nil {
			q.MaxRent = &value
		} else {
			errs["maxRent"] = "maxRent must be a number"
		}
	}
	if amenities := c.QueryParam("amenities"); amenities != "" {
		q.Amenities = strings.Split(amenities, ",")
	}
	if page := c.QueryParam("page"); page != "" {
		if value, err := strconv.Atoi(page); err == nil && value >= 1 {
			q.Page = value
		} else {
			errs["page"] = "page must be a positive integer"
		}
	}
	if limit := c.QueryParam("limit"); limit != "" {
		if value, err := strconv.Atoi(limit); err == nil && value >= 1 && value <= maxPageSize {
			q.Limit = value
		} else {
			errs["limit"] = "limit must be an integer between 1 and 50"
		}
	}

	if len(errs) > 0 {
		return q, errs
	}
	return q, nil
}

// Filter translates the query into a document filter. isActive is always
// forced true; only listed filters are added.
func (q listingQuery) Filter() bson.M {
	filter := bson.M{"isActive": true}

	if q.City != "" {
		filter["address.city"] = bson.M{"$regex": q.City, "$options": "i"}
	}
	if q.GenderPreference != "" {
		filter["genderPreference"] = q.GenderPreference
	}
	if q.RoomType != "" {
		filter["roomType"] = q.RoomType
	}
	if q.MinRent != nil || q.MaxRent != nil {
		rent := bson.M{}
		if q.MinRent != nil {
			rent["$gte"] = *q.MinRent
		}
		if q.MaxRent != nil {
			rent["$lte"] = *q.MaxRent
		}
		filter["rent"] = rent
	}
	if len(q.Amenities) > 0 {
		// Superset match: every requested amenity must be present.
		filter["amenities"] = bson.M{"$all": q.Amenities}
	}
	if q.Search != "" {
		filter["$text"] = bson.M{"$search": q.Search}
	}

	return filter
}

func (q listingQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

func paginationMeta(total int64, page, limit int) models.Pagination {
	return models.Pagination{
		CurrentPage:  page,
		TotalPages:   int(math.Ceil(float64(total) / float64(limit))),
		TotalItems:   total,
		ItemsPerPage: limit,
	}
}

func (pc *PGController) ListPGs(c echo.Context) error {
	q, fieldErrs := parseListingQuery(c)
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
	}

	params := map[string]string{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	cacheKey := utils.SearchCacheKey(params)

	var cached models.PGListResponse
	if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	filter := q.Filter()

	total, err := pc.collection.CountDocuments(context.Background(), filter)
	if err != nil {
		log.Printf("Count listings error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(q.Skip())).
		SetLimit(int64(q.Limit))

	cursor, err := pc.collection.Find(context.Background(), filter, findOpts)
	if err != nil {
		log.Printf("Find listings error: %v", err)
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

	pc.attachOwners(pgs, false)

	response := models.PGListResponse{
		PGs:        pgs,
		Pagination: paginationMeta(total, q.Page, q.Limit),
	}

	if err := utils.SetCached(context.Background(), cacheKey, response, searchCacheTTL); err != nil {
		log.Printf("Cache set error: %v", err)
	}

	return c.JSON(http.StatusOK, response)
}

// attachOwners expands listing owner references into public contact fields.
// withEmail controls whether the owner's email is included.
func (pc *PGController) attachOwners(pgs []models.PGWithOwner, withEmail bool) {
	if len(pgs) == 0 {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(pgs))
	seen := map[primitive.ObjectID]bool{}
	for _, pg := range pgs {
		if !seen[pg.Owner] {
			seen[pg.Owner] = true
			ids = append(ids, pg.Owner)
		}
	}

	cursor, err := pc.userCollection.Find(context.Background(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("Owner lookup error: %v", err)
		return
	}
	defer cursor.Close(context.Background())

	owners := map[primitive.ObjectID]*models.OwnerInfo{}
	for cursor.Next(context.Background()) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			continue
		}
		info := &models.OwnerInfo{ID: user.ID, Name: user.Name, Phone: user.Phone}
		if withEmail {
			info.Email = user.Email
		}
		owners[user.ID] = info
	}

	for i := range pgs {
		pgs[i].OwnerInfo = owners[pgs[i].Owner]
	}
}

func (pc *PGController) GetPG(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	// Every read counts as a view; the increment rides on the fetch.
	var pg models.PG
	err = pc.collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&pg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "PG listing not found"})
		}
		log.Printf("Get listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	result := []models.PGWithOwner{models.NewPGWithOwner(pg)}
	pc.attachOwners(result, true)

	return c.JSON(http.StatusOK, map[string]interface{}{"pg": result[0]})
}

// pgForm carries the multipart fields of a create/update request. Structured
// fields arrive as JSON-encoded strings from the client's form.
type pgForm struct {
	Name             string
	Description      string
	Address          models.Address
	GenderPreference string
	RoomType         string
	Rent             float64
	Deposit          float64
	Amenities        []string
	ContactNumber    string
	ContactEmail     string
	Availability     string
	Capacity         int
	Occupied         int
	Rules            []string
	NearbyPlaces     []models.NearbyPlace
}

func parsePGForm(c echo.Context, partial bool) (pgForm, map[string]string) {
	var form pgForm
	errs := map[string]string{}

	form.Name = strings.TrimSpace(c.FormValue("name"))
	form.Description = c.FormValue("description")
	form.GenderPreference = c.FormValue("genderPreference")
	form.RoomType = c.FormValue("roomType")
	form.ContactNumber = c.FormValue("contactNumber")
	form.ContactEmail = c.FormValue("contactEmail")
	form.Availability = c.FormValue("availability")

	if !partial || form.Name != "" {
		if len(form.Name) < 2 {
			errs["name"] = "PG name must be at least 2 characters long"
		}
	}
	if !partial || form.Description != "" {
		if len(form.Description) < 10 {
			errs["description"] = "Description must be at least 10 characters long"
		}
	}
	if !partial || form.GenderPreference != "" {
		if !utils.IsValidGenderPreference(form.GenderPreference) {
			errs["genderPreference"] = "Invalid gender preference"
		}
	}
	if !partial || form.RoomType != "" {
		if !utils.IsValidRoomType(form.RoomType) {
			errs["roomType"] = "Invalid room type"
		}
	}
	if form.Availability != "" && !utils.IsValidAvailability(form.Availability) {
		errs["availability"] = "Invalid availability"
	}
	if !partial {
		if form.ContactNumber == "" {
			errs["contactNumber"] = "Contact number is required"
		}
		if form.ContactEmail == "" || !strings.Contains(form.ContactEmail, "@") {
			errs["contactEmail"] = "Valid email is required"
		}
	}

	if address := c.FormValue("address"); address != "" {
		if err := json.Unmarshal([]byte(address), &form.Address); err != nil {
			errs["address"] = "Invalid address format"
		} else if form.Address.Street == "" || form.Address.City == "" ||
			form.Address.State == "" || form.Address.Pincode == "" {
			errs["address"] = "All address fields are required"
		}
	} else if !partial {
		errs["address"] = "Address is required"
	}

	if amenities := c.FormValue("amenities"); amenities != "" {
		if err := json.Unmarshal([]byte(amenities), &form.Amenities); err != nil {
			errs["amenities"] = "Invalid amenities format"
		} else if unknown, ok := utils.ValidateAmenities(form.Amenities); !ok {
			errs["amenities"] = "Unknown amenity: " + unknown
		}
	}
	if rules := c.FormValue("rules"); rules != "" {
		if err := json.Unmarshal([]byte(rules), &form.Rules); err != nil {
			errs["rules"] = "Invalid rules format"
		}
	}
	if nearbyPlaces := c.FormValue("nearbyPlaces"); nearbyPlaces != "" {
		if err := json.Unmarshal([]byte(nearbyPlaces), &form.NearbyPlaces); err != nil {
			errs["nearbyPlaces"] = "Invalid nearby places format"
		}
	}

	if rent := c.FormValue("rent"); rent != "" {
		if value, err := strconv.ParseFloat(rent, 64); err == nil {
			form.Rent = value
		} else {
			errs["rent"] = "Rent must be a number"
		}
	} else if !partial {
		errs["rent"] = "Rent is required"
	}
	if deposit := c.FormValue("deposit"); deposit != "" {
		if value, err := strconv.ParseFloat(deposit, 64); err == nil {
			form.Deposit = value
		} else {
			errs["deposit"] = "Deposit must be a number"
		}
	}
	if capacity := c.FormValue("capacity"); capacity != "" {
		if value, err := strconv.Atoi(capacity); err == nil && value >= 1 {
			form.Capacity = value
		} else {
			errs["capacity"] = "Capacity must be at least 1"
		}
	} else if !partial {
		errs["capacity"] = "Capacity is required"
	}
	if occupied := c.FormValue("occupied"); occupied != "" {
		if value, err := strconv.Atoi(occupied); err == nil && value >= 0 {
			form.Occupied = value
		} else {
			errs["occupied"] = "Occupied must be a non-negative integer"
		}
	}
	if _, ok := errs["capacity"]; !ok && !partial && form.Occupied > form.Capacity {
		errs["occupied"] = "Occupied cannot exceed capacity"
	}

	if len(errs) > 0 {
		return form, errs
	}
	return form, nil
}

// uploadImages forwards form files to the image store. Missing storage
// credentials or upload failures degrade to no images rather than failing
// the request.
func uploadImages(c echo.Context) []models.Image {
	images := []models.Image{}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return images
	}

	files := form.File["images"]
	if len(files) > maxImageCount {
		files = files[:maxImageCount]
	}

	if !utils.ImageStorage.Enabled && len(files) > 0 {
		log.Println("Image storage not configured, skipping image upload")
		return images
	}

	for _, file := range files {
		if file.Size > maxImageSize {
			log.Printf("Skipping image %s: exceeds 5MB limit", file.Filename)
			continue
		}
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			log.Printf("Skipping file %s: not an image", file.Filename)
			continue
		}
		image, err := uploadOne(c, file)
		if err != nil {
			log.Printf("Image upload error for %s: %v", file.Filename, err)
			continue
		}
		images = append(images, image)
	}

	return images
}

func uploadOne(c echo.Context, file *multipart.FileHeader) (models.Image, error) {
	src, err := file.Open()
	if err != nil {
		return models.Image{}, err
	}
	defer src.Close()
	return utils.ImageStorage.Upload(c.Request().Context(), src)
}

func (pc *PGController) CreatePG(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	form, fieldErrs := parsePGForm(c, false)
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
	}

	pg := models.PG{
		ID:               primitive.NewObjectID(),
		Owner:            userID,
		Name:             form.Name,
		Description:      form.Description,
		Address:          form.Address,
		Location:         models.GeoPoint{Type: "Point", Coordinates: []float64{0, 0}},
		GenderPreference: form.GenderPreference,
		RoomType:         form.RoomType,
		Rent:             form.Rent,
		Deposit:          form.Deposit,
		Amenities:        form.Amenities,
		Images:           uploadImages(c),
		ContactNumber:    form.ContactNumber,
		ContactEmail:     form.ContactEmail,
		Availability:     form.Availability,
		Capacity:         form.Capacity,
		Occupied:         form.Occupied,
		Rules:            form.Rules,
		NearbyPlaces:     form.NearbyPlaces,
		IsActive:         true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if pg.Availability == "" {
		pg.Availability = models.AvailabilityAvailable
	}
	if pg.Amenities == nil {
		pg.Amenities = []string{}
	}
	if pg.Rules == nil {
		pg.Rules = []string{}
	}
	if pg.Inquiries == nil {
		pg.Inquiries = []models.Inquiry{}
	}

	if coords := c.FormValue("coordinates"); coords != "" {
		var point []float64
		if err := json.Unmarshal([]byte(coords), &point); err == nil && len(point) == 2 {
			pg.Location.Coordinates = point
		}
	}

	if _, err := pc.collection.InsertOne(context.Background(), pg); err != nil {
		log.Printf("Create listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create listing"})
	}

	result := []models.PGWithOwner{models.NewPGWithOwner(pg)}
	pc.attachOwners(result, true)

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "PG listing created successfully",
		"pg":      result[0],
	})
}

// canMutate reports whether the requester owns the listing or holds an admin
// role.
func canMutate(pg models.PG, userID primitive.ObjectID, role string) bool {
	return pg.Owner == userID || models.IsAdminRole(role)
}

func (pc *PGController) UpdatePG(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	var pg models.PG
	err = pc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&pg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "PG listing not found"})
		}
		log.Printf("Fetch listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	if !canMutate(pg, userID, userRole) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Not authorized to update this listing"})
	}

	form, fieldErrs := parsePGForm(c, true)
	if fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if form.Name != "" {
		updateDoc["name"] = form.Name
	}
	if form.Description != "" {
		updateDoc["description"] = form.Description
	}
	if c.FormValue("address") != "" {
		updateDoc["address"] = form.Address
	}
	if form.GenderPreference != "" {
		updateDoc["genderPreference"] = form.GenderPreference
	}
	if form.RoomType != "" {
		updateDoc["roomType"] = form.RoomType
	}
	if c.FormValue("rent") != "" {
		updateDoc["rent"] = form.Rent
	}
	if c.FormValue("deposit") != "" {
		updateDoc["deposit"] = form.Deposit
	}
	if c.FormValue("amenities") != "" {
		updateDoc["amenities"] = form.Amenities
	}
	if form.ContactNumber != "" {
		updateDoc["contactNumber"] = form.ContactNumber
	}
	if form.ContactEmail != "" {
		updateDoc["contactEmail"] = form.ContactEmail
	}
	if form.Availability != "" {
		updateDoc["availability"] = form.Availability
	}
	if c.FormValue("rules") != "" {
		updateDoc["rules"] = form.Rules
	}
	if c.FormValue("nearbyPlaces") != "" {
		updateDoc["nearbyPlaces"] = form.NearbyPlaces
	}
	if c.FormValue("isActive") != "" {
		updateDoc["isActive"] = c.FormValue("isActive") == "true"
	}

	capacity := pg.Capacity
	occupied := pg.Occupied
	if c.FormValue("capacity") != "" {
		capacity = form.Capacity
		updateDoc["capacity"] = form.Capacity
	}
	if c.FormValue("occupied") != "" {
		occupied = form.Occupied
		updateDoc["occupied"] = form.Occupied
	}
	if occupied > capacity {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": map[string]string{"occupied": "Occupied cannot exceed capacity"},
		})
	}

	if images := uploadImages(c); len(images) > 0 {
		// New images replace the old set; old assets are cleaned up
		// best-effort.
		utils.ImageStorage.DeleteImages(context.Background(), pg.Images)
		updateDoc["images"] = images
	}

	_, err = pc.collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		log.Printf("Update listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update listing"})
	}

	var updated models.PG
	if err := pc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&updated); err != nil {
		log.Printf("Fetch updated listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated listing"})
	}

	result := []models.PGWithOwner{models.NewPGWithOwner(updated)}
	pc.attachOwners(result, true)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "PG listing updated successfully",
		"pg":      result[0],
	})
}

func (pc *PGController) DeletePG(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	var pg models.PG
	err = pc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&pg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "PG listing not found"})
		}
		log.Printf("Fetch listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	if !canMutate(pg, userID, userRole) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Not authorized to delete this listing"})
	}

	utils.ImageStorage.DeleteImages(context.Background(), pg.Images)

	if _, err := pc.collection.DeleteOne(context.Background(), bson.M{"_id": id}); err != nil {
		log.Printf("Delete listing error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete listing"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "PG listing deleted successfully"})
}

func (pc *PGController) MyListings(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := pc.collection.Find(context.Background(), bson.M{"owner": userID}, findOpts)
	if err != nil {
		log.Printf("Owner listings error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
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

	return c.JSON(http.StatusOK, map[string]interface{}{"pgs": pgs})
}

func (pc *PGController) SubmitInquiry(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.InquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if fieldErrs := utils.ValidateInquiry(req.Message, req.ContactNumber); fieldErrs != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{"errors": fieldErrs})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid listing ID"})
	}

	inquiry := models.Inquiry{
		User:          userID,
		Message:       strings.TrimSpace(req.Message),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		CreatedAt:     time.Now(),
	}

	// Single atomic append; repeated submissions produce repeated entries.
	result, err := pc.collection.UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"inquiries": inquiry}},
	)
	if err != nil {
		log.Printf("Inquiry error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send inquiry"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "PG listing not found"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Inquiry sent successfully"})
}

func (pc *PGController) GetCities(c echo.Context) error {
	cacheKey := utils.CitiesCacheKey

	var cached []string
	if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, map[string]interface{}{"cities": cached})
	}

	values, err := pc.collection.Distinct(context.Background(), "address.city", bson.M{})
	if err != nil {
		log.Printf("Cities error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cities"})
	}

	cities := []string{}
	for _, value := range values {
		if city, ok := value.(string); ok {
			cities = append(cities, city)
		}
	}
	sort.Strings(cities)

	if err := utils.SetCached(context.Background(), cacheKey, cities, searchCacheTTL); err != nil {
		log.Printf("Cache set error: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"cities": cities})
}
