package utils

import (
	"strings"

	"github.com/rehanpathan0801/PGFinder/models"
)

func IsValidGenderPreference(value string) bool {
	switch value {
	case models.GenderBoys, models.GenderGirls, models.GenderCoEd:
		return true
	}
	return false
}

func IsValidRoomType(value string) bool {
	return value == models.RoomShared || value == models.RoomSingle
}

func IsValidAvailability(value string) bool {
	switch value {
	case models.AvailabilityAvailable, models.AvailabilityOccupied, models.AvailabilityComingSoon:
		return true
	}
	return false
}

// ValidateAmenities checks that every requested amenity belongs to the fixed
// vocabulary and returns the first unknown one.
func ValidateAmenities(amenities []string) (string, bool) {
	for _, a := range amenities {
		known := false
		for _, v := range models.Amenities {
			if a == v {
				known = true
				break
			}
		}
		if !known {
			return a, false
		}
	}
	return "", true
}

// ValidateInquiry applies the inquiry rules: message and contact number must
// each be at least 10 characters after trimming. Returns field-level errors.
func ValidateInquiry(message, contactNumber string) map[string]string {
	errs := map[string]string{}
	if len(strings.TrimSpace(message)) < 10 {
		errs["message"] = "Message must be at least 10 characters long"
	}
	if len(strings.TrimSpace(contactNumber)) < 10 {
		errs["contactNumber"] = "Contact number must be at least 10 digits"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
