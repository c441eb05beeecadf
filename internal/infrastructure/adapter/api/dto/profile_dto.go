package dto

import (
	"time"

	"github.com/condoindica/condoindica-api/internal/domain/entity"
)

// SaveProfileRequest carries the editable resident profile fields.
// Partial saves are allowed; the completion gate simply stays closed until
// every field is filled.
type SaveProfileRequest struct {
	FullName     string `json:"fullName"`
	Condominium  string `json:"condominium"`
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	District     string `json:"district"`
	City         string `json:"city"`
	State        string `json:"state"`
	StreetNumber string `json:"streetNumber"`
	Whatsapp     string `json:"whatsapp"`
}

// ProfileFields mirrors the resident profile block in responses
type ProfileFields struct {
	FullName     string `json:"fullName"`
	Condominium  string `json:"condominium"`
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	District     string `json:"district"`
	City         string `json:"city"`
	State        string `json:"state"`
	StreetNumber string `json:"streetNumber"`
	Whatsapp     string `json:"whatsapp"`
}

// ProfileResponse represents the API response for a user's profile
type ProfileResponse struct {
	UserID          string        `json:"userId"`
	Email           string        `json:"email"`
	DisplayName     string        `json:"displayName"`
	PhotoURL        string        `json:"photoUrl,omitempty"`
	Role            string        `json:"role"`
	Balance         int64         `json:"balance"`
	Profile         ProfileFields `json:"profile"`
	ProfileComplete bool          `json:"profileComplete"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// NewProfileResponse maps a user entity to its API representation
func NewProfileResponse(user *entity.User) ProfileResponse {
	return ProfileResponse{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
		Role:        user.Role,
		Balance:     user.Points(),
		Profile: ProfileFields{
			FullName:     user.Profile.FullName,
			Condominium:  user.Profile.Condominium,
			PostalCode:   user.Profile.PostalCode,
			Street:       user.Profile.Street,
			District:     user.Profile.District,
			City:         user.Profile.City,
			State:        user.Profile.State,
			StreetNumber: user.Profile.StreetNumber,
			Whatsapp:     user.Profile.Whatsapp,
		},
		ProfileComplete: user.ProfileComplete(),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
