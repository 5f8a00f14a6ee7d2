package models

import (
	"encoding/json"
	"errors"
	"time"
)

// Profile is the public-facing extension of a tattooer account.
// SocialMedia is a JSON object stored as text; use DecodeSocialMedia /
// EncodeSocialMedia when crossing the API boundary.
type Profile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Bio            string    `gorm:"type:text" json:"bio"`
	SocialMedia    string    `gorm:"type:text" json:"-"`
	ProfilePicture string    `json:"profile_picture"`
	Ranking        int       `gorm:"not null;default:0" json:"ranking"`
	Category       string    `gorm:"index" json:"category"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ErrSocialMediaNotObject is returned when a social_media payload is valid
// JSON but not an object.
var ErrSocialMediaNotObject = errors.New("social_media must be a JSON object")

// DecodeSocialMedia parses a raw social_media payload, requiring a JSON object.
func DecodeSocialMedia(raw json.RawMessage) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, ErrSocialMediaNotObject
	}
	// A JSON null unmarshals without error but is not an object.
	if m == nil {
		return nil, ErrSocialMediaNotObject
	}
	return m, nil
}

// EncodeSocialMedia serializes a social_media object to its stored text form.
func EncodeSocialMedia(m map[string]any) (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ProfileView is the API representation of a Profile with social media
// decoded from its stored text form.
type ProfileView struct {
	ID             uint           `json:"id"`
	UserID         uint           `json:"user_id"`
	Bio            string         `json:"bio"`
	SocialMedia    map[string]any `json:"social_media"`
	ProfilePicture string         `json:"profile_picture"`
	Ranking        int            `json:"ranking"`
	Category       string         `json:"category"`
}

// View converts the profile to its API representation. Malformed stored
// social media degrades to an empty object rather than failing the response.
func (p *Profile) View() ProfileView {
	social := map[string]any{}
	if p.SocialMedia != "" {
		if decoded, err := DecodeSocialMedia(json.RawMessage(p.SocialMedia)); err == nil {
			social = decoded
		}
	}
	return ProfileView{
		ID:             p.ID,
		UserID:         p.UserID,
		Bio:            p.Bio,
		SocialMedia:    social,
		ProfilePicture: p.ProfilePicture,
		Ranking:        p.Ranking,
		Category:       p.Category,
	}
}

// TattooerView is the denormalized User+Profile projection returned by the
// public profile endpoint.
type TattooerView struct {
	ID             uint           `json:"id"`
	Name           string         `json:"name"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Bio            string         `json:"bio"`
	SocialMedia    map[string]any `json:"social_media"`
	ProfilePicture string         `json:"profile_picture"`
	Ranking        int            `json:"ranking"`
	Category       string         `json:"category"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewTattooerView joins a user and its profile into the public projection.
func NewTattooerView(u *User, p *Profile) TattooerView {
	pv := p.View()
	return TattooerView{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            pv.Bio,
		SocialMedia:    pv.SocialMedia,
		ProfilePicture: pv.ProfilePicture,
		Ranking:        pv.Ranking,
		Category:       pv.Category,
		CreatedAt:      u.CreatedAt,
	}
}
