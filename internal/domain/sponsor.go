package domain

import (
	"context"
	"time"
)

// SponsorLevel drives tier-based grouping on sponsor pages.
type SponsorLevel string

const (
	SponsorLevelPresenting SponsorLevel = "Presenting"
	SponsorLevelPlatinum   SponsorLevel = "Platinum"
	SponsorLevelGold       SponsorLevel = "Gold"
	SponsorLevelSilver     SponsorLevel = "Silver"
	SponsorLevelSupporting SponsorLevel = "Supporting"
)

// SponsorLevels lists all valid sponsorship levels, highest first.
var SponsorLevels = []SponsorLevel{
	SponsorLevelPresenting,
	SponsorLevelPlatinum,
	SponsorLevelGold,
	SponsorLevelSilver,
	SponsorLevelSupporting,
}

// ValidSponsorLevel reports whether l is a known sponsorship level.
func ValidSponsorLevel(l SponsorLevel) bool {
	for _, v := range SponsorLevels {
		if l == v {
			return true
		}
	}
	return false
}

// Sponsor is a sponsoring organization, managed through the admin CRUD surface.
// swagger:model Sponsor
type Sponsor struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Level           SponsorLevel `json:"level"`
	LogoURL         string       `json:"logoUrl,omitempty"`
	WebsiteURL      string       `json:"websiteUrl,omitempty"`
	EventType       EventType    `json:"eventType,omitempty"`
	SponsorImageURL string       `json:"sponsorImageUrl,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// SponsorUpdate carries a partial update; nil fields are left unchanged.
type SponsorUpdate struct {
	Name            *string
	Level           *SponsorLevel
	LogoURL         *string
	WebsiteURL      *string
	EventType       *EventType
	SponsorImageURL *string
}

// SponsorTier is a catalog entry from the content files describing what a
// sponsorship level costs and includes. It is not a sponsor's own record.
type SponsorTier struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     string   `json:"price"`
	Benefits  []string `json:"benefits"`
	SquareURL string   `json:"squareUrl"`
	Order     int      `json:"order"`
}

// SponsorRepository defines the interface for sponsor storage.
type SponsorRepository interface {
	Create(ctx context.Context, s *Sponsor) error
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	List(ctx context.Context) ([]*Sponsor, error)
	Update(ctx context.Context, id string, upd SponsorUpdate) (*Sponsor, error)
	Delete(ctx context.Context, id string) error
}

// SponsorService defines the sponsor operations exposed over HTTP.
type SponsorService interface {
	ListSponsors(ctx context.Context) ([]*Sponsor, error)
	CreateSponsor(ctx context.Context, s *Sponsor) (*Sponsor, error)
	UpdateSponsor(ctx context.Context, id string, upd SponsorUpdate) (*Sponsor, error)
	DeleteSponsor(ctx context.Context, id string) error
}
