package domain

import (
	"context"
	"time"
)

// BusinessCategory is the fixed category set used for directory filtering.
type BusinessCategory string

const (
	BusinessCategoryRestaurant    BusinessCategory = "restaurant"
	BusinessCategoryRetail        BusinessCategory = "retail"
	BusinessCategoryServices      BusinessCategory = "services"
	BusinessCategoryAutomotive    BusinessCategory = "automotive"
	BusinessCategoryHealthBeauty  BusinessCategory = "health-beauty"
	BusinessCategoryEntertainment BusinessCategory = "entertainment"
	BusinessCategoryOther         BusinessCategory = "other"
)

// BusinessCategories lists all valid directory categories.
var BusinessCategories = []BusinessCategory{
	BusinessCategoryRestaurant,
	BusinessCategoryRetail,
	BusinessCategoryServices,
	BusinessCategoryAutomotive,
	BusinessCategoryHealthBeauty,
	BusinessCategoryEntertainment,
	BusinessCategoryOther,
}

// ValidBusinessCategory reports whether c is one of the enumerated categories.
func ValidBusinessCategory(c BusinessCategory) bool {
	for _, v := range BusinessCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Business is a directory entry, managed only through the admin CRUD surface.
// swagger:model Business
type Business struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone,omitempty"`
	Website     string           `json:"website,omitempty"`
	Category    BusinessCategory `json:"category"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// BusinessUpdate carries a partial update; nil fields are left unchanged.
type BusinessUpdate struct {
	Name        *string
	Description *string
	Address     *string
	Phone       *string
	Website     *string
	Category    *BusinessCategory
	ImageURL    *string
}

// BusinessRepository defines the interface for business storage.
type BusinessRepository interface {
	Create(ctx context.Context, b *Business) error
	GetByID(ctx context.Context, id string) (*Business, error)
	List(ctx context.Context) ([]*Business, error)
	Update(ctx context.Context, id string, upd BusinessUpdate) (*Business, error)
	Delete(ctx context.Context, id string) error
}

// DirectoryService defines the business-directory operations exposed over HTTP.
type DirectoryService interface {
	ListBusinesses(ctx context.Context) ([]*Business, error)
	CreateBusiness(ctx context.Context, b *Business) (*Business, error)
	UpdateBusiness(ctx context.Context, id string, upd BusinessUpdate) (*Business, error)
	DeleteBusiness(ctx context.Context, id string) error
}
