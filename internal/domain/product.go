package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ColorVariant is a single colourway a product is sold in
type ColorVariant struct {
	Name  string `json:"name"`
	Value string `json:"value"` // hex swatch, e.g. "#000000"
}

// Product represents a catalog item as read from the catalog store
type Product struct {
	ID            uuid.UUID      `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description,omitempty"`
	Category      string         `json:"category"`
	Styles        []string       `json:"styles"`
	Colors        []ColorVariant `json:"colors"`
	Price         float64        `json:"price"`
	OriginalPrice *float64       `json:"originalPrice"` // non-nil means the product is on sale
	IsFeatured    bool           `json:"isFeatured"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// OnSale reports whether the product carries a pre-discount price
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil
}

// HasStyle reports whether the product is tagged with the given style
func (p *Product) HasStyle(tag string) bool {
	for _, s := range p.Styles {
		if s == tag {
			return true
		}
	}
	return false
}

// Match is the result of scoring one product against one set of preferences
type Match struct {
	Score  int    `json:"matchScore"`
	Reason string `json:"matchReason"`
}

// ScoredProduct is a product annotated with its match against the requester's
// preferences. It lives for a single request and is never persisted.
type ScoredProduct struct {
	Product
	MatchScore  int    `json:"matchScore"`
	MatchReason string `json:"matchReason"`
}

// Recommendations is the payload returned by the recommendations endpoint.
// Exactly one of Ranked or Fallback is populated, selected by Personalized;
// both serialize under "products".
type Recommendations struct {
	Ranked       []ScoredProduct `json:"-"`
	Fallback     []Product       `json:"-"`
	Personalized bool            `json:"personalized"`
	Reason       *string         `json:"reason"`
}

// MarshalJSON writes the populated product list under "products"
func (r Recommendations) MarshalJSON() ([]byte, error) {
	var products any = r.Fallback
	switch {
	case r.Personalized && r.Ranked != nil:
		products = r.Ranked
	case r.Personalized:
		products = []ScoredProduct{}
	case r.Fallback == nil:
		products = []Product{}
	}

	type alias Recommendations
	return json.Marshal(struct {
		Products any `json:"products"`
		alias
	}{Products: products, alias: alias(r)})
}
