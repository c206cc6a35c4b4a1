package usecase

import (
	"fmt"

	"github.com/maison/backend/internal/domain"
)

// Scoring weights
const (
	styleMatchPoints     = 15 // Product carries the favourite style tag
	fitCategoryPoints    = 10 // Product category suits the preferred fit
	colorMatchPoints     = 5  // Per colour variant inside the chosen palette
	featuredPoints       = 8  // Editorially featured product
	qualityDiscountBonus = 5  // Quality-priority shopper and product is on sale
)

// Reason strings
const (
	reasonStyleFormat = "Matches your %s style"
	reasonFitFormat   = "Great for your %s fit preference"
	reasonCurated     = "Curated selection"
)

// styleTags maps a quiz style answer to the product style tag it matches
var styleTags = map[domain.Style]string{
	domain.StyleMinimalist: "minimalist",
	domain.StyleClassic:    "classic",
	domain.StyleStreetwear: "streetwear",
	domain.StyleElegant:    "elegant",
	domain.StyleCasual:     "casual",
}

// fitCategories maps a preferred fit to the categories that suit it
var fitCategories = map[domain.Fit]map[string]bool{
	domain.FitSlim:      {"Tops": true, "Knitwear": true},
	domain.FitRegular:   {"Tops": true, "Bottoms": true, "Accessories": true},
	domain.FitRelaxed:   {"Outerwear": true, "Tops": true},
	domain.FitOversized: {"Outerwear": true, "Knitwear": true},
}

// paletteColors maps a colour palette to the named colours it contains
var paletteColors = map[domain.Palette]map[string]bool{
	domain.PaletteNeutrals: {
		"Black": true, "White": true, "Charcoal": true, "Cream": true,
		"Ivory": true, "Oatmeal": true, "Heather Grey": true,
	},
	domain.PaletteEarth: {
		"Camel": true, "Sand": true, "Olive": true, "Cognac": true,
		"Tan": true, "Burgundy": true, "Forest": true,
	},
	domain.PaletteDeep: {
		"Navy": true, "Midnight": true, "Burgundy": true, "Forest": true, "Indigo": true,
	},
	domain.PaletteBold: {
		"Black": true, "White": true, "Sage": true, "Indigo": true,
	},
}

// Score computes how well a product matches a user's quiz answers.
// Each factor is evaluated independently and summed; unknown or missing
// answers contribute nothing. Colour matches stack without a cap.
func Score(product *domain.Product, prefs *domain.UserPreferences) domain.Match {
	score := 0

	styleMatched := false
	if tag, ok := styleTags[prefs.FavoriteStyle]; ok && product.HasStyle(tag) {
		score += styleMatchPoints
		styleMatched = true
	}

	fitMatched := false
	if categories, ok := fitCategories[prefs.PreferredFit]; ok && categories[product.Category] {
		score += fitCategoryPoints
		fitMatched = true
	}

	if colors, ok := paletteColors[prefs.ColorPalette]; ok {
		for _, c := range product.Colors {
			if colors[c.Name] {
				score += colorMatchPoints
			}
		}
	}

	if product.IsFeatured {
		score += featuredPoints
	}

	// Sale items for quality-priority shoppers.
	if prefs.WardrobePriority == domain.PriorityQuality && product.OnSale() {
		score += qualityDiscountBonus
	}

	return domain.Match{
		Score:  score,
		Reason: matchReason(prefs, styleMatched, fitMatched),
	}
}

// matchReason picks the first applicable explanation: style, then fit
func matchReason(prefs *domain.UserPreferences, styleMatched, fitMatched bool) string {
	switch {
	case styleMatched:
		return fmt.Sprintf(reasonStyleFormat, prefs.FavoriteStyle)
	case fitMatched:
		return fmt.Sprintf(reasonFitFormat, prefs.PreferredFit)
	default:
		return reasonCurated
	}
}
