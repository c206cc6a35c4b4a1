package domain

import (
	"time"

	"github.com/google/uuid"
)

// Style is the favourite aesthetic chosen in the style quiz
type Style string

const (
	StyleMinimalist Style = "minimalist"
	StyleClassic    Style = "classic"
	StyleStreetwear Style = "streetwear"
	StyleElegant    Style = "elegant"
	StyleCasual     Style = "casual"
)

// Palette is the colour family chosen in the style quiz
type Palette string

const (
	PaletteNeutrals Palette = "neutrals"
	PaletteEarth    Palette = "earth"
	PaletteDeep     Palette = "deep"
	PaletteBold     Palette = "bold"
)

// Fit is the preferred garment fit
type Fit string

const (
	FitSlim      Fit = "slim"
	FitRegular   Fit = "regular"
	FitRelaxed   Fit = "relaxed"
	FitOversized Fit = "oversized"
)

// Priority is what the shopper values most when building a wardrobe
type Priority string

const (
	PriorityQuality     Priority = "quality"
	PriorityVersatility Priority = "versatility"
	PriorityStatement   Priority = "statement"
	PriorityComfort     Priority = "comfort"
)

// UserPreferences holds a user's style-quiz answers.
// Empty enum fields mean the question was skipped.
type UserPreferences struct {
	UserID           uuid.UUID `json:"userId"`
	FavoriteStyle    Style     `json:"favoriteStyle,omitempty"`
	ColorPalette     Palette   `json:"colorPalette,omitempty"`
	PreferredFit     Fit       `json:"preferredFit,omitempty"`
	WardrobePriority Priority  `json:"wardrobePriority,omitempty"`
	PreferredSize    string    `json:"preferredSize,omitempty"`
	HasCompletedQuiz bool      `json:"hasCompletedQuiz"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Personalizable reports whether the preferences are usable for scoring
func (p *UserPreferences) Personalizable() bool {
	return p != nil && p.HasCompletedQuiz
}

// QuizAnswers is the body submitted when a user completes the style quiz
type QuizAnswers struct {
	FavoriteStyle    string `json:"favoriteStyle" validate:"omitempty,oneof=minimalist classic streetwear elegant casual"`
	ColorPalette     string `json:"colorPalette" validate:"omitempty,oneof=neutrals earth deep bold"`
	PreferredFit     string `json:"preferredFit" validate:"omitempty,oneof=slim regular relaxed oversized"`
	WardrobePriority string `json:"wardrobePriority" validate:"omitempty,oneof=quality versatility statement comfort"`
	PreferredSize    string `json:"preferredSize" validate:"omitempty,max=8"`
}
