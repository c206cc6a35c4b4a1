package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/maison/backend/internal/domain"
)

var _ domain.PreferenceRepository = (*PreferenceRepository)(nil)

type PreferenceRepository struct {
	db *Connection
}

func NewPreferenceRepository(db *Connection) *PreferenceRepository {
	return &PreferenceRepository{
		db: db,
	}
}

func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	query := `SELECT user_id, favorite_style, color_palette, preferred_fit, wardrobe_priority,
			  preferred_size, has_completed_quiz, updated_at
			  FROM user_preferences WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.UserID, &prefs.FavoriteStyle, &prefs.ColorPalette, &prefs.PreferredFit,
		&prefs.WardrobePriority, &prefs.PreferredSize, &prefs.HasCompletedQuiz, &prefs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return &prefs, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, prefs *domain.UserPreferences) error {
	query := `INSERT INTO user_preferences (user_id, favorite_style, color_palette, preferred_fit,
			  wardrobe_priority, preferred_size, has_completed_quiz, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (user_id) DO UPDATE SET
			  favorite_style = EXCLUDED.favorite_style,
			  color_palette = EXCLUDED.color_palette,
			  preferred_fit = EXCLUDED.preferred_fit,
			  wardrobe_priority = EXCLUDED.wardrobe_priority,
			  preferred_size = EXCLUDED.preferred_size,
			  has_completed_quiz = EXCLUDED.has_completed_quiz,
			  updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		prefs.UserID, string(prefs.FavoriteStyle), string(prefs.ColorPalette), string(prefs.PreferredFit),
		string(prefs.WardrobePriority), prefs.PreferredSize, prefs.HasCompletedQuiz, prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
