package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	domainerrors "archivum/contexts/publishing/edit-suggestions/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateSuggestion(ctx context.Context, suggestion entities.EditSuggestion) error {
	row := suggestionModelFromEntity(suggestion)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

func (r *Repository) GetSuggestion(ctx context.Context, suggestionID string) (entities.EditSuggestion, error) {
	var row suggestionModel
	err := r.db.WithContext(ctx).
		Where("suggestion_id = ?", strings.TrimSpace(suggestionID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.EditSuggestion{}, domainerrors.ErrSuggestionNotFound
		}
		return entities.EditSuggestion{}, err
	}
	return row.toEntity(), nil
}

// UpdateDecision conditions the write on decision still being pending, so a
// duplicate decision on one suggestion loses cleanly.
func (r *Repository) UpdateDecision(ctx context.Context, suggestion entities.EditSuggestion) error {
	row := suggestionModelFromEntity(suggestion)
	result := r.db.WithContext(ctx).
		Model(&suggestionModel{}).
		Where("suggestion_id = ?", row.SuggestionID).
		Where("decision = ?", string(entities.SuggestionDecisionPending)).
		Updates(map[string]any{
			"decision":         row.Decision,
			"rejection_reason": row.RejectionReason,
			"decided_at":       row.DecidedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&suggestionModel{}).
			Where("suggestion_id = ?", row.SuggestionID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrSuggestionNotFound
		}
		return domainerrors.ErrInvalidState
	}
	return nil
}

func (r *Repository) ListByItem(ctx context.Context, itemID string) ([]entities.EditSuggestion, error) {
	var rows []suggestionModel
	err := r.db.WithContext(ctx).
		Where("content_item_id = ?", strings.TrimSpace(itemID)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rowsToEntities(rows), nil
}

func (r *Repository) ListPendingForAuthor(ctx context.Context, authorID string) ([]entities.EditSuggestion, error) {
	var rows []suggestionModel
	err := r.db.WithContext(ctx).
		Where("item_author_id = ?", strings.TrimSpace(authorID)).
		Where("decision = ?", string(entities.SuggestionDecisionPending)).
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rowsToEntities(rows), nil
}

func rowsToEntities(rows []suggestionModel) []entities.EditSuggestion {
	items := make([]entities.EditSuggestion, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

type suggestionModel struct {
	SuggestionID    string     `gorm:"column:suggestion_id;primaryKey"`
	ContentItemID   string     `gorm:"column:content_item_id"`
	ItemAuthorID    string     `gorm:"column:item_author_id"`
	SuggesterID     string     `gorm:"column:suggester_id"`
	SuggestionText  string     `gorm:"column:suggestion_text"`
	Decision        string     `gorm:"column:decision"`
	RejectionReason string     `gorm:"column:rejection_reason"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	DecidedAt       *time.Time `gorm:"column:decided_at"`
}

func (suggestionModel) TableName() string {
	return "edit_suggestions"
}

func suggestionModelFromEntity(item entities.EditSuggestion) suggestionModel {
	return suggestionModel{
		SuggestionID:    strings.TrimSpace(item.SuggestionID),
		ContentItemID:   strings.TrimSpace(item.ContentItemID),
		ItemAuthorID:    strings.TrimSpace(item.ItemAuthorID),
		SuggesterID:     strings.TrimSpace(item.SuggesterID),
		SuggestionText:  strings.TrimSpace(item.SuggestionText),
		Decision:        string(item.Decision),
		RejectionReason: strings.TrimSpace(item.RejectionReason),
		CreatedAt:       item.CreatedAt.UTC(),
		DecidedAt:       normalizeOptionalTime(item.DecidedAt),
	}
}

func (m suggestionModel) toEntity() entities.EditSuggestion {
	return entities.EditSuggestion{
		SuggestionID:    m.SuggestionID,
		ContentItemID:   m.ContentItemID,
		ItemAuthorID:    m.ItemAuthorID,
		SuggesterID:     m.SuggesterID,
		SuggestionText:  m.SuggestionText,
		Decision:        entities.SuggestionDecision(m.Decision),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt.UTC(),
		DecidedAt:       normalizeOptionalTime(m.DecidedAt),
	}
}

func normalizeOptionalTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
