package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"archivum/contexts/publishing/content-workflow/domain/entities"
	domainerrors "archivum/contexts/publishing/content-workflow/domain/errors"
	"archivum/contexts/publishing/content-workflow/ports"

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

func (r *Repository) CreateContentItem(ctx context.Context, item entities.ContentItem) error {
	row, err := contentModelFromEntity(item)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		return err
	}
	return nil
}

// UpdateContentItem writes the row only while the stored state still equals
// expectedState. Losing a race surfaces as ErrInvalidState, same as the
// illegal-transition check in the engine.
func (r *Repository) UpdateContentItem(ctx context.Context, item entities.ContentItem, expectedState entities.ContentState) error {
	updates, err := contentUpdatesFromEntity(item)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&contentModel{}).
		Where("item_id = ?", strings.TrimSpace(item.ItemID)).
		Where("state = ?", string(expectedState)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&contentModel{}).
			Where("item_id = ?", strings.TrimSpace(item.ItemID)).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrItemNotFound
		}
		return domainerrors.ErrInvalidState
	}
	return nil
}

func (r *Repository) GetContentItem(ctx context.Context, itemID string) (entities.ContentItem, error) {
	var row contentModel
	err := r.db.WithContext(ctx).
		Where("item_id = ?", strings.TrimSpace(itemID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ContentItem{}, domainerrors.ErrItemNotFound
		}
		return entities.ContentItem{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListContentItems(ctx context.Context, filter ports.ContentFilter) ([]entities.ContentItem, error) {
	tx := r.db.WithContext(ctx).Model(&contentModel{})
	if strings.TrimSpace(filter.AuthorID) != "" {
		tx = tx.Where("author_id = ?", strings.TrimSpace(filter.AuthorID))
	}
	if filter.Kind != "" {
		tx = tx.Where("kind = ?", string(filter.Kind))
	}
	if filter.State != "" {
		tx = tx.Where("state = ?", string(filter.State))
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []contentModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToEntities(rows)
}

func (r *Repository) ListPendingApproval(ctx context.Context, kind entities.ContentKind, limit, offset int) ([]entities.ContentItem, error) {
	tx := r.db.WithContext(ctx).
		Model(&contentModel{}).
		Where("state = ?", string(entities.ContentStatePendingApproval))
	if kind != "" {
		tx = tx.Where("kind = ?", string(kind))
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []contentModel
	if err := tx.Order("submitted_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToEntities(rows)
}

func (r *Repository) PurgeStaleDrafts(ctx context.Context, before time.Time) (int, error) {
	result := r.db.WithContext(ctx).
		Where("state = ?", string(entities.ContentStateDraft)).
		Where("submitted_at IS NULL").
		Where("updated_at < ?", before.UTC()).
		Delete(&contentModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func rowsToEntities(rows []contentModel) ([]entities.ContentItem, error) {
	items := make([]entities.ContentItem, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

type contentModel struct {
	ItemID          string     `gorm:"column:item_id;primaryKey"`
	Kind            string     `gorm:"column:kind"`
	AuthorID        string     `gorm:"column:author_id"`
	Payload         []byte     `gorm:"column:payload"`
	State           string     `gorm:"column:state"`
	SubmittedAt     *time.Time `gorm:"column:submitted_at"`
	PublishedAt     *time.Time `gorm:"column:published_at"`
	RejectionReason string     `gorm:"column:rejection_reason"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (contentModel) TableName() string {
	return "content_items"
}

// payloadDoc is the JSON column shape; one variant set per row, keyed by kind.
type payloadDoc struct {
	Article    *entities.ArticlePayload    `json:"article,omitempty"`
	BookReview *entities.BookReviewPayload `json:"book_review,omitempty"`
	MediaAsset *entities.MediaAssetPayload `json:"media_asset,omitempty"`
}

func contentModelFromEntity(item entities.ContentItem) (contentModel, error) {
	payload, err := json.Marshal(payloadDoc{
		Article:    item.Payload.Article,
		BookReview: item.Payload.BookReview,
		MediaAsset: item.Payload.MediaAsset,
	})
	if err != nil {
		return contentModel{}, err
	}
	return contentModel{
		ItemID:          strings.TrimSpace(item.ItemID),
		Kind:            string(item.Kind),
		AuthorID:        strings.TrimSpace(item.AuthorID),
		Payload:         payload,
		State:           string(item.State),
		SubmittedAt:     normalizeOptionalTime(item.SubmittedAt),
		PublishedAt:     normalizeOptionalTime(item.PublishedAt),
		RejectionReason: strings.TrimSpace(item.RejectionReason),
		CreatedAt:       item.CreatedAt.UTC(),
		UpdatedAt:       item.UpdatedAt.UTC(),
	}, nil
}

func contentUpdatesFromEntity(item entities.ContentItem) (map[string]any, error) {
	row, err := contentModelFromEntity(item)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"payload":          row.Payload,
		"state":            row.State,
		"submitted_at":     row.SubmittedAt,
		"published_at":     row.PublishedAt,
		"rejection_reason": row.RejectionReason,
		"updated_at":       row.UpdatedAt,
	}, nil
}

func (m contentModel) toEntity() (entities.ContentItem, error) {
	var doc payloadDoc
	if len(m.Payload) > 0 {
		if err := json.Unmarshal(m.Payload, &doc); err != nil {
			return entities.ContentItem{}, err
		}
	}
	return entities.ContentItem{
		ItemID:   m.ItemID,
		Kind:     entities.ContentKind(m.Kind),
		AuthorID: m.AuthorID,
		Payload: entities.Payload{
			Article:    doc.Article,
			BookReview: doc.BookReview,
			MediaAsset: doc.MediaAsset,
		},
		State:           entities.ContentState(m.State),
		SubmittedAt:     normalizeOptionalTime(m.SubmittedAt),
		PublishedAt:     normalizeOptionalTime(m.PublishedAt),
		RejectionReason: m.RejectionReason,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}, nil
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
