package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/talentwire/article-service/internal/logger"
	"github.com/talentwire/article-service/internal/types"
)

const defaultListLimit = 50

type ArticleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, article *types.Article) (*types.Article, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Article, error)
	GetBySourceEntity(ctx context.Context, tx *gorm.DB, sourceEntityID int64, formatType types.FormatType) ([]*types.Article, error)
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Article, error)
	Delete(ctx context.Context, tx *gorm.DB, id int64) (bool, error)
}

type articleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewArticleRepo(db *gorm.DB, baseLog *logger.Logger) ArticleRepo {
	repoLog := baseLog.With("repo", "ArticleRepo")
	return &articleRepo{db: db, log: repoLog}
}

func (r *articleRepo) Create(ctx context.Context, tx *gorm.DB, article *types.Article) (*types.Article, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

func (r *articleRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Article, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Article
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *articleRepo) GetBySourceEntity(ctx context.Context, tx *gorm.DB, sourceEntityID int64, formatType types.FormatType) ([]*types.Article, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Where("source_entity_id = ?", sourceEntityID)
	if formatType != "" {
		query = query.Where("format_type = ?", formatType)
	}

	var results []*types.Article
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *articleRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Article, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var results []*types.Article
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *articleRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	result := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Article{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
