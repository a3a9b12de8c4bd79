package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/print-shop/ledger/internal/application/adapter"
	"github.com/print-shop/ledger/internal/domain/entity"
	domainerror "github.com/print-shop/ledger/internal/domain/error"
	"github.com/print-shop/ledger/internal/integration/persistence/model"
)

// sourceRepository implements the adapter.SourceRepository interface.
type sourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository creates a new source repository instance.
func NewSourceRepository(db *gorm.DB) adapter.SourceRepository {
	return &sourceRepository{
		db: db,
	}
}

// Create creates a new source in the database.
func (r *sourceRepository) Create(ctx context.Context, source *entity.Source) error {
	return conn(ctx, r.db).Create(model.SourceFromEntity(source)).Error
}

// FindByID retrieves a source by its ID.
func (r *sourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Source, error) {
	var sourceModel model.SourceModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&sourceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSourceNotFound
		}
		return nil, result.Error
	}
	return sourceModel.ToEntity(), nil
}

// FindAll retrieves every source ordered by name, then id.
func (r *sourceRepository) FindAll(ctx context.Context) ([]*entity.Source, error) {
	var sourceModels []model.SourceModel
	result := conn(ctx, r.db).Order("name ASC").Order("id ASC").Find(&sourceModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSources(sourceModels), nil
}

// FindByCategory retrieves the sources of a category ordered by name, then id.
func (r *sourceRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Source, error) {
	var sourceModels []model.SourceModel
	result := conn(ctx, r.db).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Order("id ASC").
		Find(&sourceModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSources(sourceModels), nil
}

// Update updates an existing source in the database.
func (r *sourceRepository) Update(ctx context.Context, source *entity.Source) error {
	return conn(ctx, r.db).Save(model.SourceFromEntity(source)).Error
}

// Delete removes a source from the database.
func (r *sourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.SourceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSourceNotFound
	}
	return nil
}

// CountTransactions counts the transactions that reference a source.
func (r *sourceRepository) CountTransactions(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.TransactionModel{}).Where("source_id = ?", id).Count(&count).Error
	return count, err
}

func toSources(sourceModels []model.SourceModel) []*entity.Source {
	sources := make([]*entity.Source, len(sourceModels))
	for i, sm := range sourceModels {
		sources[i] = sm.ToEntity()
	}
	return sources
}
