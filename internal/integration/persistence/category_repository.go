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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := conn(ctx, r.db).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := conn(ctx, r.db).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByType retrieves categories of a type ordered by name, then id.
func (r *categoryRepository) FindByType(ctx context.Context, categoryType entity.CategoryType, activeOnly bool) ([]*entity.Category, error) {
	query := conn(ctx, r.db).Where("type = ?", string(categoryType))
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categoryModels []model.CategoryModel
	result := query.Order("name ASC").Order("id ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategories(categoryModels), nil
}

// FindAll retrieves every category ordered by name, then id.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := conn(ctx, r.db).Order("name ASC").Order("id ASC").Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCategories(categoryModels), nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := conn(ctx, r.db).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := conn(ctx, r.db).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// CountReferences counts the sources, transactions and child categories that
// point at a category.
func (r *categoryRepository) CountReferences(ctx context.Context, id uuid.UUID) (entity.CategoryReferences, error) {
	var refs entity.CategoryReferences
	db := conn(ctx, r.db)

	if err := db.Model(&model.SourceModel{}).Where("category_id = ?", id).Count(&refs.Sources).Error; err != nil {
		return refs, err
	}
	if err := db.Model(&model.TransactionModel{}).Where("category_id = ?", id).Count(&refs.Transactions).Error; err != nil {
		return refs, err
	}
	if err := db.Model(&model.CategoryModel{}).Where("parent_category_id = ?", id).Count(&refs.Children).Error; err != nil {
		return refs, err
	}
	return refs, nil
}

// CountTransactionsWithoutEmployee counts the category's transactions with a
// null employee_id.
func (r *categoryRepository) CountTransactionsWithoutEmployee(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.TransactionModel{}).
		Where("category_id = ? AND employee_id IS NULL", id).
		Count(&count).Error
	return count, err
}

func toCategories(categoryModels []model.CategoryModel) []*entity.Category {
	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories
}
