package repositories

import (
	"context"
	"errors"
	"fmt"
	"leaguecatalog/pkg/database/models"
	"time"

	"gorm.io/gorm"
)

var (
	ErrChampionNotFound = errors.New("champion not found")
	ErrChampionExists   = errors.New("champion already exists")
)

// ChampionRepository is the public interface for accessing the champion repository.
type ChampionRepository interface {
	FindPage(ctx context.Context, offset int, limit int) ([]*models.Champion, error)
	Count(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*models.Champion, error)
	Create(ctx context.Context, champion *models.Champion) error
	Update(ctx context.Context, name string, champion *models.Champion) error
	Delete(ctx context.Context, id string) error
}

// championRepository repository structure.
type championRepository struct {
	db *gorm.DB
}

// NewChampionRepository creates a champion repository.
func NewChampionRepository(db *gorm.DB) ChampionRepository {
	return &championRepository{db: db}
}

// FindPage returns a page of champions ordered by name.
func (cr *championRepository) FindPage(ctx context.Context, offset int, limit int) ([]*models.Champion, error) {
	champions := []*models.Champion{}

	if err := cr.db.WithContext(ctx).
		Order("name asc").
		Offset(offset).
		Limit(limit).
		Find(&champions).Error; err != nil {
		return nil, fmt.Errorf("couldn't fetch the champion page: %w", err)
	}

	return champions, nil
}

// Count returns the total of champions.
func (cr *championRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := cr.db.WithContext(ctx).Model(&models.Champion{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("couldn't count the champions: %w", err)
	}

	return total, nil
}

// FindByName returns the champion with the exact given name.
func (cr *championRepository) FindByName(ctx context.Context, name string) (*models.Champion, error) {
	var champion models.Champion
	if err := cr.db.WithContext(ctx).Where("name = ?", name).First(&champion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChampionNotFound
		}

		return nil, fmt.Errorf("couldn't get the champion by name: %w", err)
	}

	return &champion, nil
}

// Create inserts the champion, filling its id and timestamps.
func (cr *championRepository) Create(ctx context.Context, champion *models.Champion) error {
	if err := cr.db.WithContext(ctx).Create(champion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrChampionExists
		}

		return fmt.Errorf("couldn't create the champion: %w", err)
	}

	return nil
}

// Update overwrites name, role and image of the champion currently named name.
func (cr *championRepository) Update(ctx context.Context, name string, champion *models.Champion) error {
	now := time.Now().UTC()

	result := cr.db.WithContext(ctx).
		Model(&models.Champion{}).
		Where("name = ?", name).
		Updates(map[string]any{
			"name":       champion.Name,
			"role":       champion.Role,
			"image_path": champion.ImagePath,
			"updated_at": now,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrChampionExists
		}

		return fmt.Errorf("couldn't update the champion: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrChampionNotFound
	}

	champion.UpdatedAt = now
	return nil
}

// Delete removes the champion by id.
func (cr *championRepository) Delete(ctx context.Context, id string) error {
	result := cr.db.WithContext(ctx).Delete(&models.Champion{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("couldn't delete the champion: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrChampionNotFound
	}

	return nil
}
