package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/tattoo-scheduler/internal/domain/artist"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

type ArtistGormRepository struct {
	db *gorm.DB
}

func NewArtistGormRepository(db *gorm.DB) *ArtistGormRepository {
	return &ArtistGormRepository{db: db}
}

func (r *ArtistGormRepository) List(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistGormRepository) GetByID(ctx context.Context, id uint) (*models.Artist, error) {
	var a models.Artist
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *ArtistGormRepository) Create(ctx context.Context, a *models.Artist) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArtistGormRepository) Update(ctx context.Context, a *models.Artist) error {
	res := r.db.WithContext(ctx).
		Model(a).
		Select("nombre", "estilo").
		Updates(a)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ArtistGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Artist{}, id)
	if res.Error != nil {
		if isForeignKeyViolation(res.Error) {
			return domain.ErrHasAppointments
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ArtistGormRepository)(nil)
