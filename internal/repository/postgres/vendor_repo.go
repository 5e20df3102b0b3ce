package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/gorm"
)

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *vendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	var vendor domain.Vendor
	err := r.db.WithContext(ctx).First(&vendor, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, filter repository.VendorFilter) ([]*domain.Vendor, error) {
	q := r.db.WithContext(ctx).Model(&domain.Vendor{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.MinRating > 0 {
		q = q.Where("rating >= ?", filter.MinRating)
	}

	var vendors []*domain.Vendor
	err := q.Order("rating DESC").Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) Search(ctx context.Context, query string) ([]*domain.Vendor, error) {
	pattern := "%" + query + "%"
	var vendors []*domain.Vendor
	err := r.db.WithContext(ctx).
		Where("name ILIKE ? OR category ILIKE ? OR location ILIKE ?", pattern, pattern, pattern).
		Order("rating DESC").
		Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}
