package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ria/event-planner-website/internal/domain"
	"github.com/ria/event-planner-website/internal/repository"
	"gorm.io/gorm"
)

type VendorService struct {
	vendorRepo repository.VendorRepository
}

func NewVendorService(vendorRepo repository.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

func (s *VendorService) Get(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, err
	}
	return vendor, nil
}

func (s *VendorService) List(ctx context.Context, filter repository.VendorFilter) ([]*domain.Vendor, error) {
	return s.vendorRepo.List(ctx, filter)
}

func (s *VendorService) Search(ctx context.Context, query string) ([]*domain.Vendor, error) {
	return s.vendorRepo.Search(ctx, query)
}
