package service

import (
	"context"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/deppfellow/estate-listings/internal/repository"
)

// DisplayService serves read-only site content.
type DisplayService struct {
	display repository.DisplayRepository
}

func NewDisplayService(display repository.DisplayRepository) *DisplayService {
	return &DisplayService{display: display}
}

func (s *DisplayService) CompanyInfo(ctx context.Context) (*model.CompanyInfo, error) {
	if s.display == nil {
		return nil, unavailable("Display content")
	}

	info, err := s.display.CompanyInfo(ctx)
	if err != nil {
		return nil, mapNotFound(err, "Company info")
	}
	if info.WorkingDays == nil {
		info.WorkingDays = []string{}
	}
	return info, nil
}

func (s *DisplayService) HeroSlides(ctx context.Context) ([]model.HeroSlide, error) {
	if s.display == nil {
		return nil, unavailable("Display content")
	}

	slides, err := s.display.HeroSlides(ctx)
	if err != nil {
		return nil, err
	}
	if slides == nil {
		slides = []model.HeroSlide{}
	}
	return slides, nil
}
