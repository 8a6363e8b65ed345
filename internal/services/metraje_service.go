package services

import (
	"context"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
)

type MetrajeService interface {
	List(ctx context.Context) ([]*models.Metraje, error)
	Create(ctx context.Context, req dtos.CreateMetrajeRequest) (*models.Metraje, error)
	Delete(ctx context.Context, id int64) error
}

type metrajeService struct {
	repo repositories.MetrajeRepository
}

func NewMetrajeService(repo repositories.MetrajeRepository) MetrajeService {
	return &metrajeService{repo: repo}
}

func (s *metrajeService) List(ctx context.Context) ([]*models.Metraje, error) {
	list, err := s.repo.List(ctx)
	return list, translateRepoErr(err, "Metraje")
}

func (s *metrajeService) Create(ctx context.Context, req dtos.CreateMetrajeRequest) (*models.Metraje, error) {
	m := &models.Metraje{Area: req.Area, Perimetro: req.Perimetro, Image: req.Image}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, translateRepoErr(err, "Metraje")
	}
	return m, nil
}

func (s *metrajeService) Delete(ctx context.Context, id int64) error {
	return translateRepoErr(s.repo.Delete(ctx, id), "Metraje")
}
