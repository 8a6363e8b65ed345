package services

import (
	"context"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
)

type CategoriaService interface {
	List(ctx context.Context) ([]*models.Categoria, error)
	Create(ctx context.Context, req dtos.CreateCategoriaRequest) (*models.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

type categoriaService struct {
	repo repositories.CategoriaRepository
}

func NewCategoriaService(repo repositories.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) List(ctx context.Context) ([]*models.Categoria, error) {
	list, err := s.repo.List(ctx)
	return list, translateRepoErr(err, "Categoria")
}

func (s *categoriaService) Create(ctx context.Context, req dtos.CreateCategoriaRequest) (*models.Categoria, error) {
	c := &models.Categoria{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, translateRepoErr(err, "Categoria")
	}
	return c, nil
}

func (s *categoriaService) Delete(ctx context.Context, id int64) error {
	return translateRepoErr(s.repo.Delete(ctx, id), "Categoria")
}
