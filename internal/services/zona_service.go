package services

import (
	"context"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type ZonaService interface {
	List(ctx context.Context) ([]*models.Zona, error)
	Get(ctx context.Context, id int64) (*models.Zona, error)
	Create(ctx context.Context, req dtos.CreateZonaRequest) (*models.Zona, error)
	Update(ctx context.Context, id int64, req dtos.UpdateZonaRequest) (*models.Zona, error)
	Delete(ctx context.Context, id int64) error
}

type zonaService struct {
	repo          repositories.ZonaRepository
	categoriaRepo repositories.CategoriaRepository
}

func NewZonaService(repo repositories.ZonaRepository, categoriaRepo repositories.CategoriaRepository) ZonaService {
	return &zonaService{repo: repo, categoriaRepo: categoriaRepo}
}

func (s *zonaService) List(ctx context.Context) ([]*models.Zona, error) {
	list, err := s.repo.List(ctx)
	return list, translateRepoErr(err, "Zona")
}

func (s *zonaService) Get(ctx context.Context, id int64) (*models.Zona, error) {
	z, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, "Zona")
	}
	if z == nil {
		return nil, utils.NewNotFoundError("Zona not found")
	}
	return z, nil
}

func (s *zonaService) Create(ctx context.Context, req dtos.CreateZonaRequest) (*models.Zona, error) {
	if err := s.ensureCategoria(ctx, req.CategoriaNombre); err != nil {
		return nil, err
	}
	z := &models.Zona{
		CategoriaNombre: req.CategoriaNombre,
		Codigo:          req.Codigo,
		LineaBase:       req.LineaBase,
		TieneSubniveles: req.TieneSubniveles,
	}
	if err := s.repo.Create(ctx, z); err != nil {
		return nil, translateRepoErr(err, "Zona")
	}
	return z, nil
}

func (s *zonaService) Update(ctx context.Context, id int64, req dtos.UpdateZonaRequest) (*models.Zona, error) {
	if req.CategoriaNombre != nil {
		if err := s.ensureCategoria(ctx, *req.CategoriaNombre); err != nil {
			return nil, err
		}
	}

	var updated *models.Zona
	err := s.repo.UpdateWithRetry(ctx, id, func(z *models.Zona) error {
		if req.CategoriaNombre != nil {
			z.CategoriaNombre = *req.CategoriaNombre
		}
		if req.Codigo != nil {
			z.Codigo = *req.Codigo
		}
		if req.LineaBase != nil {
			z.LineaBase = req.LineaBase
		}
		if req.TieneSubniveles != nil {
			z.TieneSubniveles = *req.TieneSubniveles
		}
		updated = z
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "Zona")
	}
	return updated, nil
}

func (s *zonaService) Delete(ctx context.Context, id int64) error {
	return translateRepoErr(s.repo.Delete(ctx, id), "Zona")
}

func (s *zonaService) ensureCategoria(ctx context.Context, nombre string) error {
	c, err := s.categoriaRepo.GetByNombre(ctx, nombre)
	if err != nil {
		return translateRepoErr(err, "Categoria")
	}
	if c == nil {
		return utils.NewNotFoundError("Categoria not found")
	}
	return nil
}
