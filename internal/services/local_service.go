package services

import (
	"context"

	"github.com/plazacomercial/locales-service/internal/catalog"
	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type LocalService interface {
	List(ctx context.Context) ([]*models.Local, error)
	// GetDetail renders the local the way the grouped view does, with
	// its subniveles nested.
	GetDetail(ctx context.Context, id int64) (*dtos.LocalDetailResponse, error)
	Create(ctx context.Context, req dtos.LocalRequest) (*models.Local, error)
	Update(ctx context.Context, id int64, req dtos.LocalRequest) (*models.Local, error)
	Delete(ctx context.Context, id int64) error
}

type localService struct {
	repo        repositories.LocalRepository
	zonaRepo    repositories.ZonaRepository
	metrajeRepo repositories.MetrajeRepository
}

func NewLocalService(
	repo repositories.LocalRepository,
	zonaRepo repositories.ZonaRepository,
	metrajeRepo repositories.MetrajeRepository,
) LocalService {
	return &localService{repo: repo, zonaRepo: zonaRepo, metrajeRepo: metrajeRepo}
}

func (s *localService) List(ctx context.Context) ([]*models.Local, error) {
	list, err := s.repo.List(ctx)
	return list, translateRepoErr(err, "Local")
}

func (s *localService) GetDetail(ctx context.Context, id int64) (*dtos.LocalDetailResponse, error) {
	l, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	subs, err := s.repo.ListSubniveles(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, "Local")
	}

	node := catalog.NodeFromLocal(l)
	for _, sub := range subs {
		node.Subniveles = append(node.Subniveles, catalog.NodeFromLocal(sub))
	}
	return &dtos.LocalDetailResponse{ID: l.ID, Tipo: l.Tipo, Node: node}, nil
}

func (s *localService) Create(ctx context.Context, req dtos.LocalRequest) (*models.Local, error) {
	if err := s.checkRefs(ctx, 0, req); err != nil {
		return nil, err
	}
	l := &models.Local{}
	applyLocalRequest(l, req)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, translateRepoErr(err, "Local")
	}
	return s.get(ctx, l.ID)
}

func (s *localService) Update(ctx context.Context, id int64, req dtos.LocalRequest) (*models.Local, error) {
	if err := s.checkRefs(ctx, id, req); err != nil {
		return nil, err
	}
	err := s.repo.UpdateWithRetry(ctx, id, func(l *models.Local) error {
		applyLocalRequest(l, req)
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "Local")
	}
	// re-read so the joined zona and metraje match the new ids
	return s.get(ctx, id)
}

func (s *localService) Delete(ctx context.Context, id int64) error {
	return translateRepoErr(s.repo.Delete(ctx, id), "Local")
}

/* ---------- internals ---------- */

func (s *localService) get(ctx context.Context, id int64) (*models.Local, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, "Local")
	}
	if l == nil {
		return nil, utils.NewNotFoundError("Local not found")
	}
	return l, nil
}

// checkRefs verifies that every id the request points at exists. self is
// the id being updated, or 0 on create.
func (s *localService) checkRefs(ctx context.Context, self int64, req dtos.LocalRequest) error {
	z, err := s.zonaRepo.GetByID(ctx, req.ZonaID)
	if err != nil {
		return translateRepoErr(err, "Zona")
	}
	if z == nil {
		return utils.NewNotFoundError("Zona not found")
	}

	m, err := s.metrajeRepo.GetByID(ctx, req.MetrajeID)
	if err != nil {
		return translateRepoErr(err, "Metraje")
	}
	if m == nil {
		return utils.NewNotFoundError("Metraje not found")
	}

	if req.SubnivelDeID != nil {
		if *req.SubnivelDeID == self {
			return utils.NewConflictError("A local cannot be its own subnivel", utils.ErrConflict)
		}
		parent, err := s.repo.GetByID(ctx, *req.SubnivelDeID)
		if err != nil {
			return translateRepoErr(err, "Local")
		}
		if parent == nil {
			return utils.NewNotFoundError("Parent local not found")
		}
	}
	return nil
}

func applyLocalRequest(l *models.Local, req dtos.LocalRequest) {
	l.ZonaID = req.ZonaID
	l.MetrajeID = req.MetrajeID
	l.Estado = req.Estado
	if l.Estado == "" {
		l.Estado = models.EstadoDisponible
	}
	l.PrecioBase = req.PrecioBase
	l.Tipo = req.Tipo
	l.SubnivelDeID = req.SubnivelDeID
	l.ClienteID = req.ClienteID
}

