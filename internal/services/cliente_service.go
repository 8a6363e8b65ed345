package services

import (
	"context"
	"errors"
	"io"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/export"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/repositories"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type ClienteService interface {
	List(ctx context.Context) ([]dtos.ClienteResponse, error)
	Get(ctx context.Context, id int64) (*dtos.ClienteResponse, error)
	// Create stores the cliente and links it to req.LocalID atomically.
	Create(ctx context.Context, req dtos.CreateClienteRequest) (*dtos.ClienteResponse, error)
	Update(ctx context.Context, id int64, req dtos.UpdateClienteRequest) (*dtos.ClienteResponse, error)
	Delete(ctx context.Context, id int64) error
	// Export writes every cliente as an xlsx workbook.
	Export(ctx context.Context, w io.Writer) error
}

type clienteService struct {
	repo      repositories.ClienteRepository
	localRepo repositories.LocalRepository
}

func NewClienteService(repo repositories.ClienteRepository, localRepo repositories.LocalRepository) ClienteService {
	return &clienteService{repo: repo, localRepo: localRepo}
}

func (s *clienteService) List(ctx context.Context) ([]dtos.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateRepoErr(err, "Cliente")
	}
	out := make([]dtos.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		resp, err := s.withLocal(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *clienteService) Get(ctx context.Context, id int64) (*dtos.ClienteResponse, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withLocal(ctx, c)
}

func (s *clienteService) Create(ctx context.Context, req dtos.CreateClienteRequest) (*dtos.ClienteResponse, error) {
	l, err := s.localRepo.GetByID(ctx, req.LocalID)
	if err != nil {
		return nil, translateRepoErr(err, "Local")
	}
	if l == nil {
		return nil, utils.NewNotFoundError("Local not found")
	}
	if l.ClienteID != nil {
		return nil, utils.NewConflictError("Local already has a cliente", utils.ErrConflict)
	}

	c := req.ToModel()
	if err := s.repo.CreateForLocal(ctx, c, req.LocalID); err != nil {
		// the local may have been linked or deleted since the check above
		if errors.Is(err, utils.ErrConflict) {
			return nil, utils.NewConflictError("Local already has a cliente", err)
		}
		return nil, translateRepoErr(err, "Local")
	}
	utils.Logger.WithField("cliente_id", c.ID).WithField("local_id", req.LocalID).Info("cliente registered")
	return s.withLocal(ctx, c)
}

func (s *clienteService) Update(ctx context.Context, id int64, req dtos.UpdateClienteRequest) (*dtos.ClienteResponse, error) {
	var updated *models.Cliente
	err := s.repo.UpdateWithRetry(ctx, id, func(c *models.Cliente) error {
		req.Apply(c)
		updated = c
		return nil
	})
	if err != nil {
		return nil, translateRepoErr(err, "Cliente")
	}
	return s.withLocal(ctx, updated)
}

func (s *clienteService) Delete(ctx context.Context, id int64) error {
	return translateRepoErr(s.repo.Delete(ctx, id), "Cliente")
}

func (s *clienteService) Export(ctx context.Context, w io.Writer) error {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return translateRepoErr(err, "Cliente")
	}
	rows := make([]export.ClienteRow, 0, len(clientes))
	for _, c := range clientes {
		locales, err := s.localRepo.ListByClienteID(ctx, c.ID)
		if err != nil {
			return translateRepoErr(err, "Local")
		}
		row := export.ClienteRow{Cliente: c}
		if len(locales) > 0 {
			row.Local = locales[0]
		}
		rows = append(rows, row)
	}
	if err := export.WriteClientes(w, rows); err != nil {
		return utils.NewInternalError("Failed to build export", err)
	}
	return nil
}

/* ---------- internals ---------- */

func (s *clienteService) get(ctx context.Context, id int64) (*models.Cliente, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err, "Cliente")
	}
	if c == nil {
		return nil, utils.NewNotFoundError("Cliente not found")
	}
	return c, nil
}

func (s *clienteService) withLocal(ctx context.Context, c *models.Cliente) (*dtos.ClienteResponse, error) {
	locales, err := s.localRepo.ListByClienteID(ctx, c.ID)
	if err != nil {
		return nil, translateRepoErr(err, "Local")
	}
	resp := dtos.NewClienteResponse(c, locales)
	return &resp, nil
}
