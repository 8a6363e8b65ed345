package controllers

import (
	"context"
	"errors"
	"io"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/layout"
	"github.com/plazacomercial/locales-service/internal/models"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeCatalogService struct {
	groups []layout.Group
	err    error
}

func (f *fakeCatalogService) GroupedLocales(context.Context) ([]layout.Group, error) {
	return f.groups, f.err
}

type fakeLocalService struct {
	services.LocalService
	detail  *dtos.LocalDetailResponse
	created dtos.LocalRequest
}

func (f *fakeLocalService) GetDetail(_ context.Context, id int64) (*dtos.LocalDetailResponse, error) {
	if f.detail == nil || f.detail.ID != id {
		return nil, utils.NewNotFoundError("Local not found")
	}
	return f.detail, nil
}

func (f *fakeLocalService) Create(_ context.Context, req dtos.LocalRequest) (*models.Local, error) {
	f.created = req
	return &models.Local{ID: 10, ZonaID: req.ZonaID, MetrajeID: req.MetrajeID, Tipo: req.Tipo, Estado: models.EstadoDisponible}, nil
}

type fakeAuthService struct {
	services.AuthService
	loginErr error
}

func (f *fakeAuthService) Register(_ context.Context, req dtos.RegisterRequest) (*models.User, error) {
	return &models.User{ID: 1, Username: req.Username, Email: req.Email, Role: models.RoleCliente}, nil
}

func (f *fakeAuthService) Login(_ context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dtos.LoginResponse{
		User:    dtos.LoginUser{Username: req.Username},
		Tokens:  dtos.TokenPair{Refresh: "r", Access: "a"},
		Role:    models.RoleStaff,
		Message: services.LoginSuccessMessage,
	}, nil
}

type fakeClienteService struct {
	services.ClienteService
	exportErr error
}

func (f *fakeClienteService) Export(_ context.Context, w io.Writer) error {
	if f.exportErr != nil {
		return f.exportErr
	}
	_, err := w.Write([]byte("xlsx-bytes"))
	return err
}

var errBoom = errors.New("boom")
