package controllers

import (
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type LocalController struct {
	svc        services.LocalService
	catalogSvc services.CatalogService
}

func NewLocalController(svc services.LocalService, catalogSvc services.CatalogService) *LocalController {
	return &LocalController{svc: svc, catalogSvc: catalogSvc}
}

// GET /locales/grupos
func (c *LocalController) GruposHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := c.catalogSvc.GroupedLocales(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.GruposResponse{Grupos: groups})
}

func (c *LocalController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.LocalResponse, 0, len(list))
	for _, l := range list {
		out = append(out, dtos.NewLocalResponse(l))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *LocalController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := c.svc.GetDetail(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

func (c *LocalController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LocalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	l, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewLocalResponse(l))
}

func (c *LocalController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.LocalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	l, err := c.svc.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewLocalResponse(l))
}

func (c *LocalController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Local deleted")
}
