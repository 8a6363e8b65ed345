package controllers

import (
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type ZonaController struct {
	svc services.ZonaService
}

func NewZonaController(svc services.ZonaService) *ZonaController {
	return &ZonaController{svc: svc}
}

func (c *ZonaController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out := make([]dtos.ZonaResponse, 0, len(list))
	for _, z := range list {
		out = append(out, dtos.NewZonaResponse(z))
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ZonaController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	z, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewZonaResponse(z))
}

func (c *ZonaController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateZonaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	z, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewZonaResponse(z))
}

func (c *ZonaController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateZonaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	z, err := c.svc.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewZonaResponse(z))
}

func (c *ZonaController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Zona deleted")
}
