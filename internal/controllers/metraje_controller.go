package controllers

import (
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type MetrajeController struct {
	svc services.MetrajeService
}

func NewMetrajeController(svc services.MetrajeService) *MetrajeController {
	return &MetrajeController{svc: svc}
}

func (c *MetrajeController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (c *MetrajeController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateMetrajeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

func (c *MetrajeController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Metraje deleted")
}
