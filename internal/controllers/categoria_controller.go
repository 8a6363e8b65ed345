package controllers

import (
	"net/http"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

type CategoriaController struct {
	svc services.CategoriaService
}

func NewCategoriaController(svc services.CategoriaService) *CategoriaController {
	return &CategoriaController{svc: svc}
}

func (c *CategoriaController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (c *CategoriaController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCategoriaRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	cat, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func (c *CategoriaController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Categoria deleted")
}
