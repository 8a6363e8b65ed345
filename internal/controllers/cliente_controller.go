package controllers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/plazacomercial/locales-service/internal/dtos"
	"github.com/plazacomercial/locales-service/internal/export"
	"github.com/plazacomercial/locales-service/internal/services"
	"github.com/plazacomercial/locales-service/internal/utils"
)

const clientesExportFilename = "clientes.xlsx"

type ClienteController struct {
	svc services.ClienteService
}

func NewClienteController(svc services.ClienteService) *ClienteController {
	return &ClienteController{svc: svc}
}

func (c *ClienteController) ListHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (c *ClienteController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	resp, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ClienteController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateClienteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.svc.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

func (c *ClienteController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateClienteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	resp, err := c.svc.Update(r.Context(), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *ClienteController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Cliente deleted")
}

// GET /clientes/export
func (c *ClienteController) ExportHandler(w http.ResponseWriter, r *http.Request) {
	// build in memory so a failure can still become a JSON error
	var buf bytes.Buffer
	if err := c.svc.Export(r.Context(), &buf); err != nil {
		utils.HandleAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+clientesExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		utils.Logger.WithError(err).Warn("failed to stream clientes export")
	}
}
