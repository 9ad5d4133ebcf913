package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"workout-api/internal/apperr"
	"workout-api/internal/domain"
	"workout-api/internal/logx"
	"workout-api/internal/pagination"
)

// TrainingCenterHandler handles HTTP requests for training center resources.
type TrainingCenterHandler struct {
	usecase trainingCenterUsecase
	logger  logx.Logger
}

// NewTrainingCenterHandler creates a new TrainingCenterHandler.
func NewTrainingCenterHandler(logger logx.Logger, uc trainingCenterUsecase) *TrainingCenterHandler {
	return &TrainingCenterHandler{usecase: uc, logger: logger}
}

// Create handles POST /centros_treinamento.
// @Summary Criar um novo centro de treinamento
// @Description Cria um novo centro de treinamento com nome, endereço e proprietário
// @Tags centros_treinamento
// @Accept json
// @Produce json
// @Param request body createTrainingCenterRequest true "Create training center payload"
// @Success 201 {object} trainingCenterDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 409 {object} ErrorResponse "nome already taken"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /centros_treinamento [post]
func (h *TrainingCenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTrainingCenterRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	tc := req.toModel()
	id, err := h.usecase.Create(r.Context(), tc)
	switch {
	case err == nil:
		w.Header().Set("Location", "/centros_treinamento/"+id.String())
		writeJSON(h.logger, w, r, http.StatusCreated, modelToResponse(*tc))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusConflict,
			fmt.Sprintf("training center with nome %q already exists", req.Nome))
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /centros_treinamento.
// @Summary Listar centros de treinamento
// @Description Lista os centros de treinamento com paginação e filtro opcional por nome
// @Tags centros_treinamento
// @Produce json
// @Param nome query string false "Filtro exato por nome"
// @Param limit query int false "Tamanho da página (1..100)"
// @Param offset query int false "Deslocamento da página"
// @Success 200 {object} trainingCenterPageResponse
// @Failure 400 {object} ErrorResponse "invalid limit/offset"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /centros_treinamento [get]
func (h *TrainingCenterHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	p, err := pagination.FromQuery(q)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}

	var f domain.TrainingCenterFilter
	if s := q.Get("nome"); s != "" {
		f.Nome = &s
	}

	page, err := h.usecase.List(r.Context(), f, p)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, pageToResponse(page))
}

// GetByID handles GET /centros_treinamento/{id}.
// @Summary Consultar um centro de treinamento
// @Description Consulta um centro de treinamento pelo id
// @Tags centros_treinamento
// @Produce json
// @Param id path string true "Identificador do centro de treinamento"
// @Success 200 {object} trainingCenterDTO
// @Failure 400 {object} ErrorResponse "invalid id"
// @Failure 404 {object} ErrorResponse "not found"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /centros_treinamento/{id} [get]
func (h *TrainingCenterHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	tc, err := h.usecase.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, modelToResponse(*tc))
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound,
			fmt.Sprintf("training center %s not found", id))
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PATCH /centros_treinamento/{id} with partial updates from the request body.
// @Summary Editar um centro de treinamento
// @Description Edita campos de um centro de treinamento pelo id; campos omitidos não são alterados
// @Tags centros_treinamento
// @Accept json
// @Produce json
// @Param id path string true "Identificador do centro de treinamento"
// @Param request body updateTrainingCenterRequest true "Update training center payload"
// @Success 200 {object} trainingCenterDTO
// @Failure 400 {object} ErrorResponse "invalid input"
// @Failure 404 {object} ErrorResponse "not found"
// @Failure 409 {object} ErrorResponse "nome already taken"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /centros_treinamento/{id} [patch]
func (h *TrainingCenterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateTrainingCenterRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	tc, err := h.usecase.UpdatePartial(r.Context(), req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, modelToResponse(*tc))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound,
			fmt.Sprintf("training center %s not found", id))
	case errors.Is(err, apperr.ErrConflict):
		msg := "nome already taken"
		if req.Nome != nil {
			msg = fmt.Sprintf("training center with nome %q already exists", *req.Nome)
		}
		writeError(h.logger, w, r, http.StatusConflict, msg)
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /centros_treinamento/{id}.
// @Summary Remover um centro de treinamento
// @Description Remove um centro de treinamento pelo id
// @Tags centros_treinamento
// @Param id path string true "Identificador do centro de treinamento"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "invalid id"
// @Failure 404 {object} ErrorResponse "not found"
// @Failure 500 {object} ErrorResponse "internal error"
// @Router /centros_treinamento/{id} [delete]
func (h *TrainingCenterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	err = h.usecase.Delete(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound,
			fmt.Sprintf("training center %s not found", id))
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
