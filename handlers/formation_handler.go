package handlers

import (
	"net/http"

	"github.com/seguro-calcio/team-manager/services"
)

type FormationHandler struct {
	formationService services.FormationService
}

func NewFormationHandler(formationService services.FormationService) *FormationHandler {
	return &FormationHandler{formationService: formationService}
}

func (h *FormationHandler) Latest(w http.ResponseWriter, r *http.Request) {
	formation, err := h.formationService.Latest(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, formation, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *FormationHandler) Save(w http.ResponseWriter, r *http.Request) {
	var input services.FormationInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	formation, err := h.formationService.Save(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, formation, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
