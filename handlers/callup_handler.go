package handlers

import (
	"net/http"

	"github.com/seguro-calcio/team-manager/services"
)

type CallupHandler struct {
	callupService services.CallupService
}

func NewCallupHandler(callupService services.CallupService) *CallupHandler {
	return &CallupHandler{callupService: callupService}
}

func (h *CallupHandler) List(w http.ResponseWriter, r *http.Request) {
	callups, err := h.callupService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, callups, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CallupHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "callupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	callup, err := h.callupService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, callup, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CallupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CallupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	callup, err := h.callupService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, callup, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CallupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "callupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CallupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	callup, err := h.callupService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, callup, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *CallupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "callupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.callupService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
