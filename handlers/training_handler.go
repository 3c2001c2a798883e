package handlers

import (
	"net/http"

	"github.com/seguro-calcio/team-manager/services"
)

type TrainingHandler struct {
	trainingService services.TrainingService
}

func NewTrainingHandler(trainingService services.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	trainings, err := h.trainingService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, trainings, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "trainingID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	training, err := h.trainingService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, training, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.TrainingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	training, err := h.trainingService.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, training, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "trainingID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.TrainingInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	training, err := h.trainingService.Update(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, training, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDParam(r, "trainingID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.trainingService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
