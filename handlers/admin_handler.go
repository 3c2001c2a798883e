package handlers

import (
	"log/slog"
	"net/http"

	"github.com/seguro-calcio/team-manager/middleware"
	"github.com/seguro-calcio/team-manager/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	// Destructive and admin-gated, so record who asked for it.
	if userID, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		slog.Info("club data reset requested", slog.Int("user_id", userID))
	}

	if err := h.adminService.Reset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"status": "reset completed"}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
