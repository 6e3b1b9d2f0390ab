package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/utils"
	"github.com/avdeyev/authgate/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.Admin.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Success: true, Users: users}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("invalid user id in path")
		writeError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateUser").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.Admin.UpdateUser(ctx, userID, update); err != nil {
		log.Err(err).Int64("id", userID).Msg("error updating user")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Int64("id", userID).Msg("user updated")

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "User updated"}, http.StatusOK)
}

func (h *Handler) listBlockedIPs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	blocks, err := h.services.Admin.ListBlockedIPs(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBlockedIPs").Msg("error listing blocked ips")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.BlockedIPsResponse{Success: true, BlockedIPs: blocks}, http.StatusOK)
}

func (h *Handler) clearBlockedIPs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.Admin.ClearBlockedIPs(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.clearBlockedIPs").Msg("error clearing blocked ips")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Msg("all blocks cleared")

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "All blocked IPs cleared"}, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.Admin.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.stats").Msg("error collecting statistics")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.StatsResponse{Success: true, Stats: stats}, http.StatusOK)
}
