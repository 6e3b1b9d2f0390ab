package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avdeyev/authgate/internal/logger"
	"github.com/avdeyev/authgate/internal/service"
	"github.com/avdeyev/authgate/internal/store"
	"github.com/avdeyev/authgate/internal/utils"
	"github.com/avdeyev/authgate/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.Auth.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Str("username", req.Username).Msg("username already exists")
			writeError(w, "Username already exists", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("username", req.Username).Msg("email already exists")
			writeError(w, "Email already exists", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, models.UserResponse{
		Success: true,
		Message: "Registration successful",
		User:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	source := utils.ClientIP(r)

	user, err := h.services.Auth.Login(ctx, source, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIPBlocked) || errors.Is(err, service.ErrTooManyAttempts):
			log.Warn().Str("source", source).Msg("login rejected by lockout policy")
			writeError(w, "Too many failed login attempts. Try again later.", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrAccountDisabled):
			log.Warn().Str("source", source).Str("username", req.Username).Msg("login into disabled account")
			writeError(w, "Account is disabled", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("source", source).Msg("invalid login data provided")
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// unknown username and wrong password are indistinguishable
			log.Warn().Str("source", source).Msg("invalid credentials")
			writeError(w, "Invalid username or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("source", source).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Info().Int64("id", user.ID).Str("source", source).Msg("user successfully logged in")

	utils.WriteJSON(w, models.UserResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	}, http.StatusOK)
}
