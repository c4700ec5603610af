package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/identity"
	"github.com/osse101/SlotMaster_Go/internal/logger"
)

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

// CreateUserRequest creates a guest identity from a display name
type CreateUserRequest struct {
	UserName string `json:"userName" validate:"required,max=64"`
}

// SharedUserIDResponse carries the resolved shared identity
type SharedUserIDResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// CreateUserResponse carries a new guest identity
type CreateUserResponse struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	OK     bool   `json:"ok"`
	UserID string `json:"userId"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// AvailabilityResponse answers check-login
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// HandleGetSharedUserID resolves the identity of the most recent player
// @Summary Resolve shared user id
// @Description Returns the user of the latest history write, or a fresh timestamp id
// @Tags identity
// @Produce json
// @Success 200 {object} SharedUserIDResponse
// @Failure 500 {object} ErrorResponse
// @Router /shared-user-id [get]
func HandleGetSharedUserID(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := svc.ResolveOrCreateSharedID(r.Context())
		if err != nil {
			respondServiceError(w, r, "Resolve shared user id", err)
			return
		}
		respondJSON(w, http.StatusOK, SharedUserIDResponse{Success: true, UserID: userID})
	}
}

// HandleListUsers lists the most recently active users
// @Summary List active users
// @Tags identity
// @Produce json
// @Success 200 {array} domain.UserSummary
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func HandleListUsers(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List users", err)
			return
		}
		if users == nil {
			users = []domain.UserSummary{}
		}
		respondJSON(w, http.StatusOK, users)
	}
}

// HandleCreateUser creates a guest identity
// @Summary Create guest user
// @Tags identity
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Display name"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func HandleCreateUser(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}

		userID, userName, err := svc.CreateUser(r.Context(), req.UserName)
		if err != nil {
			respondServiceError(w, r, "Create user", err)
			return
		}
		respondJSON(w, http.StatusCreated, CreateUserResponse{Success: true, UserID: userID, UserName: userName})
	}
}

// HandleRegister registers a username and its default game state
// @Summary Register
// @Tags identity
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Description Rejections (taken username, bad input) are reported as 200 with an error field
// @Success 200 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /register [post]
func HandleRegister(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := decodeCredentials(r, w, &req, "Register"); err != nil {
			return
		}

		userID, err := svc.Register(writeContext(r), req.Username, req.Password)
		if err != nil {
			respondCredentialError(w, r, "Register", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", userID)
		respondJSON(w, http.StatusOK, RegisterResponse{OK: true, UserID: userID})
	}
}

// HandleLogin verifies credentials
// @Summary Login
// @Tags identity
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Description Wrong credentials are reported as 200 with an error field
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /login [post]
func HandleLogin(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := decodeCredentials(r, w, &req, "Login"); err != nil {
			return
		}

		userID, err := svc.Login(writeContext(r), req.Username, req.Password)
		if err != nil {
			respondCredentialError(w, r, "Login", err)
			return
		}
		respondJSON(w, http.StatusOK, LoginResponse{OK: true, Username: req.Username, UserID: userID})
	}
}

// HandleCheckLogin reports whether a username is free
// @Summary Check username availability
// @Tags identity
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} AvailabilityResponse
// @Failure 500 {object} ErrorResponse
// @Router /check-login/{username} [get]
func HandleCheckLogin(svc identity.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		available, err := svc.CheckLoginAvailable(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			respondServiceError(w, r, "Check login", err)
			return
		}
		respondJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
	}
}
