package user

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"agrimart-be/internal/utils"

	"github.com/gorilla/mux"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// AuthRoutes mounts the public /api/auth endpoints.
func (h *Handler) AuthRoutes(r *mux.Router) {
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

// UserRoutes mounts the protected /api/users endpoints.
func (h *Handler) UserRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/{id}", h.UpdateProfile).Methods(http.MethodPut)
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteJSONError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone, Role(req.Role))
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if utils.GetUserRoleFromContext(r.Context()) != string(RoleAdmin) {
		utils.WriteJSONMessage(w, "Access denied. Admins only.", http.StatusForbidden)
		return
	}

	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	callerID, _ := utils.GetUserIDFromContext(r.Context())
	if callerID != id {
		utils.WriteJSONMessage(w, "Not authorized", http.StatusForbidden)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), id, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.WriteJSONMessage(w, "User not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, u)
}
