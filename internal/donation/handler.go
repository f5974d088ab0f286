package donation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"agrimart-be/internal/utils"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 32 << 20 // 32 MiB multipart memory limit

type Handler struct {
	svc   Service
	store *ImageStore
}

func NewHandler(svc Service, store *ImageStore) *Handler {
	return &Handler{svc: svc, store: store}
}

// FarmerRoutes mounts the farmer-facing endpoints.
func (h *Handler) FarmerRoutes(r *mux.Router) {
	r.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)
	r.HandleFunc("/my-donations", h.MyDonations).Methods(http.MethodGet)
}

// AdminRoutes mounts the admin review endpoints.
func (h *Handler) AdminRoutes(r *mux.Router) {
	r.HandleFunc("", h.ListAll).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}/status", h.SetStatus).Methods(http.MethodPut)
	r.HandleFunc("/fund-distribute/{id:[0-9]+}", h.DistributeFunds).Methods(http.MethodPut)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	farmerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.WriteJSONMessage(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var files []string
	if r.MultipartForm != nil {
		uploaded, err := h.store.Save(r.MultipartForm.File["images"])
		if err != nil {
			utils.WriteJSONMessage(w, "failed to store images", http.StatusInternalServerError)
			return
		}
		files = uploaded
	}

	amount, _ := strconv.ParseFloat(r.FormValue("amountNeeded"), 64)

	d := Donation{
		FarmerID:        farmerID,
		Images:          files,
		AccountNumber:   r.FormValue("bankAccountNo"),
		IFSCCode:        r.FormValue("IFSCCode"),
		BankHolderName:  r.FormValue("bankHolderName"),
		BankName:        r.FormValue("bankName"),
		BranchName:      r.FormValue("branchName"),
		DonationPurpose: r.FormValue("donationPurpose"),
		AmountRequired:  amount,
		Note:            r.FormValue("note"),
	}

	created, err := h.svc.Submit(r.Context(), d)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoImages), errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidAmount):
			utils.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Donation submitted successfully",
		"donation": created,
	})
}

func (h *Handler) MyDonations(w http.ResponseWriter, r *http.Request) {
	farmerID, _ := utils.GetUserIDFromContext(r.Context())

	donations, err := h.svc.ListByFarmer(r.Context(), farmerID)
	if err != nil {
		utils.WriteJSONMessage(w, "Server Error", http.StatusInternalServerError)
		return
	}

	// Absolutize stored filenames against the request host.
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	for i := range donations {
		for j, img := range donations[i].Images {
			donations[i].Images[j] = fmt.Sprintf("%s://%s/uploads/%s", scheme, r.Host, img)
		}
	}

	utils.WriteJSON(w, http.StatusOK, donations)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	donations, err := h.svc.ListAll(r.Context())
	if err != nil {
		utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, donations)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONMessage(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.WriteJSONMessage(w, "Donation not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, d)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONMessage(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONMessage(w, "invalid request body", http.StatusBadRequest)
		return
	}

	d, err := h.svc.SetStatus(r.Context(), id, DonationStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			utils.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			utils.WriteJSONMessage(w, "Donation not found", http.StatusNotFound)
		default:
			utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Status updated",
		"donation": d,
	})
}

func (h *Handler) DistributeFunds(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONMessage(w, "invalid donation id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.DistributeFunds(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotApproved):
			utils.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			utils.WriteJSONMessage(w, "Donation not found", http.StatusNotFound)
		default:
			utils.WriteJSONMessage(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Fund distribution updated successfully",
		"donation": d,
	})
}
