package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"agrimart-be/internal/order"
	"agrimart-be/internal/utils"

	"github.com/gorilla/mux"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the gateway bridge endpoints. They are intentionally left
// unauthenticated to match the checkout flow of the web client.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/create-order", h.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/verify-payment", h.VerifyPayment).Methods(http.MethodPost)
}

type createOrderRequest struct {
	CustomerID uint `json:"customerId"`
	Items      []struct {
		ProductID uint    `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	Address string `json:"address"`
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	info, err := h.svc.InitiateCheckout(r.Context(), req.CustomerID, items, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyAddress), errors.Is(err, order.ErrNoItems), errors.Is(err, order.ErrInvalidItem):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "Failed to create order", http.StatusInternalServerError)
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, info)
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	DBOrderID         uint   `json:"dbOrderId"`
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.svc.VerifyPayment(r.Context(),
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, req.DBOrderID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrOrderMismatch):
			utils.WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, order.ErrOrderNotFound):
			utils.WriteJSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"error":   "Order not found",
			})
		default:
			utils.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"success": false,
				"error":   "Payment verification failed",
			})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
