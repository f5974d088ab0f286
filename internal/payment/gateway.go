package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agrimart-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error)
}

type razorpayGateway struct {
	keyID      string
	keySecret  string
	httpClient *http.Client
}

func NewRazorpayGateway(keyID, keySecret string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// CreateOrder creates a gateway-side payment intent for the given amount in
// minor units.
func (g *razorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*GatewayOrder, error) {
	log := logger.L().With(
		zap.Int64("amount", amountMinor),
		zap.String("currency", currency),
		zap.String("receipt", receipt),
	)

	body := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", razorpayBaseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating gateway request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("creating gateway order")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read gateway response", zap.Error(err))
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("gateway returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gateway error: %s", string(bodyBytes))
	}

	var gw GatewayOrder
	if err := json.Unmarshal(bodyBytes, &gw); err != nil {
		log.Error("failed decoding gateway response", zap.Error(err))
		return nil, err
	}

	log.Info("gateway order created",
		zap.String("gateway_order_id", gw.ID),
		zap.String("status", gw.Status),
	)

	return &gw, nil
}
