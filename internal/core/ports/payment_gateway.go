package ports

import (
	"context"
)

// CaptureRequest asks the gateway to charge a tokenized card.
type CaptureRequest struct {
	Amount      float64
	Currency    string
	CardToken   string
	Description string
}

// CaptureResult is what the gateway returned for a successful capture.
type CaptureResult struct {
	ChargeID string
	Status   string
}

// PaymentGateway captures payments with an external provider.
type PaymentGateway interface {
	Capture(ctx context.Context, req CaptureRequest) (CaptureResult, error)
}
