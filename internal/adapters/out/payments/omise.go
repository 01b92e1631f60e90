// Package payments captures card payments through Omise.
package payments

import (
	"context"
	"fmt"
	"math"
	"strings"

	"lockers/internal/core/ports"
	"lockers/internal/pkg/errs"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

// Charger creates one charge at the provider.
type Charger interface {
	CreateCharge(ctx context.Context, op *operations.CreateCharge) (*omise.Charge, error)
}

// OmiseCharger sends charges with the omise-go client.
type OmiseCharger struct {
	client *omise.Client
}

func NewOmiseCharger(publicKey, secretKey string) (*OmiseCharger, error) {
	client, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("omise client: %w", err)
	}
	return &OmiseCharger{client: client}, nil
}

// CreateCharge gives up early when ctx is already done. The client's WithContext
// mutates the shared client, so it is not used per request.
func (c *OmiseCharger) CreateCharge(ctx context.Context, op *operations.CreateCharge) (*omise.Charge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	charge := &omise.Charge{}
	if err := c.client.Do(charge, op); err != nil {
		return nil, err
	}
	return charge, nil
}

// zeroDecimal lists currencies Omise charges in whole units.
var zeroDecimal = map[string]struct{}{
	"JPY": {},
}

// Gateway implements ports.PaymentGateway.
type Gateway struct {
	charger Charger
}

func NewGateway(charger Charger) (*Gateway, error) {
	if charger == nil {
		return nil, errs.NewValueIsRequiredError("charger")
	}
	return &Gateway{charger: charger}, nil
}

// Capture charges the card token. A declined card is an invalid input; any
// transport or provider failure is returned unclassified.
func (g *Gateway) Capture(ctx context.Context, req ports.CaptureRequest) (ports.CaptureResult, error) {
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	amount := minorUnits(req.Amount, currency)
	if amount <= 0 {
		return ports.CaptureResult{}, errs.NewValueIsOutOfRangeError("amount", req.Amount, "0.01", "unbounded")
	}

	charge, err := g.charger.CreateCharge(ctx, &operations.CreateCharge{
		Amount:      amount,
		Currency:    strings.ToLower(currency),
		Card:        req.CardToken,
		Description: req.Description,
	})
	if err != nil {
		return ports.CaptureResult{}, fmt.Errorf("omise create charge: %w", err)
	}

	if charge.Status == omise.ChargeFailed {
		reason := "card was declined"
		if charge.FailureMessage != nil && *charge.FailureMessage != "" {
			reason = *charge.FailureMessage
		}
		return ports.CaptureResult{}, errs.NewValueIsInvalidErrorWithCause("card", fmt.Errorf("%s", reason))
	}

	return ports.CaptureResult{
		ChargeID: charge.ID,
		Status:   string(charge.Status),
	}, nil
}

func minorUnits(amount float64, currency string) int64 {
	if _, ok := zeroDecimal[currency]; ok {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}
