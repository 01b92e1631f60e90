package http

import (
	"time"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/locker"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/core/domain/model/payment"
)

type LoginRequest struct {
	Role     string `json:"role" example:"customer"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"s3cret-pass"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Phone    string `json:"phone" example:"+15550100"`
	Password string `json:"password" example:"s3cret-pass"`
}

type AccountResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func newAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID().String(),
		Role:      a.Role().String(),
		Name:      a.Name(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		CreatedAt: a.CreatedAt(),
	}
}

type CreateLockerRequest struct {
	Number   string `json:"number" example:"L-100"`
	Location string `json:"location" example:"Building A, ground floor"`
	Size     string `json:"size" example:"medium"`
}

// LockerResponse never carries an access code.
type LockerResponse struct {
	ID       uint64 `json:"id"`
	Number   string `json:"number"`
	Location string `json:"location"`
	Size     string `json:"size"`
	Status   string `json:"status"`
}

func newLockerResponse(l *locker.Locker) LockerResponse {
	return LockerResponse{
		ID:       uint64(l.ID()),
		Number:   l.Number(),
		Location: l.Location(),
		Size:     l.Size().String(),
		Status:   l.Status().String(),
	}
}

type BookingResponse struct {
	LockerID uint64 `json:"locker_id"`
	Code     string `json:"code"`
}

type CodeRequest struct {
	Code string `json:"code" example:"482913"`
}

type CreateOrderRequest struct {
	Services string  `json:"services" example:"wash and fold"`
	Weight   float64 `json:"weight" example:"4.5"`
}

// UpdateOrderRequest changes only the fields present in the body.
type UpdateOrderRequest struct {
	Services *string  `json:"services,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type OrderResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Services   string    `json:"services"`
	Weight     float64   `json:"weight"`
	PaymentID  *string   `json:"payment_id"`
	LockerID   *uint64   `json:"locker_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Lifecycle  string    `json:"lifecycle"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Services:   o.Services(),
		Weight:     o.Weight(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
		Lifecycle:  o.Lifecycle().String(),
	}
	if id := o.PaymentID(); id != nil {
		s := id.String()
		resp.PaymentID = &s
	}
	if id := o.LockerID(); id != nil {
		v := uint64(*id)
		resp.LockerID = &v
	}
	return resp
}

type CapturePaymentRequest struct {
	Amount    float64 `json:"amount" example:"350"`
	Currency  string  `json:"currency" example:"THB"`
	CardToken string  `json:"card_token" example:"tokn_test_5xyz"`
}

type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}

type PaymentResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	ChargeID    string    `json:"charge_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Lifecycle   string    `json:"lifecycle"`
}

func newPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID().String(),
		CustomerID:  p.CustomerID().String(),
		Amount:      p.Amount(),
		Currency:    p.Currency(),
		PaymentDate: p.PaymentDate(),
		Status:      p.Status(),
		ChargeID:    p.ChargeID(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		Lifecycle:   p.Lifecycle().String(),
	}
}

type DeletionRequestResponse struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	SubjectID   string     `json:"subject_id"`
	RequestedBy string     `json:"requested_by"`
	RequestedAt time.Time  `json:"requested_at"`
	Processed   bool       `json:"processed"`
	ProcessedBy *string    `json:"processed_by"`
	ProcessedAt *time.Time `json:"processed_at"`
}
