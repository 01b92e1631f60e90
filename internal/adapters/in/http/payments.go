package http

import (
	"net/http"
	"strconv"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/payment"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CapturePayment godoc
//
//	@Summary	Charge a card and link the payment to the latest order
//	@Tags		payments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CapturePaymentRequest	true	"payment"
//	@Success	201		{object}	PaymentResponse
//	@Failure	400		{object}	Error
//	@Failure	503		{object}	Error
//	@Router		/payments [post]
func (s *Server) CapturePayment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CapturePaymentRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCapturePaymentCommand(principal, req.Amount, req.Currency, req.CardToken)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.h.CapturePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newPaymentResponse(p))
}

// ListPayments godoc
//
//	@Summary	List payments, the caller's own for customers
//	@Tags		payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	PaymentResponse
//	@Router		/payments [get]
func (s *Server) ListPayments(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListPayments.Handle(c.Request().Context(), queries.NewListPaymentsQuery(principal))
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]PaymentResponse, len(views))
	for i, v := range views {
		response[i] = paymentViewResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetPayment godoc
//
//	@Summary	Get a payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"payment id"
//	@Success	200	{object}	PaymentResponse
//	@Failure	404	{object}	Error
//	@Router		/payments/{id} [get]
func (s *Server) GetPayment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetPaymentQuery(principal, id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetPayment.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, paymentViewResponse(view))
}

// UpdatePayment godoc
//
//	@Summary	Correct the amount or date of an own payment
//	@Tags		payments
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"payment id"
//	@Param		body	body		UpdatePaymentRequest	true	"fields to change"
//	@Success	200		{object}	PaymentResponse
//	@Failure	404		{object}	Error
//	@Router		/payments/{id} [patch]
func (s *Server) UpdatePayment(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdatePaymentRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	patch := payment.Patch{Amount: req.Amount, PaymentDate: req.PaymentDate}
	cmd, err := commands.NewUpdatePaymentCommand(principal, id, patch)
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.h.UpdatePayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newPaymentResponse(p))
}

// RequestPaymentDeletion godoc
//
//	@Summary	Ask staff to delete an own payment record
//	@Tags		payments
//	@Security	BearerAuth
//	@Param		id	path	string	true	"payment id"
//	@Success	202
//	@Failure	409	{object}	Error
//	@Router		/payments/{id}/request [delete]
func (s *Server) RequestPaymentDeletion(c echo.Context) error {
	cmd, err := s.deletionCommand(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RequestPaymentDeletion.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// FinalizePaymentDeletion godoc
//
//	@Summary	Delete a payment record
//	@Tags		payments
//	@Security	BearerAuth
//	@Param		id	path	string	true	"payment id"
//	@Success	204
//	@Router		/payments/{id} [delete]
func (s *Server) FinalizePaymentDeletion(c echo.Context) error {
	cmd, err := s.deletionCommand(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.FinalizePaymentDeletion.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListDeletionRequests godoc
//
//	@Summary	List deletion requests
//	@Tags		deletion-requests
//	@Security	BearerAuth
//	@Produce	json
//	@Param		kind	query	string	false	"order, payment, customer or courier"
//	@Param		pending	query	bool	false	"only unprocessed requests"
//	@Success	200		{array}	DeletionRequestResponse
//	@Router		/deletion-requests [get]
func (s *Server) ListDeletionRequests(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	pending := false
	if raw := c.QueryParam("pending"); raw != "" {
		if pending, err = strconv.ParseBool(raw); err != nil {
			return s.fail(c, errs.NewValueIsInvalidErrorWithCause("pending", err))
		}
	}

	query, err := queries.NewListDeletionRequestsQuery(principal, c.QueryParam("kind"), pending)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListDeletionRequests.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]DeletionRequestResponse, len(views))
	for i, v := range views {
		response[i] = DeletionRequestResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

func paymentViewResponse(v queries.PaymentView) PaymentResponse {
	return PaymentResponse{
		ID:          v.ID,
		CustomerID:  v.CustomerID,
		Amount:      v.Amount,
		Currency:    v.Currency,
		PaymentDate: v.PaymentDate,
		Status:      v.Status,
		ChargeID:    v.ChargeID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
		Lifecycle:   v.Lifecycle,
	}
}
