package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/order"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateOrder godoc
//
//	@Summary	Place a laundry order
//	@Tags		orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateOrderRequest	true	"order"
//	@Success	201		{object}	OrderResponse
//	@Failure	400		{object}	Error
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateOrderCommand(principal, req.Services, req.Weight)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newOrderResponse(o))
}

// ListOrders godoc
//
//	@Summary	List orders, the caller's own for customers
//	@Tags		orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	OrderResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery(principal))
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]OrderResponse, len(views))
	for i, v := range views {
		response[i] = orderViewResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	Error
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(principal, id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, orderViewResponse(view))
}

// UpdateOrder godoc
//
//	@Summary	Change the services or weight of an own order
//	@Tags		orders
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"order id"
//	@Param		body	body		UpdateOrderRequest	true	"fields to change"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	Error
//	@Router		/orders/{id} [patch]
func (s *Server) UpdateOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	var req UpdateOrderRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewUpdateOrderCommand(principal, id, order.Patch{Services: req.Services, Weight: req.Weight})
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, newOrderResponse(o))
}

// RequestOrderDeletion godoc
//
//	@Summary	Ask staff to delete an own order
//	@Tags		orders
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	202
//	@Failure	409	{object}	Error
//	@Router		/orders/{id}/request [delete]
func (s *Server) RequestOrderDeletion(c echo.Context) error {
	cmd, err := s.deletionCommand(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RequestOrderDeletion.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// FinalizeOrderDeletion godoc
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Security	BearerAuth
//	@Param		id	path	string	true	"order id"
//	@Success	204
//	@Failure	409	{object}	Error
//	@Router		/orders/{id} [delete]
func (s *Server) FinalizeOrderDeletion(c echo.Context) error {
	cmd, err := s.deletionCommand(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.FinalizeOrderDeletion.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deletionCommand(c echo.Context) (commands.DeletionCommand, error) {
	principal, err := principalFrom(c)
	if err != nil {
		return commands.DeletionCommand{}, err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return commands.DeletionCommand{}, err
	}
	return commands.NewDeletionCommand(principal, id)
}

func orderViewResponse(v queries.OrderView) OrderResponse {
	return OrderResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Services:   v.Services,
		Weight:     v.Weight,
		PaymentID:  v.PaymentID,
		LockerID:   v.LockerID,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		Lifecycle:  v.Lifecycle,
	}
}
