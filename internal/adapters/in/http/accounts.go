package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Login godoc
//
//	@Summary	Exchange credentials for a bearer token
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginRequest	true	"credentials"
//	@Success	200		{object}	TokenResponse
//	@Failure	401		{object}	Error
//	@Router		/auth/login [post]
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewLoginCommand(req.Role, req.Email, req.Password)
	if err != nil {
		// An unknown role must look like any other failed login.
		return s.fail(c, errs.NewUnauthenticatedErrorWithCause("invalid email or password", err))
	}

	token, err := s.h.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// RegisterCustomer godoc
//
//	@Summary	Register a customer account
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterCustomerRequest	true	"customer"
//	@Success	201		{object}	AccountResponse
//	@Failure	400		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/customers [post]
func (s *Server) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		return s.fail(c, err)
	}

	acc, err := s.h.RegisterCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newAccountResponse(acc))
}

// RequestAccountDeletion godoc
//
//	@Summary	Ask staff to delete the caller's own account
//	@Tags		accounts
//	@Security	BearerAuth
//	@Success	202
//	@Failure	409	{object}	Error
//	@Router		/accounts/me/request [delete]
func (s *Server) RequestAccountDeletion(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.RequestAccountDeletion.Handle(c.Request().Context(), principal); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusAccepted)
}

// DeleteAccount finalizes the deletion of a customer or courier, or removes a
// staff account outright.
//
//	@Summary	Delete an account
//	@Tags		accounts
//	@Security	BearerAuth
//	@Param		role	path	string	true	"customer, courier, laundromat or admin"
//	@Param		id		path	string	true	"account id"
//	@Success	204
//	@Failure	403	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/accounts/{role}/{id} [delete]
func (s *Server) DeleteAccount(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	role, err := auth.RoleFromString(c.Param("role"))
	if err != nil {
		return s.fail(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAccountCommand(principal, role, id)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	if role.IsStaff() {
		err = s.h.DeleteStaffAccount.Handle(ctx, cmd)
	} else {
		err = s.h.FinalizeAccountDeletion.Handle(ctx, cmd)
	}
	if err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
