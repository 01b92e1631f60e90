package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateLocker godoc
//
//	@Summary	Register a locker
//	@Tags		lockers
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateLockerRequest	true	"locker"
//	@Success	201		{object}	LockerResponse
//	@Failure	409		{object}	Error
//	@Router		/lockers [post]
func (s *Server) CreateLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CreateLockerRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateLockerCommand(principal, req.Number, req.Location, req.Size)
	if err != nil {
		return s.fail(c, err)
	}

	l, err := s.h.CreateLocker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, newLockerResponse(l))
}

// ListLockers godoc
//
//	@Summary	List lockers
//	@Tags		lockers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		filter	query		string	false	"all, available, occupied or booked"	default(available)
//	@Success	200		{array}		LockerResponse
//	@Failure	403		{object}	Error
//	@Router		/lockers [get]
func (s *Server) ListLockers(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	raw := c.QueryParam("filter")
	if raw == "" {
		raw = string(queries.FilterAvailable)
	}
	filter, err := queries.LockerFilterFromString(raw)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewListLockersQuery(principal, filter)
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.h.ListLockers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]LockerResponse, len(views))
	for i, v := range views {
		response[i] = lockerViewResponse(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetLocker godoc
//
//	@Summary	Get a locker
//	@Tags		lockers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"locker id"
//	@Success	200	{object}	LockerResponse
//	@Failure	404	{object}	Error
//	@Router		/lockers/{id} [get]
func (s *Server) GetLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := lockerIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLockerQuery(principal, id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.h.GetLocker.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, lockerViewResponse(view))
}

// DeleteLocker godoc
//
//	@Summary	Remove a locker that is not occupied
//	@Tags		lockers
//	@Security	BearerAuth
//	@Param		id	path	int	true	"locker id"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/lockers/{id} [delete]
func (s *Server) DeleteLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := lockerIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteLockerCommand(principal, id)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.DeleteLocker.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// BookLocker godoc
//
//	@Summary	Book an available locker for the caller's latest order
//	@Tags		lockers
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"locker id"
//	@Success	200	{object}	BookingResponse
//	@Failure	400	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/lockers/{id}/book [post]
func (s *Server) BookLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := lockerIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewBookLockerCommand(principal, id)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.h.BookLocker.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, BookingResponse{LockerID: uint64(result.LockerID), Code: result.Code})
}

// UnlockLocker godoc
//
//	@Summary	Open an occupied locker with its access code
//	@Tags		lockers
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int			true	"locker id"
//	@Param		body	body	CodeRequest	true	"access code"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	429	{object}	Error
//	@Router		/lockers/{id}/unlock [post]
func (s *Server) UnlockLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := lockerIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CodeRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewUnlockLockerCommand(principal, id, req.Code)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.UnlockLocker.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LockLocker godoc
//
//	@Summary	Close an available locker again with the issued code
//	@Tags		lockers
//	@Security	BearerAuth
//	@Accept		json
//	@Param		id		path	int			true	"locker id"
//	@Param		body	body	CodeRequest	true	"access code"
//	@Success	204
//	@Failure	400	{object}	Error
//	@Failure	429	{object}	Error
//	@Router		/lockers/{id}/lock [post]
func (s *Server) LockLocker(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := lockerIDParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req CodeRequest
	if err = c.Bind(&req); err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewLockLockerCommand(principal, id, req.Code)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.LockLocker.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func lockerViewResponse(v queries.LockerView) LockerResponse {
	return LockerResponse{
		ID:       v.ID,
		Number:   v.Number,
		Location: v.Location,
		Size:     v.Size,
		Status:   v.Status,
	}
}
