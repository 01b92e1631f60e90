package services

import (
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/pkg/errs"
)

// Authorizer is the first check every use case runs: the principal must be
// authenticated and its role must be allowed to perform the operation.
type Authorizer struct {
	capabilities auth.Capabilities
}

func NewAuthorizer(capabilities auth.Capabilities) Authorizer {
	return Authorizer{capabilities: capabilities}
}

// Authorize returns an UnauthenticatedError for a principal that was not built by
// the identity directory and an UnauthorizedError when the role lacks op.
func (a Authorizer) Authorize(principal auth.Principal, op auth.Operation) error {
	if err := principal.Validate(); err != nil {
		return errs.NewUnauthenticatedErrorWithCause("no authenticated principal", err)
	}

	if !a.capabilities.Allows(principal.Role(), op) {
		return errs.NewUnauthorizedError(op.String(), principal.Role().String())
	}

	return nil
}
