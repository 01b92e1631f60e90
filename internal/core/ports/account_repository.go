package ports

import (
	"context"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for accounts of every role.
type AccountRepository interface {
	// Add persists a new account. Returns a ConflictError on a duplicate e-mail, phone
	// or vehicle registration within the role.
	Add(ctx context.Context, aggregate *account.Account) error

	Update(ctx context.Context, aggregate *account.Account) error

	// Delete removes an account row. Used for staff accounts only.
	Delete(ctx context.Context, role auth.Role, id kernel.UUID) error

	Get(ctx context.Context, role auth.Role, id kernel.UUID) (*account.Account, error)

	GetByEmail(ctx context.Context, role auth.Role, email string) (*account.Account, error)

	// CountByRole counts accounts of a role, deleted ones excluded.
	CountByRole(ctx context.Context, role auth.Role) (int64, error)
}
