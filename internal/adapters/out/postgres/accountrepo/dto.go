// Package accountrepo persists customer, courier, laundromat and admin accounts in
// a single table keyed by role.
package accountrepo

import (
	"time"

	"lockers/internal/core/domain/model/account"
	"lockers/internal/core/domain/model/auth"
	"lockers/internal/core/domain/model/deletion"
	"lockers/internal/core/domain/model/kernel"
)

// AccountDTO keeps e-mail, phone and vehicle unique within a role.
type AccountDTO struct {
	ID           string    `gorm:"size:36;primaryKey"`
	Role         string    `gorm:"size:20;not null;uniqueIndex:idx_accounts_role_email;uniqueIndex:idx_accounts_role_phone;uniqueIndex:idx_accounts_role_vehicle"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:idx_accounts_role_email"`
	Phone        string    `gorm:"size:32;not null;uniqueIndex:idx_accounts_role_phone"`
	PasswordHash string    `gorm:"size:100;not null"`
	Vehicle      *string   `gorm:"size:32;uniqueIndex:idx_accounts_role_vehicle"`
	CreatedAt    time.Time `gorm:"not null"`
	Lifecycle    string    `gorm:"size:20;not null"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(a *account.Account) AccountDTO {
	return AccountDTO{
		ID:           a.ID().String(),
		Role:         a.Role().String(),
		Name:         a.Name(),
		Email:        a.Email(),
		Phone:        a.Phone(),
		PasswordHash: a.PasswordHash(),
		Vehicle:      a.Vehicle(),
		CreatedAt:    a.CreatedAt(),
		Lifecycle:    a.Lifecycle().String(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	role, err := auth.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	lifecycle, err := deletion.LifecycleFromString(dto.Lifecycle)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(account.State{
		ID:           id,
		Role:         role,
		Name:         dto.Name,
		Email:        dto.Email,
		Phone:        dto.Phone,
		PasswordHash: dto.PasswordHash,
		Vehicle:      dto.Vehicle,
		CreatedAt:    dto.CreatedAt,
		Lifecycle:    lifecycle,
	})
}
