package postgres

import (
	"lockers/internal/adapters/out/postgres/accountrepo"
	"lockers/internal/adapters/out/postgres/deletionrepo"
	"lockers/internal/adapters/out/postgres/lockerrepo"
	"lockers/internal/adapters/out/postgres/orderrepo"
	"lockers/internal/adapters/out/postgres/paymentrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&lockerrepo.LockerDTO{},
		&orderrepo.OrderDTO{},
		&paymentrepo.PaymentDTO{},
		&accountrepo.AccountDTO{},
		&deletionrepo.RequestDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
