// Package lockerrepo persists locker aggregates with GORM.
package lockerrepo

import (
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/core/domain/model/locker"
)

// LockerDTO is the row layout of a locker. The id is assigned by the database.
type LockerDTO struct {
	ID         uint64  `gorm:"primaryKey;autoIncrement"`
	Number     string  `gorm:"size:50;not null;uniqueIndex"`
	Location   string  `gorm:"size:255;not null"`
	Size       string  `gorm:"size:10;not null"`
	Status     string  `gorm:"size:10;not null;index"`
	Code       *string `gorm:"size:6"`
	IssuedCode *string `gorm:"size:6"`
}

func (LockerDTO) TableName() string {
	return "lockers"
}

func fromDomain(l *locker.Locker) LockerDTO {
	return LockerDTO{
		ID:         uint64(l.ID()),
		Number:     l.Number(),
		Location:   l.Location(),
		Size:       l.Size().String(),
		Status:     l.Status().String(),
		Code:       codeToString(l.Code()),
		IssuedCode: codeToString(l.IssuedCode()),
	}
}

// ToDomain restores a locker from its row. Exported for the invariant audit,
// which scans rows without going through a unit of work.
func ToDomain(dto LockerDTO) (*locker.Locker, error) {
	size, err := locker.SizeFromString(dto.Size)
	if err != nil {
		return nil, err
	}

	status, err := locker.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	code, err := codeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	issued, err := codeFromString(dto.IssuedCode)
	if err != nil {
		return nil, err
	}

	return locker.RestoreLocker(kernel.ID(dto.ID), dto.Number, dto.Location, size, status, code, issued)
}

func codeToString(code *locker.AccessCode) *string {
	if code == nil {
		return nil
	}
	s := code.String()
	return &s
}

func codeFromString(s *string) (*locker.AccessCode, error) {
	if s == nil {
		return nil, nil
	}
	code, err := locker.NewAccessCode(*s)
	if err != nil {
		return nil, err
	}
	return &code, nil
}
