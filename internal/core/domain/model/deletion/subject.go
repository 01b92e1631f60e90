package deletion

import (
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"
)

// SubjectKind names the entity type a deletion request targets.
type SubjectKind string

const (
	SubjectOrder    SubjectKind = "order"
	SubjectPayment  SubjectKind = "payment"
	SubjectCustomer SubjectKind = "customer"
	SubjectCourier  SubjectKind = "courier"
)

func SubjectKindFromString(s string) (SubjectKind, error) {
	kind := SubjectKind(strings.ToLower(strings.TrimSpace(s)))
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

func (k SubjectKind) Validate() error {
	switch k {
	case SubjectOrder, SubjectPayment, SubjectCustomer, SubjectCourier:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("subject kind", fmt.Errorf("%q is not deletable", string(k)))
	}
}

func (k SubjectKind) String() string {
	return string(k)
}
