package locker

import (
	"errors"
	"fmt"

	"lockers/internal/pkg/errs"
	"lockers/internal/pkg/guard"
)

// CodeLength is the number of characters in every access code.
const CodeLength = 6

var ErrAccessCodeIsNotConstructed = errors.New("AccessCode must be created via NewAccessCode constructor")

// AccessCode is the shared secret that opens a booked locker. Generated codes are
// numeric; restored codes may be any ASCII alphanumerics of the same length.
type AccessCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewAccessCode validates the length and alphabet of value.
func NewAccessCode(value string) (AccessCode, error) {
	if value == "" {
		return AccessCode{}, errs.NewValueIsRequiredError("code")
	}

	if len(value) != CodeLength {
		return AccessCode{}, errs.NewValueIsInvalidErrorWithCause(
			"code",
			fmt.Errorf("length %d is not %d", len(value), CodeLength),
		)
	}

	for _, r := range value {
		if !isASCIIAlnum(r) {
			return AccessCode{}, errs.NewValueIsInvalidErrorWithCause(
				"code",
				fmt.Errorf("%q is not an alphanumeric character", r),
			)
		}
	}

	return AccessCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c AccessCode) Validate() error {
	return c.guard.Validate(ErrAccessCodeIsNotConstructed)
}

func (c AccessCode) String() string {
	return c.value
}

// Equals compares byte for byte.
func (c AccessCode) Equals(candidate string) bool {
	return c.value != "" && c.value == candidate
}

// EqualsIgnoreCase folds ASCII letters only, so a non-ASCII candidate never matches.
func (c AccessCode) EqualsIgnoreCase(candidate string) bool {
	if c.value == "" || len(c.value) != len(candidate) {
		return false
	}

	for i := range len(c.value) {
		if lowerASCII(c.value[i]) != lowerASCII(candidate[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
