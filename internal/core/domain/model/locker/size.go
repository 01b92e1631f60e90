package locker

import (
	"fmt"
	"strings"

	"lockers/internal/pkg/errs"
)

// Size is the capacity class of a locker.
type Size int

const (
	UnknownSize Size = iota
	Small
	Medium
	Large
)

var sizeNames = map[Size]string{
	Small:  "small",
	Medium: "medium",
	Large:  "large",
}

// SizeFromString parses "small", "medium" or "large", ignoring case.
func SizeFromString(s string) (Size, error) {
	for size, name := range sizeNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return size, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not one of small, medium, large", s))
}

func (s Size) Validate() error {
	if _, ok := sizeNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

func (s Size) String() string {
	if name, ok := sizeNames[s]; ok {
		return name
	}
	return "unknown"
}
