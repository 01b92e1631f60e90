// Package auth defines who may do what: the closed set of roles, the closed set of
// operations, and the capability table mapping one to the other.
//
// The table is data, not code. Adding an operation means adding one row here and
// nothing else in the domain.
package auth
