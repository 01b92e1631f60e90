// Package account holds the identity directory's Account aggregate. Every caller of
// the locker service authenticates as exactly one account of one role.
package account
