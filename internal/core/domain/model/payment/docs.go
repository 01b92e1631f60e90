// Package payment holds the Payment aggregate: a captured charge owned by a customer.
package payment
