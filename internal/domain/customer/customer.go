// Package customer defines the customer roster, the visit pool the order
// generator draws from, and the activity filter used to trim the exported
// roster to customers that actually ordered.
package customer

import (
	"fmt"

	"github.com/go-faster/errors"
)

// ErrEmptyPool is returned when a visit pool has no entries.
var ErrEmptyPool = errors.New("customer visit pool is empty")

// Recurrence is a customer's expected visit-frequency class.
type Recurrence string

const (
	Recurring    Recurrence = "Recurring"
	NonRecurring Recurrence = "Non-Recurring"
	OneTime      Recurrence = "One Time Customer"
)

// Customer is a shopper.
type Customer struct {
	ID         string
	Age        int
	Gender     string
	Member     bool
	Recurrence Recurrence
}

// NotFoundError reports a visit pool entry that is missing from the roster.
type NotFoundError struct {
	CustomerID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer %s not found", e.CustomerID)
}

// Directory indexes customers by id.
type Directory struct {
	customers []Customer
	byID      map[string]int
}

// NewDirectory indexes customers.
func NewDirectory(customers []Customer) *Directory {
	d := &Directory{
		customers: customers,
		byID:      make(map[string]int, len(customers)),
	}
	for i, c := range customers {
		d.byID[c.ID] = i
	}
	return d
}

// Get returns the customer with the given id.
func (d *Directory) Get(id string) (Customer, error) {
	i, ok := d.byID[id]
	if !ok {
		return Customer{}, &NotFoundError{CustomerID: id}
	}
	return d.customers[i], nil
}

// Customers returns the roster in its original order.
func (d *Directory) Customers() []Customer {
	return d.customers
}
