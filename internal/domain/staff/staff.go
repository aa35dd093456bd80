// Package staff defines the employee roster and the per-store cashier index.
package staff

import "github.com/shopspring/decimal"

// RoleCashier is the only role recorded as the handler of a transaction.
const RoleCashier = "Front-end Checkout Staff"

// Employee is a store employee.
type Employee struct {
	ID         string
	StoreID    string
	Age        int
	Gender     string
	Department string
	Role       string
	HourlyRate decimal.Decimal
}

// Roster holds employees and indexes cashier ids by store.
type Roster struct {
	employees []Employee
	cashiers  map[string][]string
}

// NewRoster indexes employees.
func NewRoster(employees []Employee) *Roster {
	r := &Roster{
		employees: employees,
		cashiers:  make(map[string][]string),
	}
	for _, e := range employees {
		if e.Role == RoleCashier {
			r.cashiers[e.StoreID] = append(r.cashiers[e.StoreID], e.ID)
		}
	}
	return r
}

// Employees returns the full roster.
func (r *Roster) Employees() []Employee {
	return r.employees
}

// Cashiers returns the cashier employee ids of a store.
func (r *Roster) Cashiers(storeID string) []string {
	return r.cashiers[storeID]
}
