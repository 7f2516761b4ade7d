// Package clock supplies the current time to the invoice store so
// tests can pin it.
package clock

import (
	"time"

	"go.uber.org/fx"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() Clock { return systemClock{} }

// Today formats the clock's current date as an ISO calendar date.
func Today(c Clock) string {
	return c.Now().Format("2006-01-02")
}

// DueDate formats the date the given number of days after the clock's
// current date, the default payment term for new invoices.
func DueDate(c Clock, days int) string {
	return c.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// Timestamp formats the clock's current instant as RFC3339, the
// representation stored in createdAt/updatedAt.
func Timestamp(c Clock) string {
	return c.Now().Format(time.RFC3339)
}

// Module wires the system clock.
var Module = fx.Module("clock",
	fx.Provide(NewSystemClock),
)
