package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "$99.00", Amount(99, "$"))
	assert.Equal(t, "€0.50", Amount(0.5, "€"))
	assert.Equal(t, "$-12.34", Amount(-12.34, "$"))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "March 5, 2026", Date("2026-03-05"))
	assert.Equal(t, "not-a-date", Date("not-a-date"))
	assert.Equal(t, "", Date(""))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "2", Quantity(2))
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "0.25", Quantity(0.25))
	assert.Equal(t, "0", Quantity(0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "7.5%", Percent(7.5))
	assert.Equal(t, "10%", Percent(10))
}
