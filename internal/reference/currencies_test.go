package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolFor(t *testing.T) {
	assert.Equal(t, "$", SymbolFor("USD"))
	assert.Equal(t, "€", SymbolFor("EUR"))
	assert.Equal(t, "₹", SymbolFor("INR"))
}

func TestSymbolFor_UnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, DefaultSymbol, SymbolFor("XYZ"))
	assert.Equal(t, DefaultSymbol, SymbolFor(""))
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	list := Currencies()
	assert.Len(t, list, 10)

	list[0].Symbol = "mutated"
	assert.Equal(t, "$", SymbolFor("USD"))
}
