package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	c := WithDefaults()
	assert.Equal(t, []string{"Destroyer", "Submarine", "Cruiser", "Battleship", "Carrier"}, c.Names())
	assert.Equal(t, c.Names(), c.Names(), "order must be stable")

	want := map[string]int{"Destroyer": 2, "Submarine": 3, "Cruiser": 3, "Battleship": 4, "Carrier": 5}
	for _, s := range c.Ships() {
		assert.Equal(t, want[s.Name], s.Length, s.Name)
		assert.False(t, s.Sunk, s.Name)
	}
}

func TestCatalogueSetSunk(t *testing.T) {
	c := WithDefaults()
	require.NoError(t, c.SetSunk("Cruiser", true))
	s, err := c.Ship("Cruiser")
	require.NoError(t, err)
	assert.True(t, s.Sunk)

	before := c.Ships()
	assert.ErrorIs(t, c.SetSunk("Rowboat", true), ErrUnknownShipType)
	assert.Equal(t, before, c.Ships())

	_, err = c.Ship("Rowboat")
	assert.ErrorIs(t, err, ErrUnknownShipType)
}

func TestNewCatalogueCustomFleet(t *testing.T) {
	c, err := NewCatalogue(ShipType{Name: "PT", Length: 1}, ShipType{Name: "Tanker", Length: 6})
	require.NoError(t, err)
	assert.Equal(t, []string{"PT", "Tanker"}, c.Names())
	assert.Equal(t, 2, c.Len())
}

func TestNewCatalogueRejectsBadDefinitions(t *testing.T) {
	cases := []struct {
		name  string
		ships []ShipType
	}{
		{"empty name", []ShipType{{Name: " ", Length: 2}}},
		{"zero length", []ShipType{{Name: "A", Length: 0}}},
		{"duplicate", []ShipType{{Name: "A", Length: 2}, {Name: "A", Length: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalogue(tc.ships...)
			assert.ErrorIs(t, err, ErrInvalidShipType)
		})
	}
}

func TestShipsReturnsCopy(t *testing.T) {
	c := WithDefaults()
	ships := c.Ships()
	ships[0].Sunk = true
	s, _ := c.Ship("Destroyer")
	assert.False(t, s.Sunk)
}
