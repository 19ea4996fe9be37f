package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testVariant() *Variant {
	return &Variant{
		Name:     "test",
		BoardLen: 7,
		Layout: []string{
			".......",
			".A...A.",
			".......",
			".D.K.D.",
			".......",
			".A...A.",
			".......",
		},
		Escape:          CornerEscape,
		KingCapture:     KingCaptureTwoSides,
		ArmedKing:       true,
		StalemateLoss:   true,
		RepetitionLimit: 3,
	}
}

func TestPresets(t *testing.T) {
	t.Run("loading every built-in preset", func(t *testing.T) {
		wantLens := map[string]uint8{"brandubh": 7, "tablut": 9, "copenhagen": 11}

		names := PresetNames()
		require.Len(t, names, len(wantLens), "Every built-in preset should be listed")

		for _, name := range names {
			v, err := NewVariant(name)
			require.NoError(t, err, "Preset %s should load", name)
			require.NoError(t, v.Validate(), "Preset %s should be consistent", name)
			require.Equal(t, wantLens[name], v.BoardLen, "Preset %s should have the expected board size", name)
		}
	})

	t.Run("requesting an unknown preset", func(t *testing.T) {
		_, err := NewVariant("hnefatafl-xxl")
		require.Error(t, err, "Unknown preset names should be rejected")
	})
}

func TestVariantValidate(t *testing.T) {
	t.Run("accepting a consistent variant", func(t *testing.T) {
		require.NoError(t, testVariant().Validate())
	})

	t.Run("rejecting an even board length", func(t *testing.T) {
		v := testVariant()
		v.BoardLen = 8
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr, "Even board lengths should fail as configuration errors")
	})

	t.Run("rejecting a short layout row", func(t *testing.T) {
		v := testVariant()
		v.Layout[2] = "....."
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr)
	})

	t.Run("rejecting a second king", func(t *testing.T) {
		v := testVariant()
		v.Layout[5] = ".A.K.A."
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr, "Exactly one king is required")
	})

	t.Run("rejecting a soldier on a corner", func(t *testing.T) {
		v := testVariant()
		v.Layout[0] = "A......"
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr, "Corners are restricted tiles")
	})

	t.Run("rejecting a soldier on the throne", func(t *testing.T) {
		v := testVariant()
		v.Layout[3] = ".D.KD.." // defender moved onto the throne's neighbor is fine
		require.NoError(t, v.Validate())
		v.Layout[3] = ".D.D.D."
		v.Layout[2] = "...K..."
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr, "The throne is a restricted tile")
	})

	t.Run("rejecting negative limits", func(t *testing.T) {
		v := testVariant()
		v.RepetitionLimit = -1
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr)
	})

	t.Run("rejecting an unknown layout rune", func(t *testing.T) {
		v := testVariant()
		v.Layout[0] = "...X..."
		var cfgErr *ConfigurationError
		require.ErrorAs(t, v.Validate(), &cfgErr)
	})
}

func TestVariantGeometry(t *testing.T) {
	v := testVariant()

	require.Equal(t, Tile{Row: 3, Col: 3}, v.Throne())
	require.True(t, v.IsCorner(Tile{Row: 0, Col: 6}))
	require.False(t, v.IsCorner(Tile{Row: 0, Col: 3}))
	require.True(t, v.IsEdge(Tile{Row: 0, Col: 3}))
	require.False(t, v.IsEdge(Tile{Row: 1, Col: 3}))

	t.Run("corner escape", func(t *testing.T) {
		require.True(t, v.IsEscape(Tile{Row: 6, Col: 0}))
		require.False(t, v.IsEscape(Tile{Row: 6, Col: 3}), "Edges should not be escapes under corner escape")
	})

	t.Run("edge escape", func(t *testing.T) {
		e := testVariant()
		e.Escape = EdgeEscape
		require.True(t, e.IsEscape(Tile{Row: 6, Col: 3}))
		require.False(t, e.IsEscape(Tile{Row: 5, Col: 3}))
	})

	t.Run("occupancy restrictions", func(t *testing.T) {
		require.True(t, v.CanOccupy(King, v.Throne()), "The king may rest anywhere")
		require.True(t, v.CanOccupy(King, Tile{Row: 0, Col: 0}))
		require.False(t, v.CanOccupy(AttackerSoldier, v.Throne()))
		require.False(t, v.CanOccupy(DefenderSoldier, Tile{Row: 0, Col: 0}))
		require.True(t, v.CanOccupy(AttackerSoldier, Tile{Row: 0, Col: 1}))
	})
}

func TestConfigurationErrorMessage(t *testing.T) {
	v := testVariant()
	v.BoardLen = 4
	err := v.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "test", "The message should name the variant")
	require.False(t, errors.Is(err, ErrIllegalMove), "Configuration errors are distinct from play errors")
}
