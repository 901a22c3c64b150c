package domain_test

import (
	"converter/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Category
		ok   bool
	}{
		{in: "Length", want: domain.CategoryLength, ok: true},
		{in: "volume", want: domain.CategoryVolume, ok: true},
		{in: " TEMPERATURE ", want: domain.CategoryTemperature, ok: true},
		{in: "mass", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range cases {
		got, err := domain.ParseCategory(tc.in)
		if !tc.ok {
			require.ErrorIs(t, err, domain.ErrUnknownCategory, "input %q", tc.in)

			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestParseUnit(t *testing.T) {
	u, err := domain.ParseUnit(domain.CategoryLength, "meters")
	require.NoError(t, err)
	require.Equal(t, domain.UnitMeters, u)

	u, err = domain.ParseUnit(domain.CategoryVolume, "GALLONS")
	require.NoError(t, err)
	require.Equal(t, domain.UnitGallons, u)

	_, err = domain.ParseUnit(domain.CategoryLength, "Liters")
	require.ErrorIs(t, err, domain.ErrUnknownUnit)
	require.EqualError(t, err, `unknown unit "Liters" for category Length`)

	_, err = domain.ParseUnit(domain.Category("Mass"), "Grams")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestCategoryUnits(t *testing.T) {
	require.Equal(t, []domain.Unit{
		domain.UnitMeters, domain.UnitKilometers, domain.UnitFeet, domain.UnitYards, domain.UnitMiles,
	}, domain.CategoryLength.Units())
	require.Len(t, domain.CategoryVolume.Units(), 5)
	require.Len(t, domain.CategoryTemperature.Units(), 3)
	require.Nil(t, domain.Category("Mass").Units())

	// callers must not be able to mutate the table
	units := domain.CategoryLength.Units()
	units[0] = domain.UnitKelvin
	require.Equal(t, domain.UnitMeters, domain.CategoryLength.Units()[0])
}

func TestCategoryDefaultUnit(t *testing.T) {
	require.Equal(t, domain.UnitMeters, domain.CategoryLength.DefaultUnit())
	require.Equal(t, domain.UnitMilliliters, domain.CategoryVolume.DefaultUnit())
	require.Equal(t, domain.UnitCelsius, domain.CategoryTemperature.DefaultUnit())
	require.Empty(t, domain.Category("Mass").DefaultUnit())
}

func TestCategoryKind(t *testing.T) {
	require.Equal(t, domain.KindLinear, domain.CategoryLength.Kind())
	require.Equal(t, domain.KindLinear, domain.CategoryVolume.Kind())
	require.Equal(t, domain.KindAffine, domain.CategoryTemperature.Kind())
}

func TestUnitsBelongToExactlyOneCategory(t *testing.T) {
	seen := map[domain.Unit]domain.Category{}
	for _, c := range domain.Categories() {
		for _, u := range c.Units() {
			prev, dup := seen[u]
			require.False(t, dup, "unit %s in both %s and %s", u, prev, c)
			seen[u] = c

			require.True(t, c.Has(u))
		}
	}

	require.False(t, domain.CategoryLength.Has("Parsecs"))
	require.False(t, domain.CategoryLength.Has(domain.UnitLiters))
}
