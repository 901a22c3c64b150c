package domain

import (
	"strings"
)

// Category groups units that measure the same quantity.
type Category string

const (
	// CategoryLength measures distance. Its base unit is UnitMeters.
	CategoryLength Category = "Length"
	// CategoryVolume measures capacity. Its base unit is UnitMilliliters.
	CategoryVolume Category = "Volume"
	// CategoryTemperature measures temperature. Its scales have different
	// zero points, so it has no base unit.
	CategoryTemperature Category = "Temperature"
)

// Unit names a unit of measurement. Every unit belongs to exactly one Category.
type Unit string

// Length units.
const (
	UnitMeters     Unit = "Meters"
	UnitKilometers Unit = "Kilometers"
	UnitFeet       Unit = "Feet"
	UnitYards      Unit = "Yards"
	UnitMiles      Unit = "Miles"
)

// Volume units.
const (
	UnitMilliliters Unit = "Milliliters"
	UnitLiters      Unit = "Liters"
	UnitCups        Unit = "Cups"
	UnitPints       Unit = "Pints"
	UnitGallons     Unit = "Gallons"
)

// Temperature units.
const (
	UnitCelsius    Unit = "Celsius"
	UnitFahrenheit Unit = "Fahrenheit"
	UnitKelvin     Unit = "Kelvin"
)

// CategoryKind tells how units of a category relate to each other.
type CategoryKind string

const (
	// KindLinear categories convert by scaling through a base unit.
	KindLinear CategoryKind = "linear"
	// KindAffine categories convert with offset-plus-scale formulas.
	KindAffine CategoryKind = "affine"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryLength, CategoryVolume, CategoryTemperature}
}

//nolint: gochecknoglobals
var categoryUnits = map[Category][]Unit{
	CategoryLength:      {UnitMeters, UnitKilometers, UnitFeet, UnitYards, UnitMiles},
	CategoryVolume:      {UnitMilliliters, UnitLiters, UnitCups, UnitPints, UnitGallons},
	CategoryTemperature: {UnitCelsius, UnitFahrenheit, UnitKelvin},
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	_, ok := categoryUnits[c]

	return ok
}

// Kind reports whether c is linear or affine.
func (c Category) Kind() CategoryKind {
	if c == CategoryTemperature {
		return KindAffine
	}

	return KindLinear
}

// Units returns the units of c in display order, or nil for an unknown category.
// The returned slice is a copy.
func (c Category) Units() []Unit {
	units, ok := categoryUnits[c]
	if !ok {
		return nil
	}

	return append([]Unit(nil), units...)
}

// DefaultUnit returns the first unit of c, which front-ends preselect for both
// the source and the target when the category changes.
func (c Category) DefaultUnit() Unit {
	units := categoryUnits[c]
	if len(units) == 0 {
		return ""
	}

	return units[0]
}

// Has reports whether u belongs to c.
func (c Category) Has(u Unit) bool {
	for _, cu := range categoryUnits[c] {
		if cu == u {
			return true
		}
	}

	return false
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}

	return "", UnknownCategoryError(Category(name))
}

// ParseUnit resolves a unit name within c case-insensitively, so "meters"
// and "Meters" both name UnitMeters.
func ParseUnit(c Category, name string) (Unit, error) {
	if !c.Valid() {
		return "", UnknownCategoryError(c)
	}

	name = strings.TrimSpace(name)
	for _, u := range categoryUnits[c] {
		if strings.EqualFold(string(u), name) {
			return u, nil
		}
	}

	return "", UnknownUnitError(c, Unit(name))
}
