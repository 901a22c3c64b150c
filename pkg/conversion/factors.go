package conversion

import "converter/pkg/domain"

// factors holds, per linear category, how many of each unit make one base
// unit. Adding a unit takes one entry here, not a row per existing unit.
//
//nolint: gochecknoglobals
var factors = map[domain.Category]map[domain.Unit]float64{
	domain.CategoryLength: {
		domain.UnitMeters:     1.0,
		domain.UnitKilometers: 0.001,
		domain.UnitFeet:       3.28084,
		domain.UnitYards:      1.09361,
		domain.UnitMiles:      0.000621371,
	},
	domain.CategoryVolume: {
		domain.UnitMilliliters: 1.0,
		domain.UnitLiters:      0.001,
		domain.UnitCups:        0.00422675,
		domain.UnitPints:       0.00211338,
		domain.UnitGallons:     0.000264172,
	},
}

// baseUnits maps each linear category to the unit whose factor is 1.
//
//nolint: gochecknoglobals
var baseUnits = map[domain.Category]domain.Unit{
	domain.CategoryLength: domain.UnitMeters,
	domain.CategoryVolume: domain.UnitMilliliters,
}
