package conversion

import "converter/pkg/domain"

const (
	kelvinOffset     = 273.15
	fahrenheitOffset = 32
)

// convertTemperature applies the affine formula for the pair. ok is false
// when no formula covers it.
func convertTemperature(value float64, from, to domain.Unit) (float64, bool) {
	if from == to {
		return value, true
	}

	switch {
	case from == domain.UnitCelsius && to == domain.UnitFahrenheit:
		return value*9/5 + fahrenheitOffset, true
	case from == domain.UnitCelsius && to == domain.UnitKelvin:
		return value + kelvinOffset, true
	case from == domain.UnitFahrenheit && to == domain.UnitCelsius:
		return (value - fahrenheitOffset) * 5 / 9, true
	case from == domain.UnitFahrenheit && to == domain.UnitKelvin:
		return (value-fahrenheitOffset)*5/9 + kelvinOffset, true
	case from == domain.UnitKelvin && to == domain.UnitCelsius:
		return value - kelvinOffset, true
	case from == domain.UnitKelvin && to == domain.UnitFahrenheit:
		return (value-kelvinOffset)*9/5 + fahrenheitOffset, true
	}

	return value, false
}
