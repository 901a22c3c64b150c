// Package conversion implements the unit conversion engine.
//
// Linear categories (length, volume) convert by normalising the value to the
// category's base unit and scaling it to the target unit. Temperature scales
// do not share a zero point, so they use explicit affine formulas instead.
//
// The engine is a value over immutable tables and is safe for concurrent use.
package conversion

import (
	"converter/pkg/domain"
	"converter/pkg/serrors"
)

// Engine converts values between units.
//
// A strict engine (the default) rejects unknown units and uncovered pairs
// with typed errors. A lenient engine treats a missing factor as 1.0 and an
// uncovered temperature pair as the identity, which silently hides bad input
// and exists for callers that relied on that behavior.
type Engine struct {
	lenient bool
}

// Option configures an Engine.
type Option func(*Engine)

// Lenient makes the engine fall back to identity scaling instead of failing
// on unknown units or uncovered pairs. Unknown categories still fail.
func Lenient() Option {
	return func(e *Engine) {
		e.lenient = true
	}
}

// New returns an engine configured with opts.
func New(opts ...Option) Engine {
	var e Engine
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// IsLenient reports whether e was built with Lenient.
func (e Engine) IsLenient() bool {
	return e.lenient
}

// Convert expresses value, measured in from, in to. Values are not range
// checked: negative lengths and volumes go through the same formula.
func (e Engine) Convert(category domain.Category, value float64, from, to domain.Unit) (float64, error) {
	switch category.Kind() {
	case domain.KindLinear:
		if !category.Valid() {
			return 0, domain.UnknownCategoryError(category)
		}

		fromFactor, err := e.factor(category, from)
		if err != nil {
			return 0, err
		}
		toFactor, err := e.factor(category, to)
		if err != nil {
			return 0, err
		}
		if from == to {
			return value, nil
		}

		return value / fromFactor * toFactor, nil
	case domain.KindAffine:
		if !e.lenient {
			if !category.Has(from) {
				return 0, domain.UnknownUnitError(category, from)
			}
			if !category.Has(to) {
				return 0, domain.UnknownUnitError(category, to)
			}
		}

		res, ok := convertTemperature(value, from, to)
		if !ok && !e.lenient {
			return 0, domain.UnsupportedConversionError(category, from, to)
		}

		return res, nil
	}

	return 0, domain.UnknownCategoryError(category)
}

// Run converts c. It is Convert for callers holding a domain.Conversion.
func (e Engine) Run(c domain.Conversion) (domain.Result, error) {
	res, err := e.Convert(c.Category, c.Value, c.From, c.To)
	if err != nil {
		return domain.Result{}, err
	}

	return domain.Result{Conversion: c, Result: res}, nil
}

// Factor returns how many of unit make one base unit of category.
// Affine categories have no factors.
func (e Engine) Factor(category domain.Category, unit domain.Unit) (float64, error) {
	if !category.Valid() {
		return 0, domain.UnknownCategoryError(category)
	}
	if category.Kind() != domain.KindLinear {
		return 0, serrors.With(domain.ErrUnsupportedConversion, "%s has no conversion factors", string(category))
	}

	return e.factor(category, unit)
}

func (e Engine) factor(category domain.Category, unit domain.Unit) (float64, error) {
	if f, ok := factors[category][unit]; ok {
		return f, nil
	}
	if e.lenient {
		return 1.0, nil
	}

	return 0, domain.UnknownUnitError(category, unit)
}

// Categories lists every category in display order.
func (e Engine) Categories() []domain.Category {
	return domain.Categories()
}

// Units lists the units of category in display order.
func (e Engine) Units(category domain.Category) ([]domain.Unit, error) {
	if !category.Valid() {
		return nil, domain.UnknownCategoryError(category)
	}

	return category.Units(), nil
}

// DefaultUnit returns the unit preselected for category.
func (e Engine) DefaultUnit(category domain.Category) (domain.Unit, error) {
	if !category.Valid() {
		return "", domain.UnknownCategoryError(category)
	}

	return category.DefaultUnit(), nil
}

// Describe returns the catalog entry for category. Linear categories list
// the factor of every unit.
func (e Engine) Describe(category domain.Category) (domain.CategoryInfo, error) {
	units, err := e.Units(category)
	if err != nil {
		return domain.CategoryInfo{}, err
	}
	defaultUnit, err := e.DefaultUnit(category)
	if err != nil {
		return domain.CategoryInfo{}, err
	}

	info := domain.CategoryInfo{
		Category:    category,
		Kind:        category.Kind(),
		BaseUnit:    baseUnits[category],
		Units:       units,
		DefaultUnit: defaultUnit,
	}
	if info.Kind != domain.KindLinear {
		return info, nil
	}

	info.Factors = make(map[domain.Unit]float64, len(units))
	for _, u := range units {
		if info.Factors[u], err = e.Factor(category, u); err != nil {
			return domain.CategoryInfo{}, err
		}
	}

	return info, nil
}

// Convert converts with a strict engine.
func Convert(category domain.Category, value float64, from, to domain.Unit) (float64, error) {
	return New().Convert(category, value, from, to)
}
