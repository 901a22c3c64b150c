package domain

import "converter/pkg/serrors"

var (
	// ErrUnknownCategory is reported for a category outside the enumeration.
	ErrUnknownCategory = serrors.NewKind("UNKNOWN_CATEGORY")
	// ErrUnknownUnit is reported for a unit that does not belong to the
	// requested category.
	ErrUnknownUnit = serrors.NewKind("UNKNOWN_UNIT")
	// ErrUnsupportedConversion is reported for a pair of units no formula
	// covers. The unit sets are closed, so seeing it points at a table bug.
	ErrUnsupportedConversion = serrors.NewKind("UNSUPPORTED_CONVERSION_PAIR")
)

// UnknownCategoryError builds an ErrUnknownCategory error naming c.
func UnknownCategoryError(c Category) error {
	return serrors.With(ErrUnknownCategory, "unknown category %q", string(c))
}

// UnknownUnitError builds an ErrUnknownUnit error naming u and c.
func UnknownUnitError(c Category, u Unit) error {
	return serrors.With(ErrUnknownUnit, "unknown unit %q for category %s", string(u), string(c))
}

// UnsupportedConversionError builds an ErrUnsupportedConversion error for the pair.
func UnsupportedConversionError(c Category, from, to Unit) error {
	return serrors.With(ErrUnsupportedConversion, "no %s conversion from %s to %s", string(c), string(from), string(to))
}
