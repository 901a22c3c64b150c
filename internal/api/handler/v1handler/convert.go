package v1handler

import (
	"converter/pkg/domain"
	"converter/pkg/serrors"
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/conv"
	"github.com/ogen-go/ogen/validate"
)

// MaxBodyBytes caps the size of a POST /v1/convert body.
const MaxBodyBytes = 1 << 16

// ConversionResult is the body of a successful conversion.
type ConversionResult domain.Result

func (r ConversionResult) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("category")
	e.Str(string(r.Category))
	e.FieldStart("value")
	e.Float64(r.Value)
	e.FieldStart("from")
	e.Str(string(r.From))
	e.FieldStart("to")
	e.Str(string(r.To))
	e.FieldStart("result")
	e.Float64(r.Result)
	e.ObjEnd()
}

// CategoryList is the body of GET /v1/categories.
type CategoryList []domain.CategoryInfo

func (l CategoryList) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, info := range l {
		e.ObjStart()
		e.FieldStart("category")
		e.Str(string(info.Category))
		e.FieldStart("kind")
		e.Str(string(info.Kind))
		if info.BaseUnit != "" {
			e.FieldStart("baseUnit")
			e.Str(string(info.BaseUnit))
		}
		e.FieldStart("units")
		e.ArrStart()
		for _, u := range info.Units {
			e.Str(string(u))
		}
		e.ArrEnd()
		e.FieldStart("defaultUnit")
		e.Str(string(info.DefaultUnit))
		if len(info.Factors) > 0 {
			e.FieldStart("factors")
			e.ObjStart()
			for _, u := range info.Units {
				if f, ok := info.Factors[u]; ok {
					e.FieldStart(string(u))
					e.Float64(f)
				}
			}
			e.ObjEnd()
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// DecodeConversion reads a conversion request from a JSON object.
// Unknown fields are ignored and value is required. Only whitespace may
// follow the object.
func DecodeConversion(d *jx.Decoder) (domain.Conversion, error) {
	var (
		c        domain.Conversion
		hasValue bool
	)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "category":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"category\"")
			}
			c.Category = domain.Category(v)
		case "value":
			v, err := d.Float64()
			if err != nil {
				return errors.Wrap(err, "decode field \"value\"")
			}
			c.Value = v
			hasValue = true
		case "from":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"from\"")
			}
			c.From = domain.Unit(v)
		case "to":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"to\"")
			}
			c.To = domain.Unit(v)
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return domain.Conversion{}, errors.Wrap(err, "decode conversion")
	}
	if d.Next() != jx.Invalid {
		return domain.Conversion{}, errors.New("unexpected data after object")
	}
	if err := d.Skip(); !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.Conversion{}, errors.New("unexpected data after object")
	}
	if !hasValue {
		return domain.Conversion{}, errors.New("missing field \"value\"")
	}

	return c, nil
}

// parseValue parses a query value as a finite float.
func parseValue(raw string) (float64, error) {
	if raw == "" {
		return 0, errors.New("missing parameter \"value\"")
	}
	v, err := conv.ToFloat64(raw)
	if err != nil {
		return 0, errors.Wrap(err, "parse parameter \"value\"")
	}
	if err := (validate.Float{}).Validate(v); err != nil {
		return 0, errors.Wrap(err, "validate parameter \"value\"")
	}

	return v, nil
}

func (h Handler) convert(w http.ResponseWriter, r *http.Request, req domain.Conversion) {
	res, err := h.deps.Converter.Convert(r.Context(), req)
	if err != nil {
		WriteError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, ConversionResult(*res))
}

// GetConvert serves GET /v1/convert?category=&value=&from=&to=.
// Omitted units are left to the converter, which picks the category default.
func (h Handler) GetConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	value, err := parseValue(q.Get("value"))
	if err != nil {
		WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid value"))

		return
	}

	h.convert(w, r, domain.Conversion{
		Category: domain.Category(q.Get("category")),
		Value:    value,
		From:     domain.Unit(q.Get("from")),
		To:       domain.Unit(q.Get("to")),
	})
}

// PostConvert serves POST /v1/convert with a JSON body.
func (h Handler) PostConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	req, err := DecodeConversion(jx.DecodeBytes(body))
	if err != nil {
		WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid body"))

		return
	}
	if err := (validate.Float{}).Validate(req.Value); err != nil {
		WriteError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid value"))

		return
	}

	h.convert(w, r, req)
}

// ListCategories serves GET /v1/categories.
func (h Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoryList(h.deps.Converter.Catalog(r.Context())))
}
