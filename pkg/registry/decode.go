package registry

import (
	"fmt"
	"math"
	"reflect"

	"github.com/aretw0/algoviz/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// DecodeInput decodes a raw payload into a domain.Input.
// Numbers must be integral and within domain.MinValue..domain.MaxValue;
// anything else yields domain.ErrInvalidInput.
func DecodeInput(data map[string]any) (domain.Input, error) {
	var in domain.Input
	if data == nil {
		return in, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralHook,
		Result:     &in,
	})
	if err != nil {
		return in, err
	}
	if err := dec.Decode(data); err != nil {
		return domain.Input{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	in.HasArray = data["array"] != nil
	in.HasValues = data["values"] != nil
	return in, nil
}

// integralHook converts numbers bound for int fields. Floats must be
// integral, and every numeric kind must lie within domain.MinValue and
// domain.MaxValue.
func integralHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	v := reflect.ValueOf(data)
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return nil, fmt.Errorf("%v is not an integer", data)
		}
		if f > domain.MaxValue || f < domain.MinValue {
			return nil, fmt.Errorf("%v is out of range", data)
		}
		return int(f), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n > domain.MaxValue || n < domain.MinValue {
			return nil, fmt.Errorf("%v is out of range", data)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		if n > domain.MaxValue {
			return nil, fmt.Errorf("%v is out of range", data)
		}
		return int(n), nil
	}
	return data, nil
}
