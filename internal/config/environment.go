package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/pkg/errors"

	"github.com/goccy/go-yaml"
)

var getEnv = os.Getenv

// unmarshalInterpolated reads a scalar, substitutes environment variables in
// it then converts the result with parse.
func unmarshalInterpolated[T any](unmarshal func(any) error, parse func(string) (T, error)) (T, error) {
	var (
		raw  string
		zero T
	)

	if err := unmarshal(&raw); err != nil {
		return zero, errors.WithStack(err)
	}

	str, err := envsubst.Eval(raw, getEnv)
	if err != nil {
		return zero, errors.Wrapf(err, "could not interpolate '%s'", raw)
	}

	value, err := parse(str)
	if err != nil {
		return zero, errors.Wrapf(err, "could not parse '%s'", str)
	}

	return value, nil
}

// InterpolatedString is used for names, types and addresses.
type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	str, err := unmarshalInterpolated(unmarshal, func(str string) (string, error) {
		return str, nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(str)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	intVal, err := unmarshalInterpolated(unmarshal, strconv.Atoi)
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(intVal)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	floatVal, err := unmarshalInterpolated(unmarshal, func(str string) (float64, error) {
		return strconv.ParseFloat(str, 64)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(floatVal)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

// InterpolatedMap holds free form options (navbar presets, assets sources)
// whose string leaves are interpolated.
type InterpolatedMap struct {
	Data map[string]any
}

func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	interpolated := make(map[string]any, len(data))

	for key, value := range data {
		value, err := interpolateValue(key, value)
		if err != nil {
			return errors.WithStack(err)
		}

		interpolated[key] = value
	}

	im.Data = interpolated

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

func interpolateValue(path string, value any) (any, error) {
	switch typ := value.(type) {
	case string:
		str, err := envsubst.Eval(typ, getEnv)
		if err != nil {
			return nil, errors.Wrapf(err, "could not interpolate '%s'", path)
		}

		return str, nil

	case map[string]any:
		values := make(map[string]any, len(typ))

		for key, value := range typ {
			value, err := interpolateValue(path+"."+key, value)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			values[key] = value
		}

		return values, nil

	case []any:
		values := make([]any, len(typ))

		for idx, value := range typ {
			value, err := interpolateValue(fmt.Sprintf("%s[%d]", path, idx), value)
			if err != nil {
				return nil, errors.WithStack(err)
			}

			values[idx] = value
		}

		return values, nil

	default:
		return value, nil
	}
}

type InterpolatedDuration time.Duration

// UnmarshalYAML accepts Go durations ("30s") or a number of nanoseconds.
func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	duration, err := unmarshalInterpolated(unmarshal, parseDuration)
	if err != nil {
		return errors.WithStack(err)
	}

	*id = InterpolatedDuration(duration)

	return nil
}

func parseDuration(str string) (time.Duration, error) {
	if duration, err := time.ParseDuration(str); err == nil {
		return duration, nil
	}

	nanoseconds, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid duration '%s'", str)
	}

	return time.Duration(nanoseconds), nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	duration := time.Duration(*id)

	return duration.String(), nil
}

var _ yaml.InterfaceMarshaler = new(InterpolatedDuration)

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}
