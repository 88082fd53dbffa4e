package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var getEnv = os.Getenv

// unmarshalInterpolated decodes a scalar as a string, expands its ${VAR} and
// ${VAR:-default} references and converts the result with parse.
func unmarshalInterpolated[T any](unmarshal func(any) error, parse func(string) (T, error)) (T, error) {
	var (
		raw  string
		zero T
	)

	if err := unmarshal(&raw); err != nil {
		return zero, errors.WithStack(err)
	}

	expanded, err := envsubst.Eval(raw, getEnv)
	if err != nil {
		return zero, errors.Wrapf(err, "could not interpolate '%s'", raw)
	}

	value, err := parse(expanded)
	if err != nil {
		return zero, errors.Wrapf(err, "invalid value '%s'", expanded)
	}

	return value, nil
}

type InterpolatedString string

func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(s string) (string, error) { return s, nil })
	if err != nil {
		return err
	}

	*is = InterpolatedString(value)

	return nil
}

func (is InterpolatedString) String() string {
	return string(is)
}

type InterpolatedInt int

func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, strconv.Atoi)
	if err != nil {
		return err
	}

	*ii = InterpolatedInt(value)

	return nil
}

type InterpolatedFloat float64

func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	if err != nil {
		return err
	}

	*ifl = InterpolatedFloat(value)

	return nil
}

type InterpolatedBool bool

func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, strconv.ParseBool)
	if err != nil {
		return err
	}

	*ib = InterpolatedBool(value)

	return nil
}

// InterpolatedDuration accepts Go durations ("5s") or a number of
// nanoseconds.
type InterpolatedDuration time.Duration

func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, parseDuration)
	if err != nil {
		return err
	}

	*id = InterpolatedDuration(value)

	return nil
}

func (id *InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(*id).String(), nil
}

func NewInterpolatedDuration(d time.Duration) *InterpolatedDuration {
	id := InterpolatedDuration(d)
	return &id
}

func parseDuration(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	nanoseconds, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return time.Duration(nanoseconds), nil
}

// InterpolatedMap holds free-form options, typically a backend's. Every
// string found in it, at any depth, is interpolated.
type InterpolatedMap struct {
	Data map[string]any
}

func (im *InterpolatedMap) UnmarshalYAML(unmarshal func(any) error) error {
	var data map[string]any

	if err := unmarshal(&data); err != nil {
		return errors.WithStack(err)
	}

	if err := interpolateValues(data); err != nil {
		return errors.WithStack(err)
	}

	im.Data = data

	return nil
}

func (im *InterpolatedMap) MarshalYAML() (any, error) {
	return im.Data, nil
}

// interpolateValues expands the strings of maps and slices in place.
func interpolateValues(data any) error {
	expand := func(value any, set func(any)) error {
		str, ok := value.(string)
		if !ok {
			return interpolateValues(value)
		}

		expanded, err := envsubst.Eval(str, getEnv)
		if err != nil {
			return errors.WithStack(err)
		}

		set(expanded)

		return nil
	}

	switch typ := data.(type) {
	case map[string]any:
		for key, value := range typ {
			if err := expand(value, func(v any) { typ[key] = v }); err != nil {
				return err
			}
		}

	case []any:
		for idx, value := range typ {
			if err := expand(value, func(v any) { typ[idx] = v }); err != nil {
				return err
			}
		}
	}

	return nil
}

var (
	_ yaml.InterfaceUnmarshaler = new(InterpolatedString)
	_ yaml.InterfaceUnmarshaler = new(InterpolatedInt)
	_ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)
	_ yaml.InterfaceUnmarshaler = new(InterpolatedBool)
	_ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)
	_ yaml.InterfaceUnmarshaler = new(InterpolatedMap)
	_ yaml.InterfaceMarshaler   = new(InterpolatedDuration)
	_ yaml.InterfaceMarshaler   = new(InterpolatedMap)
)
