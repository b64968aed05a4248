package domain

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Decode applies loosely typed properties onto target, a pointer to a model.
// Keys absent from props keep their current value. Spreadsheet strings convert
// to the field type and "y"/"n" convert to booleans. The returned keys had no
// matching field.
func Decode(props map[string]any, target any) ([]string, error) {
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		Metadata:         &md,
		WeaklyTypedInput: true,
		ZeroFields:       true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			flagHook,
			numericStringHook,
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return nil, err
	}

	input := make(map[string]any, len(props))
	for key, value := range props {
		if key == "id" {
			continue
		}
		input[key] = value
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return md.Unused, nil
}

func flagHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return data, nil
	}
	switch strings.ToLower(strings.TrimSpace(data.(string))) {
	case "y", "yes", "on", "true", "1":
		return true, nil
	case "", "n", "no", "off", "false", "0":
		return false, nil
	default:
		return nil, fmt.Errorf("invalid boolean %q", data)
	}
}

func numericStringHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	raw := strings.TrimSpace(data.(string))
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			return 0, nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed != math.Trunc(parsed) {
			return data, nil
		}
		return int64(parsed), nil
	case reflect.Float32, reflect.Float64:
		if raw == "" {
			return 0.0, nil
		}
	}
	return data, nil
}
