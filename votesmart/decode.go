package votesmart

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// decodeRecord converts a mapped record into a typed struct. Unknown fields
// end up in the struct's ",remain" map, so nothing the service sends is lost.
func decodeRecord[T any](operation string, rec Record) (T, error) {
	var out T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(compositeToStringHook),
	})
	if err != nil {
		return out, &DecodeError{Operation: operation, Reason: "failed to create decoder", Err: err}
	}

	if err := decoder.Decode(rec.AsMap()); err != nil {
		return out, &DecodeError{
			Operation: operation,
			Reason:    fmt.Sprintf("cannot decode %s", rec.Kind),
			Err:       err,
		}
	}

	return out, nil
}

// compositeToStringHook keeps string fields decodable when the service
// returns an object or list where text is usually found.
func compositeToStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Map, reflect.Slice:
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	}
	return data, nil
}
