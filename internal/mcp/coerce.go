package mcp

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
)

// CoerceArguments converts the raw tools/call argument mapping into typed
// values validated against a tool's input schema. It is all-or-nothing: any
// failure returns a nil mapping and an error naming the offending key, and
// the backing operation is never invoked.
func CoerceArguments(raw map[string]any, schema *protocol.JSONSchema) (protocol.Arguments, error) {
	var props map[string]protocol.JSONSchema
	if schema != nil {
		props = schema.Properties
		for _, key := range schema.Required {
			if _, ok := raw[key]; !ok {
				return nil, fmt.Errorf("missing required parameter %q", key)
			}
		}
	}

	args := make(protocol.Arguments, len(raw))
	for key, value := range raw {
		decl, declared := props[key]
		var (
			v   protocol.Value
			err error
		)
		switch {
		case declared && decl.Type == "integer":
			v, err = coerceInt(key, value)
		case declared:
			v = coerceString(value)
		default:
			// Undeclared keys keep the raw value's dynamic kind and are
			// passed through for the backing operation to ignore.
			v, err = coerceDynamic(key, value)
		}
		if err != nil {
			return nil, err
		}
		args[key] = v
	}
	return args, nil
}

func coerceInt(key string, value any) (protocol.Value, error) {
	switch n := value.(type) {
	case float64:
		if math.IsNaN(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return protocol.Value{}, fmt.Errorf("parameter %q must be an integer", key)
		}
		return protocol.IntValue(int32(n)), nil
	case string:
		parsed, err := strconv.ParseInt(n, 10, 32)
		if err != nil {
			return protocol.Value{}, fmt.Errorf("parameter %q must be an integer", key)
		}
		return protocol.IntValue(int32(parsed)), nil
	default:
		return protocol.Value{}, fmt.Errorf("parameter %q must be an integer", key)
	}
}

func coerceString(value any) protocol.Value {
	if s, ok := value.(string); ok {
		return protocol.StringValue(s)
	}
	return protocol.StringValue(stringifyLoose(value))
}

func coerceDynamic(key string, value any) (protocol.Value, error) {
	switch value.(type) {
	case float64:
		return coerceInt(key, value)
	case string:
		return protocol.StringValue(value.(string)), nil
	default:
		return protocol.StringValue(stringifyLoose(value)), nil
	}
}

// stringifyLoose is the permissive fallback for values that are neither
// strings nor numbers: booleans and null render as their JSON literals,
// objects and arrays as compact JSON. Kept as a named policy so its behavior
// can be pinned directly by tests.
func stringifyLoose(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(b)
}
