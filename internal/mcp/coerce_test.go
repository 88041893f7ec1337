package mcp

import (
	"strings"
	"testing"

	"github.com/docuvault/docstore-mcp-server/internal/protocol"
)

func docSchema() *protocol.JSONSchema {
	return &protocol.JSONSchema{
		Type: "object",
		Properties: map[string]protocol.JSONSchema{
			"db_name":         {Type: "string"},
			"collection_name": {Type: "string"},
			"n":               {Type: "integer"},
		},
		Required: []string{"db_name", "collection_name", "n"},
	}
}

func TestCoerceIntegerFromString(t *testing.T) {
	args, err := CoerceArguments(map[string]any{
		"db_name":         "shop",
		"collection_name": "orders",
		"n":               "5",
	}, docSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := args["n"]
	if v.Kind() != protocol.KindInt || v.Int() != 5 {
		t.Fatalf("expected typed integer 5, got kind=%v int=%d", v.Kind(), v.Int())
	}
}

func TestCoerceIntegerFromNumber(t *testing.T) {
	cases := []struct {
		raw  any
		want int32
	}{
		{float64(5), 5},
		{float64(5.9), 5},
		{float64(-3.2), -3},
		{float64(0), 0},
	}
	for _, tc := range cases {
		args, err := CoerceArguments(map[string]any{
			"db_name":         "shop",
			"collection_name": "orders",
			"n":               tc.raw,
		}, docSchema())
		if err != nil {
			t.Fatalf("raw %v: unexpected error: %v", tc.raw, err)
		}
		if got := args["n"].Int(); got != tc.want {
			t.Fatalf("raw %v: expected %d, got %d", tc.raw, tc.want, got)
		}
	}
}

func TestCoerceIntegerRejectsUnparseable(t *testing.T) {
	for _, raw := range []any{"abc", true, []any{1}, map[string]any{"x": 1}, nil, float64(1) * 1e12} {
		_, err := CoerceArguments(map[string]any{
			"db_name":         "shop",
			"collection_name": "orders",
			"n":               raw,
		}, docSchema())
		if err == nil {
			t.Fatalf("raw %v: expected error", raw)
		}
		if !strings.Contains(err.Error(), `"n"`) || !strings.Contains(err.Error(), "integer") {
			t.Fatalf("raw %v: error must name the key and the expected type, got %q", raw, err)
		}
	}
}

func TestCoerceMissingRequiredIsAllOrNothing(t *testing.T) {
	args, err := CoerceArguments(map[string]any{
		"db_name":         "shop",
		"collection_name": "orders",
	}, docSchema())
	if err == nil {
		t.Fatal("expected error for missing required parameter")
	}
	if !strings.Contains(err.Error(), `"n"`) {
		t.Fatalf("error must name the missing key, got %q", err)
	}
	if args != nil {
		t.Fatalf("no partial arguments may be returned, got %v", args)
	}
}

func TestCoerceStringKeepsString(t *testing.T) {
	args, err := CoerceArguments(map[string]any{
		"db_name":         "shop",
		"collection_name": "orders",
		"n":               float64(1),
	}, docSchema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := args["db_name"]; v.Kind() != protocol.KindString || v.String() != "shop" {
		t.Fatalf("expected string kept, got %+v", v)
	}
}

func TestCoerceStringFallsBackToStringify(t *testing.T) {
	schema := &protocol.JSONSchema{
		Type:       "object",
		Properties: map[string]protocol.JSONSchema{"tag": {Type: "string"}},
	}
	cases := []struct {
		raw  any
		want string
	}{
		{true, "true"},
		{nil, "null"},
		{float64(7), "7"},
		{map[string]any{"a": float64(1)}, `{"a":1}`},
		{[]any{float64(1), float64(2)}, `[1,2]`},
	}
	for _, tc := range cases {
		args, err := CoerceArguments(map[string]any{"tag": tc.raw}, schema)
		if err != nil {
			t.Fatalf("raw %v: unexpected error: %v", tc.raw, err)
		}
		if got := args["tag"].String(); got != tc.want {
			t.Fatalf("raw %v: expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}

func TestCoerceUndeclaredKeysPassThroughByKind(t *testing.T) {
	args, err := CoerceArguments(map[string]any{
		"extra_str": "keep",
		"extra_num": float64(9),
		"extra_obj": map[string]any{"k": "v"},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args["extra_str"].String() != "keep" {
		t.Fatalf("string not kept: %+v", args["extra_str"])
	}
	if args["extra_num"].Kind() != protocol.KindInt || args["extra_num"].Int() != 9 {
		t.Fatalf("number not coerced to integer: %+v", args["extra_num"])
	}
	if args["extra_obj"].String() != `{"k":"v"}` {
		t.Fatalf("object not stringified: %+v", args["extra_obj"])
	}
}

func TestStringifyLoosePolicy(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{"s", "s"},
		{map[string]any{"x": []any{float64(1)}}, `{"x":[1]}`},
	}
	for _, tc := range cases {
		if got := stringifyLoose(tc.in); got != tc.want {
			t.Fatalf("stringifyLoose(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
