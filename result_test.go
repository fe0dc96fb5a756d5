package icontact

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDecodeResult_RoundTrip(t *testing.T) {
	body := []byte(`{
		"accountId": "12345",
		"total": 3,
		"enabled": true,
		"ratio": 0.25,
		"owner": {"email": "jane@example.com", "billing": {"plan": "pro"}},
		"lists": [
			{"listId": "1", "name": "Weekly"},
			{"listId": "2", "name": "Monthly"}
		]
	}`)

	res, err := DecodeResult(body)
	if err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}

	if got := res.String("accountId"); got != "12345" {
		t.Errorf("String(accountId) = %q, want 12345", got)
	}
	if got := res.Int("accountId"); got != 12345 {
		t.Errorf("Int(accountId) = %d, want 12345", got)
	}
	if got := res.Int("total"); got != 3 {
		t.Errorf("Int(total) = %d, want 3", got)
	}
	if !res.Bool("enabled") {
		t.Error("Bool(enabled) = false, want true")
	}
	if got := res.Float("ratio"); got != 0.25 {
		t.Errorf("Float(ratio) = %v, want 0.25", got)
	}

	owner := res.Object("owner")
	if owner == nil {
		t.Fatal("Object(owner) = nil")
	}
	if got := owner.String("email"); got != "jane@example.com" {
		t.Errorf("owner email = %q", got)
	}
	if got := owner.Object("billing").String("plan"); got != "pro" {
		t.Errorf("nested plan = %q, want pro", got)
	}

	lists := res.Objects("lists")
	if len(lists) != 2 {
		t.Fatalf("len(Objects(lists)) = %d, want 2", len(lists))
	}
	if got := lists[1].String("name"); got != "Monthly" {
		t.Errorf("lists[1].name = %q, want Monthly", got)
	}
}

func TestDecodeResult_EveryKeyReadable(t *testing.T) {
	body := []byte(`{"a": "x", "b": 2, "c": false, "d": null, "e": [1, 2], "f": {"g": "h"}}`)

	res, err := DecodeResult(body)
	if err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}

	want := []string{"a", "b", "c", "d", "e", "f"}
	if got := res.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	for _, key := range want {
		if !res.Has(key) {
			t.Errorf("Has(%q) = false, want true", key)
		}
	}
}

func TestResult_GetWrapsNestedValues(t *testing.T) {
	res := NewResult(map[string]any{
		"contact": map[string]any{"email": "joe@example.com"},
		"items":   []any{map[string]any{"id": "1"}, "scalar"},
	})

	v, ok := res.Get("contact")
	if !ok {
		t.Fatal("Get(contact) missing")
	}
	contact, ok := v.(*Result)
	if !ok {
		t.Fatalf("Get(contact) = %T, want *Result", v)
	}
	if contact.String("email") != "joe@example.com" {
		t.Errorf("email = %q", contact.String("email"))
	}

	v, ok = res.Get("items")
	if !ok {
		t.Fatal("Get(items) missing")
	}
	items, ok := v.([]any)
	if !ok {
		t.Fatalf("Get(items) = %T, want []any", v)
	}
	if _, ok := items[0].(*Result); !ok {
		t.Errorf("items[0] = %T, want *Result", items[0])
	}
	if items[1] != "scalar" {
		t.Errorf("items[1] = %v, want scalar passthrough", items[1])
	}
}

func TestResult_MissingAndMistypedKeys(t *testing.T) {
	res := NewResult(map[string]any{"name": "x"})

	if _, ok := res.Get("absent"); ok {
		t.Error("Get(absent) = ok, want missing")
	}
	if res.Int("name") != 0 {
		t.Errorf("Int(name) = %d, want 0", res.Int("name"))
	}
	if res.Object("name") != nil {
		t.Error("Object(name) != nil for scalar")
	}
	if res.Objects("name") != nil {
		t.Error("Objects(name) != nil for scalar")
	}

	var nilResult *Result
	if _, ok := nilResult.Get("x"); ok {
		t.Error("nil Result Get = ok")
	}
	if nilResult.String("x") != "" {
		t.Error("nil Result String != empty")
	}
}

func TestResult_BoolEncodings(t *testing.T) {
	res := NewResult(map[string]any{
		"t1": true,
		"t2": "1",
		"t3": "true",
		"t4": json.Number("1"),
		"f1": false,
		"f2": "0",
		"f3": json.Number("0"),
	})

	for _, key := range []string{"t1", "t2", "t3", "t4"} {
		if !res.Bool(key) {
			t.Errorf("Bool(%s) = false, want true", key)
		}
	}
	for _, key := range []string{"f1", "f2", "f3"} {
		if res.Bool(key) {
			t.Errorf("Bool(%s) = true, want false", key)
		}
	}
}

func TestResult_ToMapSharesData(t *testing.T) {
	data := map[string]any{"k": "v"}
	res := NewResult(data)
	m := res.ToMap()
	if !reflect.DeepEqual(m, data) {
		t.Errorf("ToMap() = %v, want %v", m, data)
	}
}

func TestDecodeResult_EmptyBody(t *testing.T) {
	res, err := DecodeResult([]byte("  \n"))
	if err != nil {
		t.Fatalf("DecodeResult() error = %v", err)
	}
	if len(res.Keys()) != 0 {
		t.Errorf("Keys() = %v, want empty", res.Keys())
	}
}

func TestDecodeResult_NonObjectFails(t *testing.T) {
	if _, err := DecodeResult([]byte(`[1,2,3]`)); err == nil {
		t.Error("expected error for JSON array body")
	}
	if _, err := DecodeResult([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON body")
	}
}
