package types

import (
	"encoding/json"
	"testing"
)

func TestValueKinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
	}{
		{"zero value is absent", Value{}, KindAbsent},
		{"absent", Absent(), KindAbsent},
		{"number", Number(3.5), KindNumber},
		{"numeric zero is not absent", Number(0), KindNumber},
		{"text", Text("x"), KindText},
		{"empty text is not absent", Text(""), KindText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
			if got := tt.v.IsAbsent(); got != (tt.kind == KindAbsent) {
				t.Errorf("IsAbsent() = %v for kind %v", got, tt.kind)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if f, ok := Number(-70).Float(); !ok || f != -70 {
		t.Errorf("Number(-70).Float() = %v, %v", f, ok)
	}
	if _, ok := Text("x").Float(); ok {
		t.Error("Text.Float() reported ok")
	}
	if _, ok := Absent().Float(); ok {
		t.Error("Absent.Float() reported ok")
	}
	if s, ok := Text("note").Str(); !ok || s != "note" {
		t.Errorf("Text(note).Str() = %q, %v", s, ok)
	}
	if _, ok := Number(1).Str(); ok {
		t.Error("Number.Str() reported ok")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Absent(), "-"},
		{Number(3.5), "3.5"},
		{Number(-70), "-70"},
		{Text("square pulse"), "square pulse"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Absent(), "null"},
		{Number(3.5), "3.5"},
		{Number(0), "0"},
		{Text("x"), `"x"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.v)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tt.v, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}
