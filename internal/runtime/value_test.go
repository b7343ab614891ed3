package runtime

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"false is falsy", Boolean(false), false},
		{"true is truthy", Boolean(true), true},
		{"null is falsy", Null{}, false},
		{"zero integer is truthy", Integer(0), true},
		{"empty string is truthy", String(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.v); got != tt.want {
				t.Errorf("Truthy(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestValueStringAndType(t *testing.T) {
	tests := []struct {
		v        Value
		wantType string
		wantStr  string
	}{
		{Null{}, "NULL", "null"},
		{Boolean(true), "BOOLEAN", "true"},
		{Boolean(false), "BOOLEAN", "false"},
		{Integer(-7), "INTEGER", "-7"},
		{Float(2.5), "FLOAT", "2.5"},
		{String("hi"), "STRING", "hi"},
	}
	for _, tt := range tests {
		if got := tt.v.Type(); got != tt.wantType {
			t.Errorf("%v.Type() = %q, want %q", tt.v, got, tt.wantType)
		}
		if got := tt.v.String(); got != tt.wantStr {
			t.Errorf("%v.String() = %q, want %q", tt.v, got, tt.wantStr)
		}
	}
}
