package argp

import (
	"reflect"
	"testing"
)

func TestInt64Convert(t *testing.T) {
	cases := []struct {
		in       string
		expected int64
		fails    bool
	}{
		{"0", 0, false},
		{"-42", -42, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		var dst int64
		err := (&Int64Value{dst: &dst}).Convert(c.in)

		if c.fails {
			if err == nil {
				t.Errorf("input %q: expected an error", c.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("input %q: %v", c.in, err)
			continue
		}
		if dst != c.expected {
			t.Errorf("input %q: expected %v, got %v", c.in, c.expected, dst)
		}
	}
}

func TestBoolConvert(t *testing.T) {
	cases := []struct {
		in       string
		expected bool
		fails    bool
	}{
		{"", true, false},
		{"true", true, false},
		{"false", false, false},
		{"1", true, false},
		{"banana", false, true},
	}

	for _, c := range cases {
		var dst bool
		err := (&BoolValue{dst: &dst}).Convert(c.in)

		if c.fails {
			if err == nil {
				t.Errorf("input %q: expected an error", c.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("input %q: %v", c.in, err)
			continue
		}
		if dst != c.expected {
			t.Errorf("input %q: expected %v, got %v", c.in, c.expected, dst)
		}
	}
}

func TestFloat64Convert(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
		fails    bool
	}{
		{"2.5", 2.5, false},
		{"-0.25", -0.25, false},
		{"1e3", 1000, false},
		{"x", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		var dst float64
		err := (&Float64Value{dst: &dst}).Convert(c.in)

		if c.fails {
			if err == nil {
				t.Errorf("input %q: expected an error", c.in)
			}
			continue
		}

		if err != nil {
			t.Errorf("input %q: %v", c.in, err)
			continue
		}
		if dst != c.expected {
			t.Errorf("input %q: expected %v, got %v", c.in, c.expected, dst)
		}
	}
}

func TestStringConvert(t *testing.T) {
	var dst string

	if err := (&StringValue{dst: &dst}).Convert("value"); err != nil {
		t.Error(err)
	}
	if dst != "value" {
		t.Errorf("expected %q, got %q", "value", dst)
	}

	if err := (&StringValue{dst: &dst}).Convert(""); err == nil {
		t.Error("expected an empty string to be rejected")
	}
}

func TestPackConvert(t *testing.T) {
	var dst []string

	v := &PackValue{dst: &dst}
	if err := v.Convert("a,b,c"); err != nil {
		t.Error(err)
	}
	if err := v.Convert("d"); err != nil {
		t.Error(err)
	}

	expected := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(dst, expected) {
		t.Errorf("expected %v, got %v", expected, dst)
	}

	if err := v.Convert("a,,b"); err == nil {
		t.Error("expected an empty pack item to be rejected")
	}
	if err := v.Convert(""); err == nil {
		t.Error("expected an empty pack to be rejected")
	}
}
