package calc

import (
	"errors"
	"strings"
	"testing"
)

func TestGroup(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"paren", "( 1 )", "1"},
		{"multi", "( ( ( 1 ) ) )", "1"},
		{"neg", "- 1", "-1"},
		{"signed", "-1", "-1"},
		{"add", "1 + 2", "(1 + 2)"},
		{"add4", "1 + 2 + 3 + 4", "(((1 + 2) + 3) + 4)"},
		{"sub4", "1 - 2 - 3 - 4", "(((1 - 2) - 3) - 4)"},
		{"mul4", "1 * 2 * 3 * 4", "(((1 * 2) * 3) * 4)"},
		{"div4", "1 / 2 / 3 / 4", "(((1 / 2) / 3) / 4)"},
		{"mixed-add", "1 + 2 - 3 + 4", "(((1 + 2) - 3) + 4)"},
		{"mixed-mul", "1 * 2 / 3 * 4", "(((1 * 2) / 3) * 4)"},
		{"desc", "1 * 2 + 3", "((1 * 2) + 3)"},
		{"asc", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"ascdesc", "1 - 2 * 3 - 4", "((1 - (2 * 3)) - 4)"},
		{"override", "( 1 + 2 ) * 3", "((1 + 2) * 3)"},
		{"right-group", "1 - ( 2 - 3 )", "(1 - (2 - 3))"},
		{"unary-mul", "2 * - 3", "(2 * -3)"},
		{"unary-sub", "2 - - 3", "(2 - -3)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Group(strings.Fields(c.src))
			if err != nil {
				t.Fatalf("grouping %q: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("grouping %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestGroupErrors(t *testing.T) {
	cases := []string{"", "( )", "1 +", "( 1", "1 )", "1 2", "1 + x"}
	for _, src := range cases {
		g, err := Group(strings.Fields(src))
		if err == nil {
			t.Errorf("grouping %q: expected error, got %q", src, g)
			continue
		}
		var ie InputError
		if !errors.As(err, &ie) {
			t.Errorf("grouping %q: error %#v is not an InputError", src, err)
		}
	}
}

func TestGroupDoesNotDivide(t *testing.T) {
	got, err := Group([]string{"1", "/", "0"})
	if err != nil {
		t.Fatalf("grouping 1 / 0: %v", err)
	}
	if got != "(1 / 0)" {
		t.Errorf("grouping 1 / 0: got %q", got)
	}
}
