package calc

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	cases := []struct {
		src  string
		toks []string
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []string{"0"}},
		{"9876543210", []string{"9876543210"}},
		{"1.5", []string{"1.5"}},
		{".5", []string{".5"}},
		{"1 2", []string{"1", "2"}},
		{"1.2.3", []string{"1.2.3"}},
		// operators
		{"2+3*4", []string{"2", "+", "3", "*", "4"}},
		{"8 / 4 / 2", []string{"8", "/", "4", "/", "2"}},
		{"2-3", []string{"2", "-", "3"}},
		{"1++2", []string{"1", "+", "+", "2"}},
		// unary minus
		{"-5", []string{"-5"}},
		{"-5*2", []string{"-5", "*", "2"}},
		{"2*-3", []string{"2", "*", "-3"}},
		{"(-1)", []string{"(", "-1", ")"}},
		{"2--3", []string{"2", "-", "-3"}},
		{"- 5", []string{"-", "5"}},
		{"(1)-2", []string{"(", "1", ")", "-", "2"}},
		{"-(1)", []string{"-", "(", "1", ")"}},
		// implicit multiplication
		{"2(3+4)", []string{"2", "*", "(", "3", "+", "4", ")"}},
		{"2 (3)", []string{"2", "*", "(", "3", ")"}},
		{"(1)(2)", []string{"(", "1", ")", "*", "(", "2", ")"}},
		{"(1)2", []string{"(", "1", ")", "*", "2"}},
		{"((1))", []string{"(", "(", "1", ")", ")"}},
		{"1+(2)", []string{"1", "+", "(", "2", ")"}},
	}
	for _, c := range cases {
		got, err := ComposeString(c.src)
		if err != nil {
			t.Errorf("composing %q: unexpected error %v", c.src, err)
			continue
		}
		if len(got) == 0 && len(c.toks) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, c.toks) {
			t.Errorf("composing %q: want %q, got %q", c.src, c.toks, got)
		}
	}
}

func TestComposeErrors(t *testing.T) {
	cases := []struct {
		src string
		col int
		r   rune
	}{
		{"2x", 2, 'x'},
		{"$", 1, '$'},
		{"1 + π", 5, 'π'},
		{"1,5", 2, ','},
		{"2^3", 2, '^'},
	}
	for _, c := range cases {
		toks, err := ComposeString(c.src)
		if err == nil {
			t.Errorf("composing %q: expected error, got %q", c.src, toks)
			continue
		}
		var ce *ComposeError
		if !errors.As(err, &ce) {
			t.Errorf("composing %q: error %#v is not a ComposeError", c.src, err)
			continue
		}
		if ce.Col != c.col || ce.Rune != c.r {
			t.Errorf("composing %q: want %q at %d, got %q at %d", c.src, c.r, c.col, ce.Rune, ce.Col)
		}
	}
}

func TestComposeEvaluate(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"2(3+4)", "14"},
		{"(1+1)(2+2)", "8"},
		{"(2)3", "6"},
		{"-2*-2", "4"},
		{"1/3*3", "1"},
		{"10/4", "2.5"},
		{"-(1)", "Error"},
		{"5/0", "Error"},
	}
	for _, c := range cases {
		toks, err := Compose(strings.NewReader(c.src))
		if err != nil {
			t.Errorf("composing %q: %v", c.src, err)
			continue
		}
		if got := Evaluate(toks); got != c.want {
			t.Errorf("evaluating %q as %q: want %q, got %q", c.src, toks, c.want, got)
		}
	}
}
