package nano_test

import (
	"errors"
	"testing"

	"github.com/nanolang/nano/pkg/nano"
)

func TestEvalInt(t *testing.T) {
	result, err := nano.New().Eval("let x = 2 in x * 21")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	n, ok := result.Int()
	if !ok || n != 42 {
		t.Errorf("Int() = %d, %t; want 42, true", n, ok)
	}
}

func TestEvalBool(t *testing.T) {
	result, err := nano.New().Eval("[] == []")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	b, ok := result.Bool()
	if !ok || !b {
		t.Errorf("Bool() = %t, %t; want true, true", b, ok)
	}
	if _, ok := result.Int(); ok {
		t.Error("Int() succeeded on a boolean")
	}
}

func TestEvalList(t *testing.T) {
	result, err := nano.New().Eval("1 :: 3 :: 5 :: []")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}

	elems, err := result.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []int64{1, 3, 5}
	if len(elems) != len(want) {
		t.Fatalf("len = %d, want %d", len(elems), len(want))
	}
	for i, w := range want {
		if n, ok := elems[i].Int(); !ok || n != w {
			t.Errorf("elem %d = %v, want %d", i, elems[i], w)
		}
	}
}

func TestEvalImproperList(t *testing.T) {
	result, err := nano.New().Eval("1 :: 2")
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if _, err := result.List(); !errors.Is(err, nano.ErrImproperList) {
		t.Errorf("err = %v, want ErrImproperList", err)
	}
}

func TestEvalFunctionValue(t *testing.T) {
	result, err := nano.New().Eval(`\x -> x`)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if !result.IsFunction() {
		t.Error("IsFunction() = false for a lambda result")
	}
}

func TestParseErrorHasCode(t *testing.T) {
	_, err := nano.New().Eval("1 +")
	var perr *nano.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %T (%v), want *nano.ParseError", err, err)
	}
	if perr.Code == "" {
		t.Error("ParseError.Code is empty")
	}
}

func TestRuntimeErrorHasKind(t *testing.T) {
	tests := []struct {
		src  string
		kind string
	}{
		{"missing", "UnboundVariable"},
		{"1 + true", "TypeError"},
		{"head([])", "EmptyListError"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := nano.New().Eval(tt.src)
			var rerr *nano.RuntimeError
			if !errors.As(err, &rerr) {
				t.Fatalf("err = %T (%v), want *nano.RuntimeError", err, err)
			}
			if rerr.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", rerr.Kind, tt.kind)
			}
		})
	}
}

func TestWithMaxDepth(t *testing.T) {
	interp := nano.New(nano.WithMaxDepth(50))
	_, err := interp.Eval(`let loop = \x -> loop(x) in loop(0)`)
	var rerr *nano.RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %T (%v), want *nano.RuntimeError", err, err)
	}
	if rerr.Kind != "InternalError" {
		t.Errorf("Kind = %s", rerr.Kind)
	}
}

func TestInterpreterIsReusable(t *testing.T) {
	interp := nano.New()
	if _, err := interp.Eval("missing"); err == nil {
		t.Fatal("expected an error")
	}
	result, err := interp.Eval("2 + 2")
	if err != nil {
		t.Fatalf("second Eval: %v", err)
	}
	if n, _ := result.Int(); n != 4 {
		t.Errorf("Int() = %d, want 4", n)
	}
}
