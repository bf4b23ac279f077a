package lambda

import (
	"errors"
	"fmt"
	"testing"
)

func TestExpr(t *testing.T) {
	e, err := New(`((\d.\c.(c d) \a.(a a)) \b.b)`)
	if err != nil {
		t.Fatal(err)
	}
	e.Reduce()
	if got, want := e.String(), `\a.(a a)`; got != want {
		t.Errorf("after one pass got %s, want %s", got, want)
	}
	e.Reduce()
	if got, want := e.String(), `\a.(a a)`; got != want {
		t.Errorf("after two passes got %s, want %s", got, want)
	}
}

func TestExprNewMalformed(t *testing.T) {
	for _, in := range []string{``, `\1.x`, `(a b`} {
		if e, err := New(in); !errors.Is(err, ErrMalformed) || e != nil {
			t.Errorf("New(%q) = %v, %v; want nil, ErrMalformed", in, e, err)
		}
	}
}

func TestExprCloneIsIndependent(t *testing.T) {
	e, err := New(`(\c.\a.c \b.b)`)
	if err != nil {
		t.Fatal(err)
	}
	c := e.Clone()
	e.Reduce()
	if got, want := c.String(), `(\c.\a.c \b.b)`; got != want {
		t.Errorf("clone changed with original: got %s, want %s", got, want)
	}
	if got, want := e.String(), `\a.\b.b`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	c.Root().(*App).Arg.(*Abs).Param = "q"
	if got, want := c.String(), `(\c.\a.c \q.b)`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := e.String(), `\a.\b.b`; got != want {
		t.Errorf("original changed with clone: got %s, want %s", got, want)
	}
}

func TestExprReduceLimitedKeepsTreeOnError(t *testing.T) {
	e, err := New(`(\x.(x x) \x.(x x))`)
	if err != nil {
		t.Fatal(err)
	}
	if err := e.ReduceLimited(100); !errors.Is(err, ErrLimit) {
		t.Fatalf("got %v, want ErrLimit", err)
	}
	if got, want := e.String(), `(\x.(x x) \x.(x x))`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func ExampleExpr() {
	e, err := New(`((\b.\b.b \c.c) \a.(a a))`)
	if err != nil {
		panic(err)
	}
	e.Reduce()
	fmt.Println(e)
	// Output: \a.(a a)
}
