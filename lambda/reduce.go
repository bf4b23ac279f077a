package lambda

import (
	"errors"
	"fmt"
)

// ErrLimit is returned by ReduceLimited when a pass visits more nodes than
// allowed.
var ErrLimit = errors.New("reduction pass exceeded its work limit")

// Reduce performs one leftmost-outermost reduction pass over t and returns
// the resulting tree. It does not iterate to a normal form; a term is in
// normal form when another pass leaves its rendering unchanged.
//
// Arguments are substituted unreduced (call by name). The returned tree is
// freshly allocated and shares no nodes with t, so every substituted
// occurrence of an argument is an independent copy.
//
// A pass that keeps producing new redexes in function position, such as
// one over (\x.(x x) \x.(x x)), does not return. Use ReduceLimited for
// untrusted input.
func Reduce(t Term) Term {
	return reduce(t, newSubstCtx())
}

// ReduceLimited is like Reduce but gives up with an error wrapping ErrLimit
// once the pass has visited limit nodes. A limit of zero or less means no
// limit.
func ReduceLimited(t Term, limit int) (r Term, err error) {
	ctx := newSubstCtx()
	ctx.limit = limit
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(limitExceeded); !ok {
				panic(e)
			}
			r, err = nil, fmt.Errorf("%w (%d nodes)", ErrLimit, limit)
		}
	}()
	return reduce(t, ctx), nil
}

func reduce(t Term, ctx *substCtx) Term {
	ctx.tick()
	switch t := t.(type) {
	case *Abs:
		defer ctx.shadowed(t.Param)()
		return &Abs{t.Param, reduce(t.Body, ctx)}
	case *App:
		fn := reduce(t.Fn, ctx)
		abs, ok := fn.(*Abs)
		if !ok {
			return &App{fn, reduce(t.Arg, ctx)}
		}
		// Redex: the application is replaced by the body of the reduced
		// function, with the original argument pending for its parameter.
		defer ctx.substitute(abs.Param, t.Arg)()
		return reduce(abs.Body, ctx)
	case *Var:
		return ctx.lookup(t)
	}
	panic("unreachable")
}
