// Package lambda evaluates terms of the untyped lambda calculus by
// normal-order beta reduction.
//
// Terms are written in a fully parenthesized surface syntax:
//
//	\x.body      abstraction
//	(fn arg)     application
//	x            variable
//
// Reduction never renames variables. Instead of alpha conversion, a
// substitution is suppressed while a binder of the same name encloses the
// variable being looked up.
package lambda

// Term is a node of an expression tree. The only implementations are *Abs,
// *App and *Var.
//
// A tree is strict: no node has two parents. Operations that need a subtree
// in more than one place copy it.
type Term interface {
	String() string
	writeTo(b *builder)
	term()
}

// Abs is a function literal \Param.Body.
type Abs struct {
	Param string
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

// Var is an occurrence of a bound or free variable.
type Var struct {
	Name string
}

func (*Abs) term() {}
func (*App) term() {}
func (*Var) term() {}

// Clone returns a deep copy of t that shares no nodes with it.
func Clone(t Term) Term {
	switch t := t.(type) {
	case *Abs:
		return &Abs{t.Param, Clone(t.Body)}
	case *App:
		return &App{Clone(t.Fn), Clone(t.Arg)}
	case *Var:
		return &Var{t.Name}
	}
	panic("unreachable")
}
