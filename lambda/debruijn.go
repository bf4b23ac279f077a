package lambda

import (
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

func prepend(v string, from []string) []string {
	return append([]string{v}, from...)
}

// DeBruijnString renders t with every bound variable replaced by the number
// of binders between it and its own, so that alpha-equivalent terms render
// identically. Free variables keep their names.
//
//	\a.\b.(a c)  =>  (λ.(λ.(1 c)))
func DeBruijnString(t Term) string {
	return deBruijnString(nil, t)
}

func deBruijnString(ctx []string, t Term) string {
	switch t := t.(type) {
	case *Abs:
		return "(λ." + deBruijnString(prepend(t.Param, ctx), t.Body) + ")"
	case *App:
		return "(" + deBruijnString(ctx, t.Fn) + " " + deBruijnString(ctx, t.Arg) + ")"
	case *Var:
		if i := slices.Index(ctx, t.Name); i >= 0 {
			return strconv.Itoa(i)
		}
		return t.Name
	}
	panic("unreachable")
}

// AlphaEquivalent reports whether a and b differ at most in the names of
// their bound variables.
func AlphaEquivalent(a, b Term) bool {
	return DeBruijnString(a) == DeBruijnString(b)
}

// FreeVars returns the names occurring free in t, in order of first
// occurrence.
func FreeVars(t Term) []string {
	var free []string
	var walk func(bound []string, t Term)
	walk = func(bound []string, t Term) {
		switch t := t.(type) {
		case *Abs:
			walk(prepend(t.Param, bound), t.Body)
		case *App:
			walk(bound, t.Fn)
			walk(bound, t.Arg)
		case *Var:
			if !slices.Contains(bound, t.Name) {
				free = append(free, t.Name)
			}
		}
	}
	walk(nil, t)
	return lo.Uniq(free)
}
