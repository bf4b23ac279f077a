package lambda

import "github.com/samber/lo"

// substOp is a pending substitution of to for every visible from.
type substOp struct {
	from string
	to   Term
}

// substCtx is the state of one reduction pass.
//
// args is a stack: the most recently pushed substitution for a name hides
// older ones. shadow counts, per name, the binders currently being reduced
// through. A positive count means the nearest binder of that name is a
// function literal still inside the tree rather than one being applied, so
// its variables are left alone.
type substCtx struct {
	args   []substOp
	shadow map[string]int

	// limit caps work, the number of nodes visited, when positive.
	limit int
	work  int
}

func newSubstCtx() *substCtx {
	return &substCtx{shadow: make(map[string]int)}
}

// limitExceeded is the panic value that unwinds a pass over its limit.
type limitExceeded struct{}

func (c *substCtx) tick() {
	if c.limit <= 0 {
		return
	}
	if c.work++; c.work > c.limit {
		panic(limitExceeded{})
	}
}

// shadowed marks name as bound by an enclosing binder until release is
// called. Callers defer release.
func (c *substCtx) shadowed(name string) (release func()) {
	c.shadow[name]++
	return func() {
		if c.shadow[name]--; c.shadow[name] == 0 {
			delete(c.shadow, name)
		}
	}
}

// substitute pushes a pending substitution of arg for name until release
// is called. Callers defer release.
func (c *substCtx) substitute(name string, arg Term) (release func()) {
	c.args = append(c.args, substOp{name, arg})
	n := len(c.args)
	return func() {
		c.args = c.args[:n-1]
	}
}

// outside hides every substitution from the i-th on until release is
// called. The capacity is clipped so pushes made meanwhile cannot clobber
// the hidden entries.
func (c *substCtx) outside(i int) (release func()) {
	saved := c.args
	c.args = c.args[:i:i]
	return func() {
		c.args = saved
	}
}

// lookup returns the term that replaces v.
//
// The newest pending substitution for v's name wins unless a binder of the
// same name is being reduced through, in which case v refers to that binder
// and is kept. The argument is reduced under the substitutions that were
// pending when it was pushed, which are the ones its own free variables can
// refer to. Free and shadowed variables come back as copies.
func (c *substCtx) lookup(v *Var) Term {
	op, i, ok := lo.FindLastIndexOf(c.args, func(op substOp) bool {
		return op.from == v.Name
	})
	if !ok || c.shadow[v.Name] > 0 {
		return &Var{v.Name}
	}
	defer c.outside(i)()
	return reduce(op.to, c)
}

// empty reports whether every substitution and shadow has been released.
func (c *substCtx) empty() bool {
	return len(c.args) == 0 && len(c.shadow) == 0
}
