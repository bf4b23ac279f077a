package lambda

// Expr owns an expression tree and replaces it on every reduction pass.
// The zero value is not usable; construct one with New.
type Expr struct {
	root Term
}

// New parses src into an Expr. See Parse for the accepted syntax.
func New(src string) (*Expr, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return &Expr{t}, nil
}

// Clone returns an independent copy of e.
func (e *Expr) Clone() *Expr {
	return &Expr{Clone(e.root)}
}

// Reduce replaces e's tree with the result of one normal-order pass.
func (e *Expr) Reduce() {
	e.root = Reduce(e.root)
}

// Root returns the tree owned by e. It must not be modified.
func (e *Expr) Root() Term {
	return e.root
}

func (e *Expr) String() string {
	return e.root.String()
}

// ReduceLimited is like Reduce but bounds the pass as ReduceLimited does.
// On error e is left unchanged.
func (e *Expr) ReduceLimited(limit int) error {
	r, err := ReduceLimited(e.root, limit)
	if err != nil {
		return err
	}
	e.root = r
	return nil
}
