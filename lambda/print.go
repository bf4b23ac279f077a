package lambda

import "strings"

type builder = strings.Builder

func (a *Abs) writeTo(b *builder) {
	b.WriteByte('\\')
	b.WriteString(a.Param)
	b.WriteByte('.')
	a.Body.writeTo(b)
}

func (a *App) writeTo(b *builder) {
	b.WriteByte('(')
	a.Fn.writeTo(b)
	b.WriteByte(' ')
	a.Arg.writeTo(b)
	b.WriteByte(')')
}

func (v *Var) writeTo(b *builder) {
	b.WriteString(v.Name)
}

func render(t Term) string {
	var b builder
	b.Grow(256)
	t.writeTo(&b)
	return b.String()
}

func (a *Abs) String() string { return render(a) }
func (a *App) String() string { return render(a) }
func (v *Var) String() string { return v.Name }
