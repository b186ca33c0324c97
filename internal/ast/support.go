package ast

// Parameter is one function-definition parameter, optionally annotated
// and/or defaulted.
type Parameter struct {
	Base
	Name       string
	Annotation Expr
	Default    Expr
}

func (p *Parameter) Accept(v Visitor) { v.VisitParameter(p) }

// Arguments is a function's full parameter list: positional-only,
// regular, `*args` (or a bare `*` marker with Vararg == nil and
// HasBareStar true), keyword-only, and `**kwargs` (spec.md seed #6).
type Arguments struct {
	Base
	PosOnlyArgs []*Parameter
	Args        []*Parameter
	Vararg      *Parameter
	HasBareStar bool
	KwOnlyArgs  []*Parameter
	Kwarg       *Parameter
}

func (a *Arguments) Accept(v Visitor) { v.VisitArguments(a) }
