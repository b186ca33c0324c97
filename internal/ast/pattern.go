package ast

// MatchValue is a literal, attribute, or numeric add/sub pattern whose
// right-hand side is an ordinary expression (spec.md §4.9): a literal,
// a dotted attribute access, or a `BinOp`-wrapped numeric add/sub.
type MatchValue struct {
	Base
	Value Expr
}

func (*MatchValue) patternNode()        {}
func (n *MatchValue) Accept(v Visitor) { v.VisitMatchValue(n) }

// MatchSingletonKind is None/True/False used as a pattern.
type MatchSingletonKind uint8

const (
	SingletonNone MatchSingletonKind = iota
	SingletonTrue
	SingletonFalse
)

// MatchSingleton matches one of None/True/False by identity.
type MatchSingleton struct {
	Base
	Kind MatchSingletonKind
}

func (*MatchSingleton) patternNode()        {}
func (n *MatchSingleton) Accept(v Visitor) { v.VisitMatchSingleton(n) }

// MatchSequence matches a fixed/star sequence pattern `[p1, *rest, p2]`
// or `(p1, p2)`.
type MatchSequence struct {
	Base
	Patterns []Pattern
}

func (*MatchSequence) patternNode()        {}
func (n *MatchSequence) Accept(v Visitor) { v.VisitMatchSequence(n) }

// MatchMapping matches `{key: pattern, ..., **rest}`. Rest is "" when no
// `**rest` capture is present.
type MatchMapping struct {
	Base
	Keys     []Expr
	Patterns []Pattern
	Rest     string
	HasRest  bool
}

func (*MatchMapping) patternNode()        {}
func (n *MatchMapping) Accept(v Visitor) { v.VisitMatchMapping(n) }

// MatchClass matches `Cls(p1, p2, kw=p3)`.
type MatchClass struct {
	Base
	Cls          Expr
	Patterns     []Pattern
	KwdAttrs     []string
	KwdPatterns  []Pattern
}

func (*MatchClass) patternNode()        {}
func (n *MatchClass) Accept(v Visitor) { v.VisitMatchClass(n) }

// MatchStar matches `*name` (or `*_` when Name == "") inside a sequence
// pattern.
type MatchStar struct {
	Base
	Name string
}

func (*MatchStar) patternNode()        {}
func (n *MatchStar) Accept(v Visitor) { v.VisitMatchStar(n) }

// MatchAs is either a bare capture/wildcard pattern (Pattern == nil,
// Name == "" for wildcard, else the bound name) or an `inner as name`
// binding (Pattern != nil).
type MatchAs struct {
	Base
	Pattern Pattern
	Name    string
}

func (*MatchAs) patternNode()        {}
func (n *MatchAs) Accept(v Visitor) { v.VisitMatchAs(n) }

// MatchOr is `p1 | p2 | p3`.
type MatchOr struct {
	Base
	Patterns []Pattern
}

func (*MatchOr) patternNode()        {}
func (n *MatchOr) Accept(v Visitor) { v.VisitMatchOr(n) }
