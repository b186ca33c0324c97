package ast

import "github.com/emilte/ruff/internal/token"

// ExprContext records whether a Name/Attribute/Subscript/List/Tuple is
// being loaded, stored to, or deleted, set by assignment-target and
// del-target rewriting (spec.md §4.8).
type ExprContext uint8

const (
	Load ExprContext = iota
	Store
	Del
)

// BoolOpKind is the operator of a folded BoolOp node.
type BoolOpKind uint8

const (
	BoolAnd BoolOpKind = iota
	BoolOr
)

// BoolOp is an n-ary run of the same boolean operator folded into one
// node (spec.md §4.3: "Boolean operators fold contiguous same-operator
// runs into a single n-ary BoolOp node").
type BoolOp struct {
	Base
	Op     BoolOpKind
	Values []Expr
}

func (*BoolOp) exprNode()           {}
func (n *BoolOp) Accept(v Visitor) { v.VisitBoolOp(n) }

// CmpOp is one comparison operator in a chained Compare node.
type CmpOp uint8

const (
	CmpEq CmpOp = iota
	CmpNotEq
	CmpLt
	CmpLtE
	CmpGt
	CmpGtE
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

// Compare is a chained comparison `a < b < c` folded into one n-ary node
// with parallel Ops/Comparators vectors (spec.md §4.3).
type Compare struct {
	Base
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

func (*Compare) exprNode()           {}
func (n *Compare) Accept(v Visitor) { v.VisitCompare(n) }

// NamedExpr is the walrus operator `a := b`.
type NamedExpr struct {
	Base
	Target *Name
	Value  Expr
}

func (*NamedExpr) exprNode()           {}
func (n *NamedExpr) Accept(v Visitor) { v.VisitNamedExpr(n) }

// BinOpKind is a binary arithmetic/bitwise operator.
type BinOpKind uint8

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMult
	OpMatMult
	OpDiv
	OpFloorDiv
	OpMod
	OpPow
	OpLShift
	OpRShift
	OpBitOr
	OpBitXor
	OpBitAnd
)

// BinOp is a binary operator application.
type BinOp struct {
	Base
	Left  Expr
	Op    BinOpKind
	Right Expr
}

func (*BinOp) exprNode()           {}
func (n *BinOp) Accept(v Visitor) { v.VisitBinOp(n) }

// UnaryOpKind is a prefix unary operator.
type UnaryOpKind uint8

const (
	OpUAdd UnaryOpKind = iota
	OpUSub
	OpInvert
	OpNot
)

// UnaryOp is a prefix unary operator application.
type UnaryOp struct {
	Base
	Op      UnaryOpKind
	Operand Expr
}

func (*UnaryOp) exprNode()           {}
func (n *UnaryOp) Accept(v Visitor) { v.VisitUnaryOp(n) }

// Lambda is `lambda params: body`.
type Lambda struct {
	Base
	Args *Arguments
	Body Expr
}

func (*Lambda) exprNode()           {}
func (n *Lambda) Accept(v Visitor) { v.VisitLambda(n) }

// IfExp is the conditional expression `body if test else orelse`.
type IfExp struct {
	Base
	Body   Expr
	Test   Expr
	Orelse Expr
}

func (*IfExp) exprNode()           {}
func (n *IfExp) Accept(v Visitor) { v.VisitIfExp(n) }

// Dict is a dict display. A nil entry in Keys at index i marks a
// `**value` unpack whose value is Values[i] (spec.md §9 open question:
// encoded identically to the original implementation).
type Dict struct {
	Base
	Keys   []Expr
	Values []Expr
}

func (*Dict) exprNode()           {}
func (n *Dict) Accept(v Visitor) { v.VisitDict(n) }

// Set is a set display `{a, b, c}`.
type Set struct {
	Base
	Elts []Expr
}

func (*Set) exprNode()           {}
func (n *Set) Accept(v Visitor) { v.VisitSet(n) }

// Comprehension is one `for target in iter [if guard]*` clause, shared
// by list/set/dict comprehensions and generator expressions.
type Comprehension struct {
	Base
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

func (c *Comprehension) Accept(v Visitor) { v.VisitComprehension(c) }

// ListComp is a list comprehension.
type ListComp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

func (*ListComp) exprNode()           {}
func (n *ListComp) Accept(v Visitor) { v.VisitListComp(n) }

// SetComp is a set comprehension.
type SetComp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

func (*SetComp) exprNode()           {}
func (n *SetComp) Accept(v Visitor) { v.VisitSetComp(n) }

// DictComp is a dict comprehension.
type DictComp struct {
	Base
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

func (*DictComp) exprNode()           {}
func (n *DictComp) Accept(v Visitor) { v.VisitDictComp(n) }

// GeneratorExp is a parenthesized generator expression.
type GeneratorExp struct {
	Base
	Elt        Expr
	Generators []*Comprehension
}

func (*GeneratorExp) exprNode()           {}
func (n *GeneratorExp) Accept(v Visitor) { v.VisitGeneratorExp(n) }

// Await is `await value`.
type Await struct {
	Base
	Value Expr
}

func (*Await) exprNode()           {}
func (n *Await) Accept(v Visitor) { v.VisitAwait(n) }

// Yield is `yield` or `yield value`; Value is nil for a bare yield.
type Yield struct {
	Base
	Value Expr
}

func (*Yield) exprNode()           {}
func (n *Yield) Accept(v Visitor) { v.VisitYield(n) }

// YieldFrom is `yield from value`.
type YieldFrom struct {
	Base
	Value Expr
}

func (*YieldFrom) exprNode()           {}
func (n *YieldFrom) Accept(v Visitor) { v.VisitYieldFrom(n) }

// Starred is `*value` at expression position.
type Starred struct {
	Base
	Value Expr
	Ctx   ExprContext
}

func (*Starred) exprNode()           {}
func (n *Starred) Accept(v Visitor) { v.VisitStarred(n) }

// DoubleStarred is `**value`. The parser does not build it: a dict
// display's `**value` is a nil entry in Dict.Keys, and a call's
// `**value` is a Keyword with DoubleStar set.
type DoubleStarred struct {
	Base
	Value Expr
}

func (*DoubleStarred) exprNode()           {}
func (n *DoubleStarred) Accept(v Visitor) { v.VisitDoubleStarred(n) }

// Name is an identifier reference.
type Name struct {
	Base
	Id  string
	Ctx ExprContext
}

func (*Name) exprNode()           {}
func (n *Name) Accept(v Visitor) { v.VisitName(n) }

// List is a list display `[a, b, c]`.
type List struct {
	Base
	Elts []Expr
	Ctx  ExprContext
}

func (*List) exprNode()           {}
func (n *List) Accept(v Visitor) { v.VisitList(n) }

// Tuple is a tuple, parenthesized or bare.
type Tuple struct {
	Base
	Elts            []Expr
	Ctx             ExprContext
	IsParenthesized bool
}

func (*Tuple) exprNode()           {}
func (n *Tuple) Accept(v Visitor) { v.VisitTuple(n) }

// Attribute is `value.attr`.
type Attribute struct {
	Base
	Value Expr
	Attr  string
	Ctx   ExprContext
}

func (*Attribute) exprNode()           {}
func (n *Attribute) Accept(v Visitor) { v.VisitAttribute(n) }

// Subscript is `value[slice]`.
type Subscript struct {
	Base
	Value Expr
	Slice Expr
	Ctx   ExprContext
}

func (*Subscript) exprNode()           {}
func (n *Subscript) Accept(v Visitor) { v.VisitSubscript(n) }

// Slice is `lower:upper:step` inside a Subscript; any component may be
// nil when omitted.
type Slice struct {
	Base
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*Slice) exprNode()           {}
func (n *Slice) Accept(v Visitor) { v.VisitSlice(n) }

// Call is `func(args, kwargs)`.
type Call struct {
	Base
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (*Call) exprNode()           {}
func (n *Call) Accept(v Visitor) { v.VisitCall(n) }

// Keyword is one `name=value` call argument, or `**value` when Arg is
// the empty string with DoubleStar set.
type Keyword struct {
	Base
	Arg       string // "" for **value unpack; only a Name before '=' forms a named Keyword, no Keyword is built for another LHS
	Value     Expr
	DoubleStar bool
}

func (k *Keyword) Accept(v Visitor) { v.VisitKeyword(k) }

// NumberKind distinguishes integer/float/complex numeric literals.
type NumberKind uint8

const (
	NumberInt NumberKind = iota
	NumberFloat
	NumberComplex
)

// Number is a numeric literal; Text is the literal source text, parsed
// lazily by internal/numlit (an external collaborator per spec.md §6).
type Number struct {
	Base
	Kind NumberKind
	Text string
}

func (*Number) exprNode()           {}
func (n *Number) Accept(v Visitor) { v.VisitNumber(n) }

// BoolLiteral is True/False.
type BoolLiteral struct {
	Base
	Value bool
}

func (*BoolLiteral) exprNode()           {}
func (n *BoolLiteral) Accept(v Visitor) { v.VisitBoolLiteral(n) }

// NoneLiteral is the `None` singleton.
type NoneLiteral struct{ Base }

func (*NoneLiteral) exprNode()           {}
func (n *NoneLiteral) Accept(v Visitor) { v.VisitNoneLiteral(n) }

// EllipsisLiteral is the `...` singleton.
type EllipsisLiteral struct{ Base }

func (*EllipsisLiteral) exprNode()           {}
func (n *EllipsisLiteral) Accept(v Visitor) { v.VisitEllipsisLiteral(n) }

// StringLiteral is a single plain or byte string token's worth of raw
// text (escape processing deferred to internal/strcontent).
type StringLiteral struct {
	Base
	Value        string
	Kind         token.StringKind
	TripleQuoted bool
}

func (*StringLiteral) exprNode()           {}
func (n *StringLiteral) Accept(v Visitor) { v.VisitStringLiteral(n) }

// ConcatenatedString is the implicit concatenation of two or more
// adjacent string/f-string parts (spec.md §4.7); each Part is either a
// *StringLiteral or an *FString.
type ConcatenatedString struct {
	Base
	Parts []Expr
}

func (*ConcatenatedString) exprNode()           {}
func (n *ConcatenatedString) Accept(v Visitor) { v.VisitConcatenatedString(n) }

// FString is a single f-string literal, Elements holding its literal and
// expression elements in source order (spec.md §4.7).
type FString struct {
	Base
	Elements []FStringElement
}

func (*FString) exprNode()           {}
func (n *FString) Accept(v Visitor) { v.VisitFString(n) }

// FStringElement is implemented by FStringLiteralElement and
// FStringExpressionElement.
type FStringElement interface {
	Node
	fstringElementNode()
}

// FStringLiteralElement is a run of literal text inside an f-string.
type FStringLiteralElement struct {
	Base
	Value string
	IsRaw bool
}

func (*FStringLiteralElement) fstringElementNode()    {}
func (n *FStringLiteralElement) Accept(v Visitor)      { v.VisitFStringLiteralElement(n) }

// ConversionKind is the optional `!s`/`!r`/`!a` flag on an f-string
// expression element.
type ConversionKind uint8

const (
	ConversionNone ConversionKind = iota
	ConversionStr
	ConversionRepr
	ConversionAscii
)

// DebugText captures the literal source text surrounding a self-
// documenting `{expr=}` f-string element (spec.md §4.7).
type DebugText struct {
	Leading  string
	Trailing string
}

// FStringExpressionElement is a `{expr !conv :spec}` element.
type FStringExpressionElement struct {
	Base
	Expression Expr
	Debug      *DebugText
	Conversion ConversionKind
	FormatSpec []FStringElement
}

func (*FStringExpressionElement) fstringElementNode()    {}
func (n *FStringExpressionElement) Accept(v Visitor)      { v.VisitFStringExpressionElement(n) }
