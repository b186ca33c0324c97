package ast

// FunctionDef is `def name(params) -> returns: body`, also used for
// `async def` (IsAsync set, range widened to cover `async`).
type FunctionDef struct {
	Base
	Name          string
	Args          *Arguments
	Body          []Stmt
	Decorators    []Expr
	Returns       Expr
	TypeParams    []*TypeParam
	IsAsync       bool
}

func (*FunctionDef) stmtNode()           {}
func (n *FunctionDef) Accept(v Visitor) { v.VisitFunctionDef(n) }

// ClassDef is `class name(bases, **kwargs): body`.
type ClassDef struct {
	Base
	Name       string
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
	Decorators []Expr
	TypeParams []*TypeParam
}

func (*ClassDef) stmtNode()           {}
func (n *ClassDef) Accept(v Visitor) { v.VisitClassDef(n) }

// TypeParamKind distinguishes plain/`*`/`**` type-parameter-list slots
// (PEP 695 generic `def f[T, *Ts, **P]()`).
type TypeParamKind uint8

const (
	TypeParamPlain TypeParamKind = iota
	TypeParamVarTuple
	TypeParamVarKeyword
)

// TypeParam is one entry in a PEP 695 type-parameter list.
type TypeParam struct {
	Base
	Name   string
	Bound  Expr
	Kind   TypeParamKind
	Default Expr
}

func (t *TypeParam) Accept(v Visitor) { v.VisitTypeParam(t) }

// Return is `return` or `return value`.
type Return struct {
	Base
	Value Expr
}

func (*Return) stmtNode()           {}
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }

// Delete is `del targets`.
type Delete struct {
	Base
	Targets []Expr
}

func (*Delete) stmtNode()           {}
func (n *Delete) Accept(v Visitor) { v.VisitDelete(n) }

// Assign is `target1 = target2 = ... = value`.
type Assign struct {
	Base
	Targets []Expr
	Value   Expr
}

func (*Assign) stmtNode()           {}
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }

// AugAssign is `target op= value`.
type AugAssign struct {
	Base
	Target Expr
	Op     BinOpKind
	Value  Expr
}

func (*AugAssign) stmtNode()           {}
func (n *AugAssign) Accept(v Visitor) { v.VisitAugAssign(n) }

// AnnAssign is `target: annotation` or `target: annotation = value`.
type AnnAssign struct {
	Base
	Target     Expr
	Annotation Expr
	Value      Expr
	Simple     bool
}

func (*AnnAssign) stmtNode()           {}
func (n *AnnAssign) Accept(v Visitor) { v.VisitAnnAssign(n) }

// ForStmt is `for target in iter: body [else: orelse]`, also used for
// `async for` (IsAsync set).
type ForStmt struct {
	Base
	Target  Expr
	Iter    Expr
	Body    []Stmt
	Orelse  []Stmt
	IsAsync bool
}

func (*ForStmt) stmtNode()           {}
func (n *ForStmt) Accept(v Visitor) { v.VisitForStmt(n) }

// WhileStmt is `while test: body [else: orelse]`.
type WhileStmt struct {
	Base
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (*WhileStmt) stmtNode()           {}
func (n *WhileStmt) Accept(v Visitor) { v.VisitWhileStmt(n) }

// IfStmt is `if test: body [else: orelse]`; `elif` chains are
// represented as a single-statement Orelse holding a nested IfStmt.
type IfStmt struct {
	Base
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

func (*IfStmt) stmtNode()           {}
func (n *IfStmt) Accept(v Visitor) { v.VisitIfStmt(n) }

// WithItem is one `context_expr [as optional_vars]` clause.
type WithItem struct {
	Base
	ContextExpr  Expr
	OptionalVars Expr
}

func (w *WithItem) Accept(v Visitor) { v.VisitWithItem(w) }

// WithStmt is `with items: body`, also used for `async with`.
type WithStmt struct {
	Base
	Items   []*WithItem
	Body    []Stmt
	IsAsync bool
}

func (*WithStmt) stmtNode()           {}
func (n *WithStmt) Accept(v Visitor) { v.VisitWithStmt(n) }

// ExceptHandler is one `except [type [as name]]: body` clause.
type ExceptHandler struct {
	Base
	Type   Expr
	Name   string
	Body   []Stmt
	IsStar bool
}

func (e *ExceptHandler) Accept(v Visitor) { v.VisitExceptHandler(e) }

// TryStmt is `try: body except...: ... else: ... finally: ...`.
type TryStmt struct {
	Base
	Body     []Stmt
	Handlers []*ExceptHandler
	Orelse   []Stmt
	Finally  []Stmt
}

func (*TryStmt) stmtNode()           {}
func (n *TryStmt) Accept(v Visitor) { v.VisitTryStmt(n) }

// Assert is `assert test [, msg]`.
type Assert struct {
	Base
	Test Expr
	Msg  Expr
}

func (*Assert) stmtNode()           {}
func (n *Assert) Accept(v Visitor) { v.VisitAssert(n) }

// Alias is one `name [as asname]` entry in import/from-import.
type Alias struct {
	Base
	Name   string
	AsName string
}

func (a *Alias) Accept(v Visitor) { v.VisitAlias(a) }

// Import is `import a.b [as c], d`.
type Import struct {
	Base
	Names []*Alias
}

func (*Import) stmtNode()           {}
func (n *Import) Accept(v Visitor) { v.VisitImport(n) }

// ImportFrom is `from .mod import a, b as c` / `from . import *`.
type ImportFrom struct {
	Base
	Module     string
	Names      []*Alias
	Level      int // number of leading dots
	ImportStar bool
}

func (*ImportFrom) stmtNode()           {}
func (n *ImportFrom) Accept(v Visitor) { v.VisitImportFrom(n) }

// Global is `global names`.
type Global struct {
	Base
	Names []string
}

func (*Global) stmtNode()           {}
func (n *Global) Accept(v Visitor) { v.VisitGlobal(n) }

// Nonlocal is `nonlocal names`.
type Nonlocal struct {
	Base
	Names []string
}

func (*Nonlocal) stmtNode()           {}
func (n *Nonlocal) Accept(v Visitor) { v.VisitNonlocal(n) }

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Base
	Value Expr
}

func (*ExprStmt) stmtNode()           {}
func (n *ExprStmt) Accept(v Visitor) { v.VisitExprStmt(n) }

// Pass, Break, Continue are the trivial keyword-only statements.
type Pass struct{ Base }
type Break struct{ Base }
type Continue struct{ Base }

func (*Pass) stmtNode()     {}
func (*Break) stmtNode()    {}
func (*Continue) stmtNode() {}

func (n *Pass) Accept(v Visitor)     { v.VisitPass(n) }
func (n *Break) Accept(v Visitor)    { v.VisitBreak(n) }
func (n *Continue) Accept(v Visitor) { v.VisitContinue(n) }

// Raise is `raise` / `raise exc` / `raise exc from cause`.
type Raise struct {
	Base
	Exc   Expr
	Cause Expr
}

func (*Raise) stmtNode()           {}
func (n *Raise) Accept(v Visitor) { v.VisitRaise(n) }

// TypeAlias is the PEP 695 `type Name[params] = value` statement.
type TypeAlias struct {
	Base
	Name       *Name
	TypeParams []*TypeParam
	Value      Expr
}

func (*TypeAlias) stmtNode()           {}
func (n *TypeAlias) Accept(v Visitor) { v.VisitTypeAlias(n) }

// IpyEscapeCommandKind distinguishes the Ipython-mode escape forms.
type IpyEscapeCommandKind uint8

const (
	IpyHelp IpyEscapeCommandKind = iota
	IpyHelp2
	IpyShell
	IpyShCap
	IpyMagic
	IpyMagic2
)

// IpyEscapeCommand is an Ipython-mode-only escape statement, e.g. the
// `expr?`/`expr??` trailing-help rewrite (spec.md §4.8).
type IpyEscapeCommand struct {
	Base
	Kind  IpyEscapeCommandKind
	Value string
}

func (*IpyEscapeCommand) stmtNode()           {}
func (n *IpyEscapeCommand) Accept(v Visitor) { v.VisitIpyEscapeCommand(n) }

// MatchCase is one `case pattern [if guard]: body` clause.
type MatchCase struct {
	Base
	Pattern Pattern
	Guard   Expr
	Body    []Stmt
}

func (m *MatchCase) Accept(v Visitor) { v.VisitMatchCase(m) }

// MatchStmt is `match subject: case ...`.
type MatchStmt struct {
	Base
	Subject Expr
	Cases   []*MatchCase
}

func (*MatchStmt) stmtNode()           {}
func (n *MatchStmt) Accept(v Visitor) { v.VisitMatchStmt(n) }
