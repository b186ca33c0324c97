// Package ast defines the Python concrete syntax tree produced by
// internal/pyparser. Every node carries a Range (spec.md §3 invariant:
// a node's Range covers exactly the tokens that produced it, widened to
// include enclosing delimiters when they are part of the construct's own
// syntax). The AST is a strict tree: each parent exclusively owns its
// children, there are no back-edges, and Range values are plain value
// types rather than references into the source.
package ast

import "github.com/emilte/ruff/internal/token"

// Node is implemented by every AST node, expression, statement, and
// pattern alike.
type Node interface {
	// NodeRange returns the source extent of the node.
	NodeRange() token.Range
	Accept(v Visitor)
}

// Base is embedded by every concrete node to provide the Range field
// and its accessor without repeating boilerplate at each call site.
type Base struct {
	Range token.Range
}

func (b Base) NodeRange() token.Range { return b.Range }

// Expr is any Python expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any Python statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is any match-statement pattern node (spec.md §4.9).
type Pattern interface {
	Node
	patternNode()
}

// Mod is the root of a parsed program; it is one of ModModule or
// ModExpression (spec.md §4.10).
type Mod interface {
	Node
	modNode()
}

// ModModule is the root produced by Module/Ipython mode.
type ModModule struct {
	Base
	Body []Stmt
}

func (*ModModule) modNode()          {}
func (m *ModModule) Accept(v Visitor) { v.VisitModModule(m) }

// ModExpression is the root produced by Expression mode.
type ModExpression struct {
	Base
	Body Expr
}

func (*ModExpression) modNode()          {}
func (m *ModExpression) Accept(v Visitor) { v.VisitModExpression(m) }

// Invalid stands in for a syntactically unparseable region. It is
// produced by the recovery machinery (spec.md §7) and may appear
// anywhere an Expr, Stmt, or Pattern is expected.
type Invalid struct {
	Base
	// Text is a read-only slice of the skipped source, kept for tools
	// that want to show the offending text without re-slicing the
	// source themselves.
	Text string
}

func (*Invalid) exprNode()           {}
func (*Invalid) stmtNode()           {}
func (*Invalid) patternNode()        {}
func (n *Invalid) Accept(v Visitor) { v.VisitInvalid(n) }
