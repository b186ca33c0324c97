package ast

import (
	"fmt"
	"strings"
)

// Dumper renders an indented tree view of a Node, mirroring the shape of
// the teacher's prettyprinter.TreePrinter. It is used by this
// package's own tests and by cmd/pyparse's -dump flag.
type Dumper struct {
	BaseVisitor
	buf    strings.Builder
	indent int
}

// Dump renders n and its children as an indented tree.
func Dump(n Node) string {
	d := &Dumper{}
	n.Accept(d)
	return d.buf.String()
}

func (d *Dumper) line(format string, args ...interface{}) {
	d.buf.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteString("\n")
}

func (d *Dumper) child(n Node) {
	if n == nil {
		return
	}
	d.indent++
	n.Accept(d)
	d.indent--
}

func (d *Dumper) children(label string, nodes ...Node) {
	if len(nodes) == 0 {
		return
	}
	d.indent++
	d.line("%s:", label)
	d.indent++
	for _, n := range nodes {
		if n == nil {
			d.line("<nil>")
			continue
		}
		n.Accept(d)
	}
	d.indent--
	d.indent--
}

func (d *Dumper) VisitModModule(n *ModModule) {
	d.line("Module")
	for _, s := range n.Body {
		d.child(s)
	}
}

func (d *Dumper) VisitModExpression(n *ModExpression) {
	d.line("Expression")
	d.child(n.Body)
}

func (d *Dumper) VisitInvalid(n *Invalid) { d.line("Invalid(%q)", n.Text) }

func (d *Dumper) VisitName(n *Name)               { d.line("Name(%s)", n.Id) }
func (d *Dumper) VisitNumber(n *Number)            { d.line("Number(%s)", n.Text) }
func (d *Dumper) VisitBoolLiteral(n *BoolLiteral)  { d.line("Bool(%v)", n.Value) }
func (d *Dumper) VisitNoneLiteral(*NoneLiteral)    { d.line("None") }
func (d *Dumper) VisitEllipsisLiteral(*EllipsisLiteral) { d.line("Ellipsis") }
func (d *Dumper) VisitStringLiteral(n *StringLiteral) {
	d.line("String(%q)", n.Value)
}

func (d *Dumper) VisitBinOp(n *BinOp) {
	d.line("BinOp")
	d.child(n.Left)
	d.child(n.Right)
}

func (d *Dumper) VisitUnaryOp(n *UnaryOp) {
	d.line("UnaryOp")
	d.child(n.Operand)
}

func (d *Dumper) VisitBoolOp(n *BoolOp) {
	d.line("BoolOp(n=%d)", len(n.Values))
	for _, v := range n.Values {
		d.child(v)
	}
}

func (d *Dumper) VisitCompare(n *Compare) {
	d.line("Compare(ops=%d)", len(n.Ops))
	d.child(n.Left)
	for _, c := range n.Comparators {
		d.child(c)
	}
}

func (d *Dumper) VisitCall(n *Call) {
	d.line("Call")
	d.child(n.Func)
	for _, a := range n.Args {
		d.child(a)
	}
	for _, k := range n.Keywords {
		d.child(k)
	}
}

func (d *Dumper) VisitKeyword(n *Keyword) {
	if n.DoubleStar {
		d.line("Keyword(**)")
	} else {
		d.line("Keyword(%s)", n.Arg)
	}
	d.child(n.Value)
}

func (d *Dumper) VisitAttribute(n *Attribute) {
	d.line("Attribute(.%s)", n.Attr)
	d.child(n.Value)
}

func (d *Dumper) VisitSubscript(n *Subscript) {
	d.line("Subscript")
	d.child(n.Value)
	d.child(n.Slice)
}

func (d *Dumper) VisitTuple(n *Tuple) {
	d.line("Tuple(paren=%v)", n.IsParenthesized)
	for _, e := range n.Elts {
		d.child(e)
	}
}

func (d *Dumper) VisitList(n *List) {
	d.line("List")
	for _, e := range n.Elts {
		d.child(e)
	}
}

func (d *Dumper) VisitAssign(n *Assign) {
	d.line("Assign")
	d.children("targets", exprsToNodes(n.Targets)...)
	d.child(n.Value)
}

func (d *Dumper) VisitExprStmt(n *ExprStmt) {
	d.line("ExprStmt")
	d.child(n.Value)
}

func (d *Dumper) VisitFunctionDef(n *FunctionDef) {
	d.line("FunctionDef(%s, async=%v)", n.Name, n.IsAsync)
	for _, s := range n.Body {
		d.child(s)
	}
}

func (d *Dumper) VisitIfStmt(n *IfStmt) {
	d.line("If")
	d.child(n.Test)
	d.children("body", stmtsToNodes(n.Body)...)
	d.children("orelse", stmtsToNodes(n.Orelse)...)
}

func exprsToNodes(es []Expr) []Node {
	out := make([]Node, len(es))
	for i, e := range es {
		out[i] = e
	}
	return out
}

func stmtsToNodes(ss []Stmt) []Node {
	out := make([]Node, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
