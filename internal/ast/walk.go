package ast

// Visitor is implemented by anything that walks the AST, mirroring the
// teacher's Accept(v Visitor)/VisitXxx double-dispatch shape (see
// mcgru-funxy internal/ast/ast.go and internal/ast/walk.go). Concrete
// consumer in this repo: internal/ast/dump.go (the debug dumper behind
// cmd/pyparse's -dump flag).
type Visitor interface {
	VisitModModule(*ModModule)
	VisitModExpression(*ModExpression)
	VisitInvalid(*Invalid)

	VisitFunctionDef(*FunctionDef)
	VisitClassDef(*ClassDef)
	VisitTypeParam(*TypeParam)
	VisitReturn(*Return)
	VisitDelete(*Delete)
	VisitAssign(*Assign)
	VisitAugAssign(*AugAssign)
	VisitAnnAssign(*AnnAssign)
	VisitForStmt(*ForStmt)
	VisitWhileStmt(*WhileStmt)
	VisitIfStmt(*IfStmt)
	VisitWithItem(*WithItem)
	VisitWithStmt(*WithStmt)
	VisitExceptHandler(*ExceptHandler)
	VisitTryStmt(*TryStmt)
	VisitAssert(*Assert)
	VisitAlias(*Alias)
	VisitImport(*Import)
	VisitImportFrom(*ImportFrom)
	VisitGlobal(*Global)
	VisitNonlocal(*Nonlocal)
	VisitExprStmt(*ExprStmt)
	VisitPass(*Pass)
	VisitBreak(*Break)
	VisitContinue(*Continue)
	VisitRaise(*Raise)
	VisitTypeAlias(*TypeAlias)
	VisitIpyEscapeCommand(*IpyEscapeCommand)
	VisitMatchCase(*MatchCase)
	VisitMatchStmt(*MatchStmt)

	VisitBoolOp(*BoolOp)
	VisitCompare(*Compare)
	VisitNamedExpr(*NamedExpr)
	VisitBinOp(*BinOp)
	VisitUnaryOp(*UnaryOp)
	VisitLambda(*Lambda)
	VisitIfExp(*IfExp)
	VisitDict(*Dict)
	VisitSet(*Set)
	VisitComprehension(*Comprehension)
	VisitListComp(*ListComp)
	VisitSetComp(*SetComp)
	VisitDictComp(*DictComp)
	VisitGeneratorExp(*GeneratorExp)
	VisitAwait(*Await)
	VisitYield(*Yield)
	VisitYieldFrom(*YieldFrom)
	VisitStarred(*Starred)
	VisitDoubleStarred(*DoubleStarred)
	VisitName(*Name)
	VisitList(*List)
	VisitTuple(*Tuple)
	VisitAttribute(*Attribute)
	VisitSubscript(*Subscript)
	VisitSlice(*Slice)
	VisitCall(*Call)
	VisitKeyword(*Keyword)
	VisitNumber(*Number)
	VisitBoolLiteral(*BoolLiteral)
	VisitNoneLiteral(*NoneLiteral)
	VisitEllipsisLiteral(*EllipsisLiteral)
	VisitStringLiteral(*StringLiteral)
	VisitConcatenatedString(*ConcatenatedString)
	VisitFString(*FString)
	VisitFStringLiteralElement(*FStringLiteralElement)
	VisitFStringExpressionElement(*FStringExpressionElement)

	VisitParameter(*Parameter)
	VisitArguments(*Arguments)

	VisitMatchValue(*MatchValue)
	VisitMatchSingleton(*MatchSingleton)
	VisitMatchSequence(*MatchSequence)
	VisitMatchMapping(*MatchMapping)
	VisitMatchClass(*MatchClass)
	VisitMatchStar(*MatchStar)
	VisitMatchAs(*MatchAs)
	VisitMatchOr(*MatchOr)
}

// BaseVisitor implements Visitor with no-op methods; embed it to only
// override the cases a concrete visitor cares about, the same pattern
// the teacher's prettyprinter uses for its tree/code printers.
type BaseVisitor struct{}

func (BaseVisitor) VisitModModule(*ModModule)                               {}
func (BaseVisitor) VisitModExpression(*ModExpression)                       {}
func (BaseVisitor) VisitInvalid(*Invalid)                                   {}
func (BaseVisitor) VisitFunctionDef(*FunctionDef)                           {}
func (BaseVisitor) VisitClassDef(*ClassDef)                                 {}
func (BaseVisitor) VisitTypeParam(*TypeParam)                               {}
func (BaseVisitor) VisitReturn(*Return)                                     {}
func (BaseVisitor) VisitDelete(*Delete)                                     {}
func (BaseVisitor) VisitAssign(*Assign)                                     {}
func (BaseVisitor) VisitAugAssign(*AugAssign)                               {}
func (BaseVisitor) VisitAnnAssign(*AnnAssign)                               {}
func (BaseVisitor) VisitForStmt(*ForStmt)                                   {}
func (BaseVisitor) VisitWhileStmt(*WhileStmt)                               {}
func (BaseVisitor) VisitIfStmt(*IfStmt)                                     {}
func (BaseVisitor) VisitWithItem(*WithItem)                                 {}
func (BaseVisitor) VisitWithStmt(*WithStmt)                                 {}
func (BaseVisitor) VisitExceptHandler(*ExceptHandler)                       {}
func (BaseVisitor) VisitTryStmt(*TryStmt)                                   {}
func (BaseVisitor) VisitAssert(*Assert)                                     {}
func (BaseVisitor) VisitAlias(*Alias)                                       {}
func (BaseVisitor) VisitImport(*Import)                                     {}
func (BaseVisitor) VisitImportFrom(*ImportFrom)                             {}
func (BaseVisitor) VisitGlobal(*Global)                                     {}
func (BaseVisitor) VisitNonlocal(*Nonlocal)                                 {}
func (BaseVisitor) VisitExprStmt(*ExprStmt)                                 {}
func (BaseVisitor) VisitPass(*Pass)                                         {}
func (BaseVisitor) VisitBreak(*Break)                                       {}
func (BaseVisitor) VisitContinue(*Continue)                                 {}
func (BaseVisitor) VisitRaise(*Raise)                                       {}
func (BaseVisitor) VisitTypeAlias(*TypeAlias)                               {}
func (BaseVisitor) VisitIpyEscapeCommand(*IpyEscapeCommand)                 {}
func (BaseVisitor) VisitMatchCase(*MatchCase)                               {}
func (BaseVisitor) VisitMatchStmt(*MatchStmt)                               {}
func (BaseVisitor) VisitBoolOp(*BoolOp)                                     {}
func (BaseVisitor) VisitCompare(*Compare)                                   {}
func (BaseVisitor) VisitNamedExpr(*NamedExpr)                               {}
func (BaseVisitor) VisitBinOp(*BinOp)                                       {}
func (BaseVisitor) VisitUnaryOp(*UnaryOp)                                   {}
func (BaseVisitor) VisitLambda(*Lambda)                                     {}
func (BaseVisitor) VisitIfExp(*IfExp)                                       {}
func (BaseVisitor) VisitDict(*Dict)                                         {}
func (BaseVisitor) VisitSet(*Set)                                           {}
func (BaseVisitor) VisitComprehension(*Comprehension)                      {}
func (BaseVisitor) VisitListComp(*ListComp)                                 {}
func (BaseVisitor) VisitSetComp(*SetComp)                                   {}
func (BaseVisitor) VisitDictComp(*DictComp)                                 {}
func (BaseVisitor) VisitGeneratorExp(*GeneratorExp)                        {}
func (BaseVisitor) VisitAwait(*Await)                                       {}
func (BaseVisitor) VisitYield(*Yield)                                       {}
func (BaseVisitor) VisitYieldFrom(*YieldFrom)                               {}
func (BaseVisitor) VisitStarred(*Starred)                                   {}
func (BaseVisitor) VisitDoubleStarred(*DoubleStarred)                       {}
func (BaseVisitor) VisitName(*Name)                                         {}
func (BaseVisitor) VisitList(*List)                                        {}
func (BaseVisitor) VisitTuple(*Tuple)                                       {}
func (BaseVisitor) VisitAttribute(*Attribute)                               {}
func (BaseVisitor) VisitSubscript(*Subscript)                               {}
func (BaseVisitor) VisitSlice(*Slice)                                       {}
func (BaseVisitor) VisitCall(*Call)                                         {}
func (BaseVisitor) VisitKeyword(*Keyword)                                   {}
func (BaseVisitor) VisitNumber(*Number)                                     {}
func (BaseVisitor) VisitBoolLiteral(*BoolLiteral)                           {}
func (BaseVisitor) VisitNoneLiteral(*NoneLiteral)                           {}
func (BaseVisitor) VisitEllipsisLiteral(*EllipsisLiteral)                   {}
func (BaseVisitor) VisitStringLiteral(*StringLiteral)                       {}
func (BaseVisitor) VisitConcatenatedString(*ConcatenatedString)             {}
func (BaseVisitor) VisitFString(*FString)                                   {}
func (BaseVisitor) VisitFStringLiteralElement(*FStringLiteralElement)       {}
func (BaseVisitor) VisitFStringExpressionElement(*FStringExpressionElement) {}
func (BaseVisitor) VisitParameter(*Parameter)                               {}
func (BaseVisitor) VisitArguments(*Arguments)                               {}
func (BaseVisitor) VisitMatchValue(*MatchValue)                             {}
func (BaseVisitor) VisitMatchSingleton(*MatchSingleton)                     {}
func (BaseVisitor) VisitMatchSequence(*MatchSequence)                       {}
func (BaseVisitor) VisitMatchMapping(*MatchMapping)                         {}
func (BaseVisitor) VisitMatchClass(*MatchClass)                             {}
func (BaseVisitor) VisitMatchStar(*MatchStar)                               {}
func (BaseVisitor) VisitMatchAs(*MatchAs)                                   {}
func (BaseVisitor) VisitMatchOr(*MatchOr)                                   {}
