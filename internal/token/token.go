// Package token defines the token alphabet consumed by the parser. The
// lexer (internal/pylex) is the sole producer; the parser consumes each
// token exactly once.
package token

import "fmt"

// Kind is the discriminant of a Token. It is a small dense integer so
// that TokenSet (internal/tokenset) can index it directly into a bitset.
type Kind uint8

const (
	EndOfFile Kind = iota
	Invalid

	Newline
	Indent
	Dedent

	Name
	Int
	Float
	Complex
	String
	FStringStart
	FStringMiddle
	FStringEnd
	IpyEscapeCommand

	// Structural
	Lpar
	Rpar
	Lsqb
	Rsqb
	Lbrace
	Rbrace
	Colon
	Comma
	Semi
	Dot
	Ellipsis
	Arrow
	ColonEqual // :=
	Equal
	At

	// Augmented assignment
	PlusEqual
	MinusEqual
	StarEqual
	DoubleStarEqual
	SlashEqual
	DoubleSlashEqual
	PercentEqual
	AtEqual
	AmperEqual
	VbarEqual
	CircumflexEqual
	LeftShiftEqual
	RightShiftEqual

	// Operators
	Plus
	Minus
	Star
	DoubleStar
	Slash
	DoubleSlash
	Percent
	Tilde
	Amper
	Vbar
	Circumflex
	LeftShift
	RightShift
	Less
	Greater
	LessEqual
	GreaterEqual
	EqEqual
	NotEqual
	Bang // f-string conversion marker only; bare '!' is otherwise illegal

	// Keywords
	KwFalse
	KwNone
	KwTrue
	KwAnd
	KwAs
	KwAssert
	KwAsync
	KwAwait
	KwBreak
	KwClass
	KwContinue
	KwDef
	KwDel
	KwElif
	KwElse
	KwExcept
	KwFinally
	KwFor
	KwFrom
	KwGlobal
	KwIf
	KwImport
	KwIn
	KwIs
	KwLambda
	KwNonlocal
	KwNot
	KwOr
	KwPass
	KwRaise
	KwReturn
	KwTry
	KwWhile
	KwWith
	KwYield

	// Soft keywords (contextual; lexed as Name, reclassified by the parser)
	KwMatch
	KwCase
	KwType
	KwUnderscore
)

// StringKind distinguishes the quoting/prefix family of a String token.
type StringKind uint8

const (
	StringPlain StringKind = iota
	StringRaw
	StringBytes
	StringRawBytes
	StringUnicode
)

// Token is the unit produced by the lexer and consumed by the parser.
// Payload fields are populated according to Kind; zero value elsewhere.
type Token struct {
	Kind Kind
	Range

	// Name holds the identifier text for Name and soft-keyword tokens.
	Name string

	// StringValue holds the raw (unescaped) text between quotes for
	// String/FStringMiddle tokens; escape processing is left to
	// internal/strcontent.
	StringValue string
	StringKind  StringKind
	TripleQuoted bool
	IsRawFString bool

	// NumberText holds the literal text of a numeric token, parsed lazily
	// by internal/numlit.
	NumberText string

	// IpyKind records which ipython escape command was lexed ("?", "??",
	// "!", "!!", etc.) when Kind == IpyEscapeCommand.
	IpyKind string
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d:%d", t.Kind, t.Start, t.End)
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var kindNames = map[Kind]string{
	EndOfFile:        "EndOfFile",
	Invalid:          "Invalid",
	Newline:          "Newline",
	Indent:           "Indent",
	Dedent:           "Dedent",
	Name:             "Name",
	Int:              "Int",
	Float:            "Float",
	Complex:          "Complex",
	String:           "String",
	FStringStart:     "FStringStart",
	FStringMiddle:    "FStringMiddle",
	FStringEnd:       "FStringEnd",
	IpyEscapeCommand: "IpyEscapeCommand",
	Lpar:             "(",
	Rpar:             ")",
	Lsqb:             "[",
	Rsqb:             "]",
	Lbrace:           "{",
	Rbrace:           "}",
	Colon:            ":",
	Comma:            ",",
	Semi:             ";",
	Dot:              ".",
	Ellipsis:         "...",
	Arrow:            "->",
	ColonEqual:       ":=",
	Equal:            "=",
	At:               "@",
	PlusEqual:        "+=",
	MinusEqual:       "-=",
	StarEqual:        "*=",
	DoubleStarEqual:  "**=",
	SlashEqual:       "/=",
	DoubleSlashEqual: "//=",
	PercentEqual:     "%=",
	AtEqual:          "@=",
	AmperEqual:       "&=",
	VbarEqual:        "|=",
	CircumflexEqual:  "^=",
	LeftShiftEqual:   "<<=",
	RightShiftEqual:  ">>=",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	DoubleStar:       "**",
	Slash:            "/",
	DoubleSlash:      "//",
	Percent:          "%",
	Tilde:            "~",
	Amper:            "&",
	Vbar:             "|",
	Circumflex:       "^",
	LeftShift:        "<<",
	RightShift:       ">>",
	Less:             "<",
	Greater:          ">",
	LessEqual:        "<=",
	GreaterEqual:     ">=",
	EqEqual:          "==",
	NotEqual:         "!=",
	Bang:             "!",
	KwFalse:          "False",
	KwNone:           "None",
	KwTrue:           "True",
	KwAnd:            "and",
	KwAs:              "as",
	KwAssert:         "assert",
	KwAsync:          "async",
	KwAwait:          "await",
	KwBreak:          "break",
	KwClass:          "class",
	KwContinue:       "continue",
	KwDef:            "def",
	KwDel:            "del",
	KwElif:           "elif",
	KwElse:           "else",
	KwExcept:         "except",
	KwFinally:        "finally",
	KwFor:            "for",
	KwFrom:           "from",
	KwGlobal:         "global",
	KwIf:             "if",
	KwImport:         "import",
	KwIn:             "in",
	KwIs:             "is",
	KwLambda:         "lambda",
	KwNonlocal:       "nonlocal",
	KwNot:            "not",
	KwOr:             "or",
	KwPass:           "pass",
	KwRaise:          "raise",
	KwReturn:         "return",
	KwTry:            "try",
	KwWhile:          "while",
	KwWith:           "with",
	KwYield:          "yield",
	KwMatch:          "match",
	KwCase:           "case",
	KwType:           "type",
	KwUnderscore:     "_",
}

// Keywords maps the reserved-word spelling to its Kind. Soft keywords
// (match/case/type/_) are intentionally excluded: the lexer always
// produces Name for them and the parser reclassifies based on position.
var Keywords = map[string]Kind{
	"False":    KwFalse,
	"None":     KwNone,
	"True":     KwTrue,
	"and":      KwAnd,
	"as":       KwAs,
	"assert":   KwAssert,
	"async":    KwAsync,
	"await":    KwAwait,
	"break":    KwBreak,
	"class":    KwClass,
	"continue": KwContinue,
	"def":      KwDef,
	"del":      KwDel,
	"elif":     KwElif,
	"else":     KwElse,
	"except":   KwExcept,
	"finally":  KwFinally,
	"for":      KwFor,
	"from":     KwFrom,
	"global":   KwGlobal,
	"if":       KwIf,
	"import":   KwImport,
	"in":       KwIn,
	"is":       KwIs,
	"lambda":   KwLambda,
	"nonlocal": KwNonlocal,
	"not":      KwNot,
	"or":       KwOr,
	"pass":     KwPass,
	"raise":    KwRaise,
	"return":   KwReturn,
	"try":      KwTry,
	"while":    KwWhile,
	"with":     KwWith,
	"yield":    KwYield,
}

// LookupIdent classifies raw identifier text the way the lexer does:
// hard keywords become their own Kind, everything else is a Name.
func LookupIdent(ident string) Kind {
	if k, ok := Keywords[ident]; ok {
		return k
	}
	return Name
}
