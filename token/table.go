package token

// entry is one row of the vocabulary table. Spelling is the exact source
// text for operators and keywords, and a display name for everything else.
type entry struct {
	kind     Kind
	spelling string
	category Category
}

var vocabulary = [...]entry{
	{Invalid, "INVALID", Structural},

	{Comment, "COMMENT", Structural},
	{Indent, "INDENT", Structural},
	{Dedent, "DEDENT", Structural},
	{Newline, "NEWLINE", Structural},
	{Eof, "EOF", Structural},

	{Identifier, "IDENT", Name},
	{QualifiedIdentifier, "QUALIFIED_IDENT", Name},

	{Bool, "BOOL", Literal},
	{Int, "INT", Literal},
	{Real, "REAL", Literal},
	{String, "STRING", Literal},
	{BitString, "BIT_STRING", Literal},
	{Time, "TIME", Literal},

	{Negation, "!", Operator},
	{Assignment, "=", Operator},
	{Addition, "+", Operator},
	{Subtraction, "-", Operator},
	{Multiplication, "*", Operator},
	{Division, "/", Operator},
	{Modulo, "%", Operator},
	{Exponent, "**", Operator},
	{Equality, "==", Operator},
	{NonEquality, "!=", Operator},
	{Less, "<", Operator},
	{LessEqual, "<=", Operator},
	{Greater, ">", Operator},
	{GreaterEqual, ">=", Operator},
	{And, "&&", Operator},
	{Or, "||", Operator},
	{LeftShift, "<<", Operator},
	{RightShift, ">>", Operator},
	{BitAnd, "&", Operator},
	{BitOr, "|", Operator},
	{BitXor, "^", Operator},
	{LeftParenthesis, "(", Operator},
	{RightParenthesis, ")", Operator},
	{LeftBracket, "[", Operator},
	{RightBracket, "]", Operator},
	{Comma, ",", Operator},
	{Semicolon, ";", Operator},

	{Const, "const", LanguageKeyword},
	{Import, "import", LanguageKeyword},
	{Type, "type", LanguageKeyword},

	{Block, "block", FunctionalityKeyword},
	{Bus, "bus", FunctionalityKeyword},
	{Config, "config", FunctionalityKeyword},
	{Irq, "irq", FunctionalityKeyword},
	{Mask, "mask", FunctionalityKeyword},
	{Memory, "memory", FunctionalityKeyword},
	{Param, "param", FunctionalityKeyword},
	{Proc, "proc", FunctionalityKeyword},
	{Return, "return", FunctionalityKeyword},
	{Static, "static", FunctionalityKeyword},
	{Status, "status", FunctionalityKeyword},
	{Stream, "stream", FunctionalityKeyword},

	{Access, "access", PropertyKeyword},
	{AddEnable, "add_enable", PropertyKeyword},
	{Atomic, "atomic", PropertyKeyword},
	{ByteWriteEnable, "byte_write_enable", PropertyKeyword},
	{Clear, "clear", PropertyKeyword},
	{Delay, "delay", PropertyKeyword},
	{EnableInitValue, "enable_init_value", PropertyKeyword},
	{EnableResetValue, "enable_reset_value", PropertyKeyword},
	{Groups, "groups", PropertyKeyword},
	{InitValue, "init_value", PropertyKeyword},
	{InTrigger, "in_trigger", PropertyKeyword},
	{Masters, "masters", PropertyKeyword},
	{OutTrigger, "out_trigger", PropertyKeyword},
	{Range, "range", PropertyKeyword},
	{ReadLatency, "read_latency", PropertyKeyword},
	{ReadValue, "read_value", PropertyKeyword},
	{Reset, "reset", PropertyKeyword},
	{ResetValue, "reset_value", PropertyKeyword},
	{Size, "size", PropertyKeyword},
	{Width, "width", PropertyKeyword},
	{Period, "period", PropertyKeyword},
}

var (
	kindNames       [kindCount]string
	kindCategories  [kindCount]Category
	keywordTables   [3]map[string]Kind
	operatorByBytes = map[string]Kind{}
)

func init() {
	for i := range keywordTables {
		keywordTables[i] = map[string]Kind{}
	}
	for _, e := range vocabulary {
		kindNames[e.kind] = e.spelling
		kindCategories[e.kind] = e.category
		switch e.category {
		case LanguageKeyword:
			keywordTables[0][e.spelling] = e.kind
		case FunctionalityKeyword:
			keywordTables[1][e.spelling] = e.kind
		case PropertyKeyword:
			keywordTables[2][e.spelling] = e.kind
		case Operator:
			operatorByBytes[e.spelling] = e.kind
		}
	}
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Category returns the category the kind belongs to.
func (k Kind) Category() Category {
	if k < kindCount {
		return kindCategories[k]
	}
	return Structural
}

// IsKeyword reports whether k is a language, functionality or property keyword.
func (k Kind) IsKeyword() bool {
	switch k.Category() {
	case LanguageKeyword, FunctionalityKeyword, PropertyKeyword:
		return true
	}
	return false
}

// LookupKeyword classifies an identifier run. Language keywords are consulted
// first, then functionality keywords, then property keywords.
func LookupKeyword(word []byte) (Kind, bool) {
	for _, table := range keywordTables {
		// The string conversion in a map index does not allocate.
		if k, ok := table[string(word)]; ok {
			return k, true
		}
	}
	return Identifier, false
}

// LookupOperator returns the kind spelled exactly by op.
func LookupOperator(op []byte) (Kind, bool) {
	k, ok := operatorByBytes[string(op)]
	return k, ok
}

// Keywords returns the spellings of every keyword in the given category.
func Keywords(c Category) []string {
	var words []string
	for _, e := range vocabulary {
		if e.category == c {
			words = append(words, e.spelling)
		}
	}
	return words
}
