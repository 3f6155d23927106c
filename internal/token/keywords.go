package token

var keywords = map[string]Kind{
	"import":   KwImport,
	"as":       KwAs,
	"type":     KwType,
	"let":      KwLet,
	"const":    KwConst,
	"fn":       KwFn,
	"enum":     KwEnum,
	"struct":   KwStruct,
	"union":    KwUnion,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"match":    KwMatch,
	"switch":   KwSwitch,
	"case":     KwCase,
	"defer":    KwDefer,
	"return":   KwReturn,
	"yield":    KwYield,
	"break":    KwBreak,
	"continue": KwContinue,
	"alloc":    KwAlloc,
	"free":     KwFree,
	"append":   KwAppend,
	"insert":   KwInsert,
	"assert":   KwAssert,
	"size":     KwSize,
	"len":      KwLen,
	"offset":   KwOffset,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
