package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectModuleSeg    Code = 2004
	SynExpectItemAfterDbl Code = 2005
	SynExpectIdentAfterAs Code = 2006
	SynEmptyImportGroup   Code = 2007
	SynUnclosedParen      Code = 2008
	SynUnclosedBrace      Code = 2009
	SynUnclosedBracket    Code = 2010
	SynUnexpectedTopLevel Code = 2011
	SynExpectType         Code = 2012
	SynExpectExpr         Code = 2013
	SynExpectCase         Code = 2014
	SynExpectFatArrow     Code = 2015
	SynExpectColon        Code = 2016
	SynExpectMemberSemi   Code = 2017
	SynBadStructMember    Code = 2018
	SynBadAssignTarget    Code = 2019
	SynImportAfterDecl    Code = 2020

	// Импорты
	ImpInfo   Code = 3000
	ImpUnused Code = 3001
)

func (c Code) String() string {
	return fmt.Sprintf("DR%04d", uint16(c))
}
