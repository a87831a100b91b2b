package formula

import "fmt"

type SyntaxErrorKind string

const (
	KindUnclosedGroup                     = SyntaxErrorKind("unclosed-group")
	KindUnopenedGroup                     = SyntaxErrorKind("unopened-group")
	KindEmptyGroup                        = SyntaxErrorKind("empty-group")
	KindOperatorAtGroupStart              = SyntaxErrorKind("operator-at-group-start")
	KindMissingOperatorBetweenExpressions = SyntaxErrorKind("missing-operator")
	KindConsecutiveOperators              = SyntaxErrorKind("consecutive-operators")
	KindNegatedOperator                   = SyntaxErrorKind("negated-operator")
	KindLeadingOperatorOrRightParen       = SyntaxErrorKind("leading-operator-or-right-paren")
	KindTrailingOperatorOrNegation        = SyntaxErrorKind("trailing-operator-or-negation")
	KindInvalidOperatorPairing            = SyntaxErrorKind("invalid-operator")
	KindMalformedOperatorLength           = SyntaxErrorKind("malformed-operator-length")
	KindUnrecognizedSymbol                = SyntaxErrorKind("unrecognized-symbol")
	KindEmptyFormula                      = SyntaxErrorKind("empty-formula")
)

type SyntaxError struct {
	Kind    SyntaxErrorKind
	message string
}

func newSyntaxError(kind SyntaxErrorKind, message string) *SyntaxError {
	return &SyntaxError{
		Kind:    kind,
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	SynErrUnrecognizedSymbol      = newSyntaxError(KindUnrecognizedSymbol, "unrecognized symbol")
	SynErrMalformedOperatorLength = newSyntaxError(KindMalformedOperatorLength, "logical operators must consist of 2 symbols")
	SynErrInvalidOperator         = newSyntaxError(KindInvalidOperatorPairing, "invalid operator")

	// scope errors
	SynErrUnclosedGroup = newSyntaxError(KindUnclosedGroup, `need closing parenthesis ")"`)
	SynErrUnopenedGroup = newSyntaxError(KindUnopenedGroup, `scope cannot be negative, i.e. no ")" before "("`)

	// syntax errors
	SynErrEmptyGroup              = newSyntaxError(KindEmptyGroup, `empty expression, i.e. "()"`)
	SynErrOperatorAtGroupStart    = newSyntaxError(KindOperatorAtGroupStart, "cannot begin an expression with an operator")
	SynErrMissingOperator         = newSyntaxError(KindMissingOperatorBetweenExpressions, "must have an operator between expressions")
	SynErrConsecutiveOperators    = newSyntaxError(KindConsecutiveOperators, "cannot use consecutive operators")
	SynErrNegatedOperator         = newSyntaxError(KindNegatedOperator, "cannot negate operator")
	SynErrLeadingOperator         = newSyntaxError(KindLeadingOperatorOrRightParen, "cannot begin entry with operator")
	SynErrLeadingRightParen       = newSyntaxError(KindLeadingOperatorOrRightParen, "cannot begin entry with right parenthesis")
	SynErrGroupEndsWithOperator   = newSyntaxError(KindTrailingOperatorOrNegation, "cannot end an expression with operator")
	SynErrGroupEndsWithNegation   = newSyntaxError(KindTrailingOperatorOrNegation, "cannot end an expression with negation")
	SynErrFormulaEndsWithOperator = newSyntaxError(KindTrailingOperatorOrNegation, "cannot end entry with operator")
	SynErrFormulaEndsWithNegation = newSyntaxError(KindTrailingOperatorOrNegation, "cannot end entry with negation")
	SynErrEmptyFormula            = newSyntaxError(KindEmptyFormula, "an entry must contain at least one statement")
)
