package formula

type category string

const (
	categoryBegin      = category("begin")
	categoryEnd        = category("end")
	categoryLeftParen  = category("left parenthesis")
	categoryRightParen = category("right parenthesis")
	categoryStatement  = category("statement")
	categoryOperator   = category("operator")
	categoryNegation   = category("negation")
)

// follows maps a category to the categories that may come next.
var follows = map[category][]category{
	categoryBegin:      {categoryLeftParen, categoryStatement, categoryNegation},
	categoryLeftParen:  {categoryStatement, categoryNegation, categoryLeftParen},
	categoryRightParen: {categoryOperator, categoryRightParen, categoryEnd},
	categoryStatement:  {categoryRightParen, categoryOperator, categoryEnd},
	categoryOperator:   {categoryLeftParen, categoryStatement, categoryNegation},
	categoryNegation:   {categoryLeftParen, categoryStatement, categoryNegation},
	categoryEnd:        {},
}

type validator struct {
	previous category
	expected []category
}

func newValidator() *validator {
	return &validator{
		previous: categoryBegin,
		expected: follows[categoryBegin],
	}
}

// check accepts current when it may follow the previous category; otherwise it returns
// the syntax error describing the pair.
func (v *validator) check(current category) *SyntaxError {
	for _, c := range v.expected {
		if c == current {
			v.previous = current
			v.expected = follows[current]
			return nil
		}
	}
	return diagnose(v.previous, current)
}

func diagnose(previous, current category) *SyntaxError {
	switch {
	case previous == categoryOperator && current == categoryRightParen:
		return SynErrGroupEndsWithOperator
	case previous == categoryNegation && current == categoryRightParen:
		return SynErrGroupEndsWithNegation
	case previous == categoryLeftParen && current == categoryRightParen:
		return SynErrEmptyGroup
	case previous == categoryLeftParen && current == categoryOperator:
		return SynErrOperatorAtGroupStart
	case (previous == categoryRightParen || previous == categoryStatement) &&
		(current == categoryLeftParen || current == categoryStatement || current == categoryNegation):
		return SynErrMissingOperator
	case previous == categoryOperator && current == categoryOperator:
		return SynErrConsecutiveOperators
	case previous == categoryNegation && current == categoryOperator:
		return SynErrNegatedOperator
	case previous == categoryBegin && current == categoryOperator:
		return SynErrLeadingOperator
	case previous == categoryBegin && current == categoryRightParen:
		return SynErrLeadingRightParen
	case previous == categoryBegin && current == categoryEnd:
		return SynErrEmptyFormula
	case previous == categoryOperator && current == categoryEnd:
		return SynErrFormulaEndsWithOperator
	case previous == categoryNegation && current == categoryEnd:
		return SynErrFormulaEndsWithNegation
	case previous == categoryLeftParen && current == categoryEnd:
		return SynErrUnclosedGroup
	}

	// The table above covers every pair the transition table rejects. Reaching here means
	// either the transition table or the table above is broken.
	panic(&inconsistentGrammarError{previous: previous, current: current})
}

type inconsistentGrammarError struct {
	previous category
	current  category
}

func (e *inconsistentGrammarError) Error() string {
	return "the grammar has no diagnostic for " + string(e.previous) + " followed by " + string(e.current)
}
