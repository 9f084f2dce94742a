package instruction

import (
	"strconv"
	"strings"
)

// Instruction types, matching the leading keyword of the sentence.
const (
	TypeDebit  = "DEBIT"
	TypeCredit = "CREDIT"
)

const (
	minWords      = 11 // shortest valid sentence, without a date clause
	wordsWithDate = 13
)

// Parsed is the structured form of a payment instruction. Account IDs keep
// the case they had in the input; the currency is upper-cased.
type Parsed struct {
	Type          string
	Amount        int64
	Currency      string
	DebitAccount  string
	CreditAccount string

	// ExecuteBy is the requested execution date (YYYY-MM-DD), empty for
	// immediate transfers.
	ExecuteBy string
}

// grammar describes one sentence form as positional expectations. The DEBIT
// and CREDIT forms share every rule except which keyword sits where and
// which slot names which account.
type grammar struct {
	typ       string
	keywords  map[int]string
	debitIdx  int
	creditIdx int
}

var grammars = map[string]grammar{
	"debit": {
		// DEBIT <amount> <currency> FROM ACCOUNT <debit> FOR CREDIT TO ACCOUNT <credit> [ON <date>]
		typ:       TypeDebit,
		keywords:  map[int]string{3: "from", 4: "account", 6: "for", 7: "credit", 8: "to", 9: "account"},
		debitIdx:  5,
		creditIdx: 10,
	},
	"credit": {
		// CREDIT <amount> <currency> TO ACCOUNT <credit> FOR DEBIT FROM ACCOUNT <debit> [ON <date>]
		typ:       TypeCredit,
		keywords:  map[int]string{3: "to", 4: "account", 6: "for", 7: "debit", 8: "from", 9: "account"},
		debitIdx:  10,
		creditIdx: 5,
	},
}

// Parse turns an instruction sentence into its structured form, or returns a
// coded *Error describing the first syntactic problem found. It only checks
// well-formedness; business rules (supported currencies, account existence,
// calendar-valid dates) belong to Validate.
func Parse(text string) (*Parsed, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newError(CodeMalformed, "Instruction empty or not a string")
	}

	words := Tokenize(strings.ToLower(trimmed))
	origWords := Tokenize(trimmed)

	if len(words) < minWords {
		return nil, newError(CodeMalformed, "Malformed instruction: too few words")
	}

	g, ok := grammars[words[0]]
	if !ok {
		return nil, newError(CodeMissingKeyword, "Missing required keyword: DEBIT or CREDIT (got %q)", words[0])
	}
	return g.match(words, origWords)
}

// match applies the grammar to an aligned pair of token streams: words for
// keyword and literal matching, origWords for case-preserved extraction.
func (g grammar) match(words, origWords []string) (*Parsed, error) {
	for idx, keyword := range g.keywords {
		if words[idx] != keyword {
			return nil, newError(CodeKeywordOrder, "Invalid keyword order for %s format", g.typ)
		}
	}

	amount, err := strconv.ParseInt(words[1], 10, 64)
	if err != nil || amount <= 0 {
		return nil, newError(CodeInvalidAmount, "Amount must be a positive integer")
	}

	currency := words[2]
	if !isCurrencyShape(currency) {
		return nil, newError(CodeMalformed, "Invalid currency format")
	}

	debitAccount := origWords[g.debitIdx]
	creditAccount := origWords[g.creditIdx]
	if debitAccount == "" || creditAccount == "" {
		return nil, newError(CodeMalformed, "Missing account IDs")
	}

	executeBy := ""
	switch len(words) {
	case minWords:
		// no date clause
	case wordsWithDate:
		if words[11] != "on" {
			return nil, newError(CodeMalformed, "Unexpected extra words")
		}
		if !isDateShape(words[12]) {
			return nil, newError(CodeInvalidDate, "Invalid date format")
		}
		executeBy = words[12]
	default:
		return nil, newError(CodeMalformed, "Unexpected extra words")
	}

	return &Parsed{
		Type:          g.typ,
		Amount:        amount,
		Currency:      strings.ToUpper(currency),
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		ExecuteBy:     executeBy,
	}, nil
}

// isCurrencyShape reports whether token is exactly three alphabetic
// characters. The token comes from the lower-cased stream, so a-z suffices.
func isCurrencyShape(token string) bool {
	if len(token) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if token[i] < 'a' || token[i] > 'z' {
			return false
		}
	}
	return true
}

// isDateShape checks the YYYY-MM-DD character layout only; calendar range
// checks happen at validation time.
func isDateShape(token string) bool {
	if len(token) != 10 || token[4] != '-' || token[7] != '-' {
		return false
	}
	return isDigits(token[:4]) && isDigits(token[5:7]) && isDigits(token[8:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
