package instruction

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     *Parsed
		wantCode string
	}{
		{
			name: "debit form without date",
			text: "DEBIT 100 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			want: &Parsed{Type: TypeDebit, Amount: 100, Currency: "USD", DebitAccount: "A1", CreditAccount: "A2"},
		},
		{
			name: "credit form without date",
			text: "CREDIT 20 ngn TO ACCOUNT A2 FOR DEBIT FROM ACCOUNT A1",
			want: &Parsed{Type: TypeCredit, Amount: 20, Currency: "NGN", DebitAccount: "A1", CreditAccount: "A2"},
		},
		{
			name: "debit form with date clause",
			text: "DEBIT 50 gbp FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 2099-01-01",
			want: &Parsed{Type: TypeDebit, Amount: 50, Currency: "GBP", DebitAccount: "A1", CreditAccount: "A2", ExecuteBy: "2099-01-01"},
		},
		{
			name: "keywords are case-insensitive",
			text: "DeBiT 100 UsD fRoM Account A1 FOR credit to ACCOUNT A2",
			want: &Parsed{Type: TypeDebit, Amount: 100, Currency: "USD", DebitAccount: "A1", CreditAccount: "A2"},
		},
		{
			name: "account identifiers keep their case",
			text: "debit 5 usd from account aLiCe-01 for credit to account Bob@bank.io",
			want: &Parsed{Type: TypeDebit, Amount: 5, Currency: "USD", DebitAccount: "aLiCe-01", CreditAccount: "Bob@bank.io"},
		},
		{
			name: "repeated spaces are tolerated",
			text: "DEBIT  100   usd FROM ACCOUNT A1  FOR CREDIT TO ACCOUNT A2",
			want: &Parsed{Type: TypeDebit, Amount: 100, Currency: "USD", DebitAccount: "A1", CreditAccount: "A2"},
		},
		{
			name:     "unknown leading keyword",
			text:     "TRANSFER 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeMissingKeyword,
		},
		{
			name:     "debit keywords out of order",
			text:     "DEBIT 100 usd TO ACCOUNT A1 FOR CREDIT FROM ACCOUNT A2",
			wantCode: CodeKeywordOrder,
		},
		{
			name:     "credit keywords out of order",
			text:     "CREDIT 100 usd FROM ACCOUNT A1 FOR DEBIT TO ACCOUNT A2",
			wantCode: CodeKeywordOrder,
		},
		{
			name:     "too few words",
			text:     "DEBIT 100 usd FROM ACCOUNT A1",
			wantCode: CodeMalformed,
		},
		{
			name:     "empty instruction",
			text:     "",
			wantCode: CodeMalformed,
		},
		{
			name:     "whitespace-only instruction",
			text:     "   ",
			wantCode: CodeMalformed,
		},
		{
			name:     "zero amount",
			text:     "DEBIT 0 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeInvalidAmount,
		},
		{
			name:     "negative amount",
			text:     "DEBIT -5 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeInvalidAmount,
		},
		{
			name:     "non-numeric amount",
			text:     "DEBIT ten usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeInvalidAmount,
		},
		{
			name:     "fractional amount",
			text:     "DEBIT 10.5 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeInvalidAmount,
		},
		{
			name:     "currency too long",
			text:     "DEBIT 10 usdd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeMalformed,
		},
		{
			name:     "currency too short",
			text:     "DEBIT 10 us FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeMalformed,
		},
		{
			name:     "currency with digit",
			text:     "DEBIT 10 us1 FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2",
			wantCode: CodeMalformed,
		},
		{
			name:     "date with wrong separators",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 2025/01/01",
			wantCode: CodeInvalidDate,
		},
		{
			name:     "date without dashes",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 20250101",
			wantCode: CodeInvalidDate,
		},
		{
			name:     "date with short month segment",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 2025-1-01",
			wantCode: CodeInvalidDate,
		},
		{
			name: "calendar-invalid month parses, range check is deferred",
			text: "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 2025-13-01",
			want: &Parsed{Type: TypeDebit, Amount: 10, Currency: "USD", DebitAccount: "A1", CreditAccount: "A2", ExecuteBy: "2025-13-01"},
		},
		{
			name:     "dangling ON without a date",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON",
			wantCode: CodeMalformed,
		},
		{
			name:     "thirteen words without ON keyword",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 BY 2025-01-01",
			wantCode: CodeMalformed,
		},
		{
			name:     "trailing words after the date clause",
			text:     "DEBIT 10 usd FROM ACCOUNT A1 FOR CREDIT TO ACCOUNT A2 ON 2025-01-01 PLEASE",
			wantCode: CodeMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if tt.wantCode != "" {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want code %s", tt.text, tt.wantCode)
				}
				coded, ok := AsError(err)
				if !ok {
					t.Fatalf("Parse(%q) error %v is not a coded error", tt.text, err)
				}
				if coded.Code != tt.wantCode {
					t.Errorf("Parse(%q) code = %s, want %s", tt.text, coded.Code, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.text, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	text := "CREDIT 75 ghs TO ACCOUNT payee.1 FOR DEBIT FROM ACCOUNT payer@x ON 2030-12-31"

	first, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	second, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("parsing twice differs: %+v vs %+v", first, second)
	}
}
