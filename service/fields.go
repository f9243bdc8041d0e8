package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"refinance-agent/domain"
)

// aliases lists the accepted spellings of one attribute, in precedence order.
type aliases []string

// productFields is the single ingestion table for bank product records.
var productFields = struct {
	id, kind, name, rate, minAmount, maxAmount, term aliases
}{
	id:        aliases{"productId", "product_id"},
	kind:      aliases{"productType", "product_type"},
	name:      aliases{"productName", "product_name", "name"},
	rate:      aliases{"interestRate", "interest_rate"},
	minAmount: aliases{"minAmount", "min_amount"},
	maxAmount: aliases{"maxAmount", "max_amount"},
	term:      aliases{"termMonths", "term_months"},
}

// loanFields is the ingestion table for loan agreements. Upstream agreements
// use snake_case, so it takes precedence here.
var loanFields = struct {
	id, amount, term, rate, source, originBank, kind aliases
}{
	id:         aliases{"agreement_id", "agreementId"},
	amount:     aliases{"amount"},
	term:       aliases{"term_months", "termMonths"},
	rate:       aliases{"interest_rate", "interestRate"},
	source:     aliases{"source"},
	originBank: aliases{"origin_bank", "originBank"},
	kind:       aliases{"product_type", "productType"},
}

// text returns the first alias holding a non-empty scalar.
func (a aliases) text(rec domain.Record) string {
	for _, key := range a {
		if s, ok := parseText(rec[key]); ok {
			return s
		}
	}
	return ""
}

// number parses the first alias that is present with a non-null value. A
// present but unparseable value is not skipped over: it makes the field unknown.
func (a aliases) number(rec domain.Record) (float64, bool) {
	for _, key := range a {
		if v, ok := rec[key]; ok && v != nil {
			return parseNumber(v)
		}
	}
	return 0, false
}

func (a aliases) optionalNumber(rec domain.Record) *float64 {
	if v, ok := a.number(rec); ok {
		return &v
	}
	return nil
}

// parseNumber accepts JSON/YAML numbers and numeric strings. Absent, empty,
// boolean and non-finite values report ok=false.
func parseNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseText(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, s != ""
	case json.Number:
		return s.String(), s != "" && s != "0"
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), s != 0
	case int:
		return strconv.Itoa(s), s != 0
	case int64:
		return strconv.FormatInt(s, 10), s != 0
	}
	return "", false
}
