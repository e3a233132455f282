package questions

import "strings"

// Evaluate compares a submitted answer against the expected answer:
// whitespace-trimmed, case-insensitive, exact string equality. No
// partial credit and no numeric tolerance, so textually different but
// numerically equal answers ("6" vs "6.0") do not match. That is a
// known limitation carried over deliberately; loosening it would change
// recorded correctness history.
func Evaluate(selected, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(selected), strings.TrimSpace(expected))
}
