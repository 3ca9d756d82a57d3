// Package taxonomy holds the static remark code tables for the three code
// spaces of a verification report (processing remarks, risk management
// remarks, primary processing results) and the category classification built
// on top of them. All tables are read-only after package initialization.
package taxonomy

import "fmt"

// ProcessingMessage resolves a processing remark code to its description.
// Unknown codes get a synthesized placeholder; they are never an error.
func ProcessingMessage(code int) string {
	if msg, ok := ProcessingRemarks[code]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown processing remark (%d)", code)
}

// RiskMessage resolves a risk management remark code to its description.
func RiskMessage(code int) string {
	if msg, ok := RiskRemarks[code]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown risk remark (%d)", code)
}

// PrimaryMessage resolves a primary processing result code. The second
// return reports whether the code is a known table entry.
func PrimaryMessage(code int) (string, bool) {
	msg, ok := PrimaryResults[code]
	return msg, ok
}
