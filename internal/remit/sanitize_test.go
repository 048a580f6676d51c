package remit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeDeletesRuns(t *testing.T) {
	require.Equal(t, "PE000101", Sanitize("PE-000101", ""))
	require.Equal(t, "ABCTraders", Sanitize("A.B.C. Traders!", ""))
	require.Equal(t, "PayOrder7", Sanitize("Pay Order #7", ""))
	require.Equal(t, "", Sanitize("", ""))
	require.Equal(t, "", Sanitize("!!!", ""))
}

func TestSanitizeUnderscore(t *testing.T) {
	require.Equal(t, "PMO_00001", Sanitize("PMO-00001", "_"))
	require.Equal(t, "Pay_Order_7", Sanitize("Pay Order #7", "_"))
	// An existing underscore is already the replacement and passes through.
	require.Equal(t, "a_b__c", Sanitize("a--b__c", "_"))
}

// A run of punctuation becomes a single space; literal spaces are kept, so
// punctuation next to a space yields two spaces.
func TestSanitizeSpaceIsRunBased(t *testing.T) {
	require.Equal(t, "A B C  Traders ", Sanitize("A.B.C. Traders!", " "))
	require.Equal(t, " 42 ", Sanitize("(42)", " "))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{"A.B.C. Traders!", "PMO-00001", "  spaced  out  ", "plain", ""}
	for _, replacement := range []string{"", " ", "_"} {
		for _, in := range inputs {
			once := Sanitize(in, replacement)
			require.Equal(t, once, Sanitize(once, replacement),
				"sanitize(%q, %q) not idempotent", in, replacement)
		}
	}
}
