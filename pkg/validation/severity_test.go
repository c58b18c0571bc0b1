package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	for _, tc := range []struct {
		raw   string
		exp   Severity
		known bool
	}{
		{raw: "HIGH", exp: SeverityHigh, known: true},
		{raw: "high", exp: SeverityHigh, known: true},
		{raw: " Medium ", exp: SeverityMedium, known: true},
		{raw: "CRITICAL", exp: SeverityCritical, known: true},
		{raw: "INFO", exp: SeverityInfo, known: true},
		{raw: "TRACE", exp: Severity("TRACE"), known: false},
		{raw: "", exp: Severity(""), known: false},
	} {
		t.Run(tc.raw, func(t *testing.T) {
			s, ok := ParseSeverity(tc.raw)
			require.Equal(t, tc.exp, s)
			require.Equal(t, tc.known, ok)
		})
	}
}

func TestSeverityWeightOrdering(t *testing.T) {
	for i := 1; i < len(Severities); i++ {
		require.Greater(t, Severities[i-1].Weight(), Severities[i].Weight())
	}
	require.Equal(t, 0, Severity("UNKNOWN").Weight())
}
