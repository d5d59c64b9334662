package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/parser"
	"github.com/funvibe/decaf/internal/testdata"
)

// TestEndToEndScenarios runs every bundled end-to-end scenario through the
// full parse+analyze pipeline and checks the diagnostic Codes produced,
// in order, against each fixture's expectation.
func TestEndToEndScenarios(t *testing.T) {
	scenarios, err := testdata.LoadScenarios()
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.Name, func(t *testing.T) {
			prog, perrs := parser.ParseProgram(sc.Source)
			require.Empty(t, perrs, "scenario source must parse cleanly")

			_, diags := Analyze(prog)

			codes := make([]string, len(diags))
			for i, d := range diags {
				codes[i] = d.Code.String()
			}
			assert.Equal(t, sc.Expect, codes, sc.Comment)
		})
	}
}

func TestEmptyProgramProducesNoDiagnostics(t *testing.T) {
	prog, perrs := parser.ParseProgram("")
	require.Empty(t, perrs)
	_, diags := Analyze(prog)
	assert.Empty(t, diags)
}
