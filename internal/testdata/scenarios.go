// Package testdata bundles the end-to-end scenarios as txtar
// golden files: one Decaf source plus the list of diagnostic Codes it must
// produce, in order, using golang.org/x/tools/txtar's archive format to
// keep each input+expectation pair a single checked-in text file instead
// of a pair of loose files per case.
package testdata

import (
	"embed"
	"fmt"
	"strings"

	"golang.org/x/tools/txtar"
)

//go:embed scenarios/*.txtar
var scenarioFS embed.FS

// Scenario is one parsed end-to-end fixture.
type Scenario struct {
	Name    string
	Source  string
	Expect  []string // diagnostics.Code.String() values, in order
	Comment string
}

// LoadScenarios reads every bundled .txtar fixture.
func LoadScenarios() ([]Scenario, error) {
	entries, err := scenarioFS.ReadDir("scenarios")
	if err != nil {
		return nil, fmt.Errorf("testdata: reading scenarios: %w", err)
	}

	scenarios := make([]Scenario, 0, len(entries))
	for _, e := range entries {
		data, err := scenarioFS.ReadFile("scenarios/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("testdata: reading %s: %w", e.Name(), err)
		}
		arc := txtar.Parse(data)

		sc := Scenario{
			Name:    strings.TrimSuffix(e.Name(), ".txtar"),
			Comment: strings.TrimSpace(string(arc.Comment)),
		}
		for _, f := range arc.Files {
			switch f.Name {
			case "source.decaf":
				sc.Source = string(f.Data)
			case "expect":
				for _, line := range strings.Split(strings.TrimSpace(string(f.Data)), "\n") {
					line = strings.TrimSpace(line)
					if line != "" {
						sc.Expect = append(sc.Expect, line)
					}
				}
			}
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
