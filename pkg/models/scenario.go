// Package models contains business domain types shared across packages.
package models

import "fmt"

// Scenario identifies which conversation flow produced an analysis.
type Scenario string

const (
	ScenarioAdultBlackmail Scenario = "adult_blackmail"
	ScenarioTeenagerSOS    Scenario = "teenager_sos"
	ScenarioGeneral        Scenario = "general"
)

// ParseScenario maps a stored scenario string to a Scenario.
// The empty string is accepted as general: uploads sent before a
// scenario was chosen are analyzed on the general path.
func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "":
		return ScenarioGeneral, nil
	case string(ScenarioAdultBlackmail):
		return ScenarioAdultBlackmail, nil
	case string(ScenarioTeenagerSOS):
		return ScenarioTeenagerSOS, nil
	case string(ScenarioGeneral):
		return ScenarioGeneral, nil
	default:
		return "", fmt.Errorf("unknown scenario %q", s)
	}
}

// String implements fmt.Stringer.
func (s Scenario) String() string {
	return string(s)
}
