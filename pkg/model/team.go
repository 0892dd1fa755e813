package model

import "fmt"

// Team identifies one of the design challenge teams an applicant can be
// matched into. The set is closed at the API boundary; the scoring code is
// generic over any comparable identifier and does not depend on it.
type Team string

const (
	TeamGNC        Team = "GNC"
	TeamEPS        Team = "EPS"
	TeamFP         Team = "FP"
	TeamStructures Team = "STRUCTURES"
	TeamThermal    Team = "THERMAL"
	TeamSoftware   Team = "SOFTWARE"
)

var validTeams = map[Team]bool{
	TeamGNC:        true,
	TeamEPS:        true,
	TeamFP:         true,
	TeamStructures: true,
	TeamThermal:    true,
	TeamSoftware:   true,
}

// ParseTeam validates a raw identifier against the closed team set.
func ParseTeam(s string) (Team, error) {
	t := Team(s)
	if !validTeams[t] {
		return "", fmt.Errorf("unknown team: %q", s)
	}
	return t, nil
}

func (t Team) Valid() bool {
	return validTeams[t]
}
