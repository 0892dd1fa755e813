package scheduler

// ScoreTable holds the team-affinity policy constants. Rank weights halve per
// position and floor at RankFloor, so a top choice matters far more than a
// lower one without the curve depending on list length. The values are policy
// decisions reproduced from production behavior; rebalancing means editing
// this table, not the scoring code.
type ScoreTable struct {
	RankWeights    []int
	RankFloor      int
	SameRankBonus  int
	BothTopBonus   int
	BestMatchBoost int
}

// DefaultScores is the table used by the orchestrator.
var DefaultScores = ScoreTable{
	RankWeights:    []int{1000, 500, 250, 125},
	RankFloor:      50,
	SameRankBonus:  300,
	BothTopBonus:   150,
	BestMatchBoost: 2,
}

func (t ScoreTable) rankWeight(rank int) int {
	if rank < len(t.RankWeights) {
		return t.RankWeights[rank]
	}
	return t.RankFloor
}

// Score computes the affinity between an interviewer's and a candidate's
// ranked team preferences. Position in each list is the priority; there is no
// separate weight field. The final score over-weights the single strongest
// shared team (BestMatchBoost) while still rewarding breadth of overlap.
// Pure and deterministic; a zero return means no affinity signal.
func Score[T comparable](t ScoreTable, interviewerTeams, candidateTeams []T) int {
	if len(interviewerTeams) == 0 || len(candidateTeams) == 0 {
		return 0
	}

	candidateRank := make(map[T]int, len(candidateTeams))
	for i, team := range candidateTeams {
		candidateRank[team] = i
	}

	totalScore := 0
	bestMatchScore := 0
	matched := false
	for ivRank, team := range interviewerTeams {
		cRank, ok := candidateRank[team]
		if !ok {
			continue
		}
		matched = true

		teamScore := t.rankWeight(ivRank) + t.rankWeight(cRank)
		if ivRank == cRank {
			teamScore += t.SameRankBonus
		}
		if ivRank < 2 && cRank < 2 {
			teamScore += t.BothTopBonus
		}

		totalScore += teamScore
		if teamScore > bestMatchScore {
			bestMatchScore = teamScore
		}
	}
	if !matched {
		return 0
	}
	return bestMatchScore*t.BestMatchBoost + totalScore
}
