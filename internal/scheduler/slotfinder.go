package scheduler

import "github.com/tamu-thinktank/website-sub000/pkg/model"

// FindConsecutiveAvailable scans an interviewer's availability row for the
// earliest run of 3 consecutive free slots whose instants the candidate also
// declared free, and returns its starting index, or -1. A single linear scan;
// the earliest qualifying block always wins, there is no attempt to optimize
// placement globally.
func FindConsecutiveAvailable(availability []bool, allSlots []model.TimeSlot, candidateSlots []model.TimeSlot) int {
	if len(availability) < model.InterviewSlots {
		return -1
	}

	candidateFree := make(map[int64]bool, len(candidateSlots))
	for _, s := range candidateSlots {
		candidateFree[s.Timestamp] = true
	}

	for i := 0; i <= len(availability)-model.InterviewSlots; i++ {
		ok := true
		for j := 0; j < model.InterviewSlots; j++ {
			if !availability[i+j] || !candidateFree[allSlots[i+j].Timestamp] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}
