package world

import "gonum.org/v1/gonum/stat"

// stepHistorySize bounds the ring buffer used for the rolling step-duration
// mean/variance diagnostic.
const stepHistorySize = 120

// Stats is diagnostic-only: nothing here feeds back into the simulation, so
// none of it can affect the determinism of a step.
type Stats struct {
	Steps            int
	BodiesUpdated    int
	BodiesCulled     int
	BroadPairs       int
	NarrowChecks     int
	ContactsResolved int

	stepDurations   [stepHistorySize]float64
	stepDurationLen int
	stepDurationPos int
}

func (s *Stats) resetTick() {
	s.BodiesUpdated = 0
	s.BodiesCulled = 0
	s.BroadPairs = 0
	s.NarrowChecks = 0
	s.ContactsResolved = 0
}

// RecordStepDuration pushes a step's wall-clock duration (in seconds) into
// the rolling history used by StepDurationStats. The host calls this around
// Step; the core itself never measures its own timing.
func (s *Stats) RecordStepDuration(seconds float64) {
	s.stepDurations[s.stepDurationPos] = seconds
	s.stepDurationPos = (s.stepDurationPos + 1) % stepHistorySize
	if s.stepDurationLen < stepHistorySize {
		s.stepDurationLen++
	}
}

// StepDurationStats returns the mean and variance of the recorded step
// durations over the most recent window (up to stepHistorySize samples).
func (s *Stats) StepDurationStats() (mean, variance float64) {
	if s.stepDurationLen == 0 {
		return 0, 0
	}
	return stat.MeanVariance(s.stepDurations[:s.stepDurationLen], nil)
}
