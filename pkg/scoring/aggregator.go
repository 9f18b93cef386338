package scoring

import (
	"math"
)

// Aggregator combines the component scores of one application into a final
// decision. All thresholds are named configuration, not constants baked
// into the scoring path.
type Aggregator struct {
	eliteThreshold int
	interviewFloor int
}

func NewAggregator(eliteThreshold, interviewFloor int) *Aggregator {
	if eliteThreshold <= 0 {
		eliteThreshold = 60
	}
	return &Aggregator{
		eliteThreshold: eliteThreshold,
		interviewFloor: interviewFloor,
	}
}

// ClampInterview pulls a provider-scored interview result into the
// configured realistic band. Provider noise occasionally produces
// meaningless outliers below the floor.
func (a *Aggregator) ClampInterview(score int) int {
	if score < a.interviewFloor {
		return a.interviewFloor
	}
	if score > 100 {
		return 100
	}
	return score
}

// Composite computes round(mean(present inputs)). ok is false when no
// component score is present at all.
func (a *Aggregator) Composite(resumeMatch, assessment, interview *int) (int, bool) {
	sum := 0
	count := 0
	for _, component := range []*int{resumeMatch, assessment, interview} {
		if component != nil {
			sum += *component
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(count))), true
}

// IsElite reports whether a final score crosses the shortlist threshold.
func (a *Aggregator) IsElite(finalScore int) bool {
	return finalScore >= a.eliteThreshold
}
