package interval

import (
	"github.com/nadialowe/chartwell/internal/domain"
)

// Range breakpoints in minutes for the suggestion ladder.
const (
	sixtyDaysMin  = 60 * 24 * 60
	thirtyDaysMin = 30 * 24 * 60
	twoWeeksMin   = 14 * 24 * 60
	oneDayMin     = 24 * 60
	oneHourMin    = 60
)

// ladderRung holds the suggested interval per fidelity tier for one
// range bracket.
type ladderRung struct {
	minMinutes float64
	high       string
	medium     string
	low        string
}

// suggestionLadder is ordered widest bracket first; the first rung whose
// threshold the range meets wins. The zero-threshold rung is the floor.
var suggestionLadder = []ladderRung{
	{minMinutes: sixtyDaysMin, high: "4h", medium: "1d", low: "2d"},
	{minMinutes: thirtyDaysMin, high: "1h", medium: "4h", low: "1d"},
	{minMinutes: twoWeeksMin, high: "30m", medium: "1h", low: "12h"},
	{minMinutes: oneDayMin + 1, high: "30m", medium: "1h", low: "6h"},
	{minMinutes: oneHourMin + 1, high: "5m", medium: "15m", low: "1h"},
	{minMinutes: 0, high: "1m", medium: "5m", low: "10m"},
}

// Suggest recommends a bucket interval for the given selection at the
// requested fidelity tier. Unmeasurable selections fall through to the
// finest bracket.
func Suggest(sel domain.TimeSelection, fidelity domain.Fidelity) string {
	mins, err := SelectionMinutes(sel)
	if err != nil {
		mins = 0
	}
	for _, rung := range suggestionLadder {
		if mins >= rung.minMinutes {
			return rung.interval(fidelity)
		}
	}
	return suggestionLadder[len(suggestionLadder)-1].interval(fidelity)
}

func (r ladderRung) interval(fidelity domain.Fidelity) string {
	switch fidelity {
	case domain.FidelityHigh:
		return r.high
	case domain.FidelityLow:
		return r.low
	default:
		return r.medium
	}
}
