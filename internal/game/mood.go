package game

// Mood buckets a run's tension for the narration layer.
type Mood int

const (
	MoodLow Mood = iota
	MoodMid
	MoodHigh
)

func (m Mood) String() string {
	switch m {
	case MoodLow:
		return "low"
	case MoodMid:
		return "mid"
	case MoodHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ClassifyMood derives the tension bucket from health pressure and drone
// proximity: a third of max health or a drone next door reads as high, two
// thirds or a drone two cells out as mid, anything calmer as low. Integer
// arithmetic keeps the thresholds exact.
func ClassifyMood(s *State) Mood {
	dist, hasDrones := s.NearestDroneDistance()
	switch {
	case 3*s.health <= s.maxHealth, hasDrones && dist <= 1:
		return MoodHigh
	case 3*s.health <= 2*s.maxHealth, hasDrones && dist <= 2:
		return MoodMid
	default:
		return MoodLow
	}
}
