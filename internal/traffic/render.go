package traffic

// Map rendering hints derived from the score. The color tiers share the
// 30/60/80 cut lines with the level labels, but the line weight has its own
// single cutover at 60; the two threshold tables are intentionally kept
// separate.

func ColorFor(score int) string {
	switch {
	case score > 80:
		return "#ef4444" // red
	case score > 60:
		return "#f97316" // orange
	case score > 30:
		return "#facc15" // yellow
	default:
		return "#10b981" // green
	}
}

func WeightFor(score int) int {
	if score > 60 {
		return 12
	}
	return 8
}
