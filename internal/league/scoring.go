package league

const (
	WinPoints       = 10
	SecondPoints    = 5
	ThirdPoints     = 3
	AttendancePoint = 1
)

// PointsForPosition is the league's scoring table. Points are stored with each
// result when it is written and are never recomputed from the position, so a
// later change here leaves past games untouched.
func PointsForPosition(position *int) int {
	if position == nil {
		return AttendancePoint
	}
	switch *position {
	case 1:
		return WinPoints
	case 2:
		return SecondPoints
	case 3:
		return ThirdPoints
	default:
		return AttendancePoint
	}
}

func PositionLabel(position *int) string {
	if position == nil {
		return ""
	}
	switch *position {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	}
	return ""
}
