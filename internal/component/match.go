package component

// MatchPhase — состояние матча. Won и Lost терминальны.
type MatchPhase int

const (
	NotStarted MatchPhase = iota
	InProgress
	Won
	Lost
)

func (p MatchPhase) String() string {
	switch p {
	case NotStarted:
		return "NOT_STARTED"
	case InProgress:
		return "IN_PROGRESS"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	}
	return "UNKNOWN"
}
