package flow

// GameMode is the top-level screen shown by the graphical client.
type GameMode int

const (
	GameModeLoading GameMode = iota
	GameModePlay
	GameModeConnectionError
)

func (m GameMode) String() string {
	switch m {
	case GameModeLoading:
		return "Loading"
	case GameModePlay:
		return "Play"
	case GameModeConnectionError:
		return "Connection Error"
	}
	return "Unknown"
}
