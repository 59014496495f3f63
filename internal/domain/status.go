package domain

// FetchStatus drives banner tone and text on every upsell surface.
// Transitions: Idle -> Loading -> {Success, Empty, Error}, and any terminal
// state back to Loading on a retriggered fetch.
type FetchStatus string

const (
	StatusIdle    FetchStatus = "idle"
	StatusLoading FetchStatus = "loading"
	StatusSuccess FetchStatus = "success"
	StatusEmpty   FetchStatus = "empty"
	StatusError   FetchStatus = "error"
)

// Terminal reports whether the status is a settled fetch outcome.
func (s FetchStatus) Terminal() bool {
	switch s {
	case StatusSuccess, StatusEmpty, StatusError:
		return true
	}
	return false
}
