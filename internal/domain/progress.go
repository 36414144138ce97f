package domain

// ProgressStage identifies what a card build run is doing when it emits
// a Progress event.
type ProgressStage int

const (
	// StageGenerating fires before each generation attempt.
	StageGenerating ProgressStage = iota + 1
	// StageRejected fires when an attempt fails quality validation.
	StageRejected
	// StageMerging fires when the attempt budget is spent and the run
	// falls back to merging the attempt history.
	StageMerging
)

// Progress is a notification from an in-flight card build.
type Progress struct {
	Stage       ProgressStage
	Attempt     int
	MaxAttempts int
	Issues      []string
}

// Notify receives build progress events. A nil Notify disables them.
// Callbacks run on the building goroutine and should return quickly.
type Notify func(Progress)
