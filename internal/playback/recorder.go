package playback

// Recorder observes the scheduler's progress so it can be mirrored to
// storage. It carries no business rules: the scheduler reports, the
// recorder persists, last write wins.
type Recorder interface {
	SessionStarted(surahId, fromAyah, toAyah, pauseSeconds int)
	ProgressChanged(completedAyahs, elapsedSeconds int)
	SessionCompleted(completedAyahs, elapsedSeconds int)
}

// NopRecorder is used when nothing should be persisted.
type NopRecorder struct{}

func (NopRecorder) SessionStarted(surahId, fromAyah, toAyah, pauseSeconds int) {}
func (NopRecorder) ProgressChanged(completedAyahs, elapsedSeconds int)         {}
func (NopRecorder) SessionCompleted(completedAyahs, elapsedSeconds int)        {}
