package sessions

import (
	"context"
	"log"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/playback"
)

var _ playback.Recorder = (*DbRecorder)(nil)

// DbRecorder persists playback lifecycle events as a recitation session.
// It satisfies the playback package's Recorder interface. Persistence is
// best effort: playback must not stall on a slow or failing write, so
// errors are logged and dropped.
type DbRecorder struct {
	db     *mongodb.DB
	userId string

	sessionId string
}

func NewDbRecorder(db *mongodb.DB, userId string) *DbRecorder {
	return &DbRecorder{db: db, userId: userId}
}

// SessionId is empty until SessionStarted has persisted the record.
func (r *DbRecorder) SessionId() string {
	return r.sessionId
}

func (r *DbRecorder) SessionStarted(surahId, fromAyah, toAyah, pauseSeconds int) {
	session, err := Create(r.db, context.Background(), r.userId, CreateSessionRequest{
		SurahId:      surahId,
		FromAyah:     fromAyah,
		ToAyah:       toAyah,
		PauseSeconds: pauseSeconds,
	})
	if err != nil {
		log.Printf("recording session start for user %s: %s", r.userId, err)
		return
	}
	r.sessionId = session.Id
}

func (r *DbRecorder) ProgressChanged(completedAyahs, elapsedSeconds int) {
	r.update(completedAyahs, elapsedSeconds, false)
}

func (r *DbRecorder) SessionCompleted(completedAyahs, elapsedSeconds int) {
	r.update(completedAyahs, elapsedSeconds, true)
}

func (r *DbRecorder) update(completedAyahs, elapsedSeconds int, completed bool) {
	if r.sessionId == "" {
		return
	}
	_, err := UpdateProgress(r.db, context.Background(), r.sessionId, r.userId, UpdateSessionRequest{
		CompletedAyahs: completedAyahs,
		SessionSeconds: elapsedSeconds,
		IsCompleted:    completed,
	})
	if err != nil {
		log.Printf("recording session progress %s: %s", r.sessionId, err)
	}
}
