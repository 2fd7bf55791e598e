package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
	"github.com/lealre/recitation-backend/internal/weekcycle"
)

// Create opens a session record when playback starts. The week key is fixed
// at creation time so a session spanning midnight into a new rotation week
// stays in the cohort it started in.
func Create(db *mongodb.DB, ctx context.Context, userId string, req CreateSessionRequest) (Session, error) {
	if !quran.ValidVerse(req.SurahId, req.FromAyah) || !quran.ValidVerse(req.SurahId, req.ToAyah) {
		return Session{}, ErrInvalidVerseRange
	}
	if req.FromAyah > req.ToAyah {
		return Session{}, ErrInvalidVerseRange
	}
	if req.PauseSeconds < 0 || req.PauseSeconds > 30 {
		return Session{}, ErrInvalidPauseSeconds
	}

	sessionDb, err := db.CreateSession(ctx, mongodb.RecitationSessionDb{
		UserId:       userId,
		SurahId:      req.SurahId,
		FromAyah:     req.FromAyah,
		ToAyah:       req.ToAyah,
		PauseSeconds: req.PauseSeconds,
		WeekKey:      weekcycle.WeekKey(time.Now()),
	})
	if err != nil {
		return Session{}, err
	}

	return MapDbSessionToApiSession(sessionDb), nil
}

// UpdateProgress persists a progress snapshot. Snapshots are monotone from
// the scheduler's point of view but the store does not enforce ordering:
// last write wins.
func UpdateProgress(db *mongodb.DB, ctx context.Context, sessionId, userId string, req UpdateSessionRequest) (Session, error) {
	if req.CompletedAyahs < 0 || req.SessionSeconds < 0 {
		return Session{}, ErrInvalidProgress
	}

	sessionDb, err := db.UpdateSessionProgress(ctx, sessionId, userId, req.CompletedAyahs, req.SessionSeconds, req.IsCompleted)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}

	return MapDbSessionToApiSession(sessionDb), nil
}

func ListByUser(db *mongodb.DB, ctx context.Context, userId string) ([]Session, error) {
	sessionsDb, err := db.ListSessionsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	sessions := make([]Session, 0, len(sessionsDb))
	for _, sessionDb := range sessionsDb {
		sessions = append(sessions, MapDbSessionToApiSession(sessionDb))
	}
	return sessions, nil
}

// WeeklySummary groups a user's sessions into rotation-week cohorts.
func WeeklySummary(db *mongodb.DB, ctx context.Context, userId string) ([]WeekSummary, error) {
	sessionsDb, err := db.ListSessionsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[string]*WeekSummary)
	order := []string{}
	for _, sessionDb := range sessionsDb {
		summary, ok := byWeek[sessionDb.WeekKey]
		if !ok {
			summary = &WeekSummary{WeekStart: sessionDb.WeekKey}
			byWeek[sessionDb.WeekKey] = summary
			order = append(order, sessionDb.WeekKey)
		}
		summary.Sessions++
		summary.CompletedAyahs += sessionDb.CompletedAyahs
		summary.ListeningSeconds += sessionDb.SessionSeconds
		if sessionDb.IsCompleted {
			summary.CompletedSessions++
		}
	}

	summaries := make([]WeekSummary, 0, len(order))
	for _, week := range order {
		summaries = append(summaries, *byWeek[week])
	}
	return summaries, nil
}

func MapDbSessionToApiSession(session mongodb.RecitationSessionDb) Session {
	return Session{
		Id:             session.Id,
		UserId:         session.UserId,
		SurahId:        session.SurahId,
		FromAyah:       session.FromAyah,
		ToAyah:         session.ToAyah,
		PauseSeconds:   session.PauseSeconds,
		CompletedAyahs: session.CompletedAyahs,
		SessionSeconds: session.SessionSeconds,
		IsCompleted:    session.IsCompleted,
		WeekKey:        session.WeekKey,
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}
}
