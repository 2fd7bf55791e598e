package sessions

import (
	"errors"
	"net/http"
	"time"
)

type Session struct {
	Id             string    `json:"id"`
	UserId         string    `json:"userId"`
	SurahId        int       `json:"surahId"`
	FromAyah       int       `json:"fromAyah"`
	ToAyah         int       `json:"toAyah"`
	PauseSeconds   int       `json:"pauseSeconds"`
	CompletedAyahs int       `json:"completedAyahs"`
	SessionSeconds int       `json:"sessionSeconds"`
	IsCompleted    bool      `json:"isCompleted"`
	WeekKey        string    `json:"weekKey"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateSessionRequest struct {
	SurahId      int `json:"surahId"`
	FromAyah     int `json:"fromAyah"`
	ToAyah       int `json:"toAyah"`
	PauseSeconds int `json:"pauseSeconds"`
}

type UpdateSessionRequest struct {
	CompletedAyahs int  `json:"completedAyahs"`
	SessionSeconds int  `json:"sessionSeconds"`
	IsCompleted    bool `json:"isCompleted"`
}

type AllSessionsResponse struct {
	Sessions []Session `json:"sessions"`
}

type WeekSummary struct {
	WeekStart         string `json:"weekStart"`
	Sessions          int    `json:"sessions"`
	CompletedSessions int    `json:"completedSessions"`
	CompletedAyahs    int    `json:"completedAyahs"`
	ListeningSeconds  int    `json:"listeningSeconds"`
}

type WeeklySummaryResponse struct {
	Weeks []WeekSummary `json:"weeks"`
}

var (
	ErrSessionNotFound     = errors.New("recitation session not found")
	ErrInvalidVerseRange   = errors.New("verse range does not exist in this surah")
	ErrInvalidPauseSeconds = errors.New("pause duration must be between 0 and 30 seconds")
	ErrInvalidProgress     = errors.New("progress values cannot be negative")
)

var ErrorMap = map[error]int{
	ErrSessionNotFound:     http.StatusNotFound,
	ErrInvalidVerseRange:   http.StatusBadRequest,
	ErrInvalidPauseSeconds: http.StatusBadRequest,
	ErrInvalidProgress:     http.StatusBadRequest,
}
