package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/playback"
	"github.com/lealre/recitation-backend/internal/services/sessions"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/stretchr/testify/require"
)

// recordingPlayer is the minimal player needed to drive a scheduler run.
// It remembers the token of the latest load so the test can settle it.
type recordingPlayer struct {
	mu        sync.Mutex
	lastToken uint64
}

func (p *recordingPlayer) Load(url string, token uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastToken = token
}

func (p *recordingPlayer) Play() error                 { return nil }
func (p *recordingPlayer) Pause()                      {}
func (p *recordingPlayer) Seek(position time.Duration) {}
func (p *recordingPlayer) Position() time.Duration     { return 0 }
func (p *recordingPlayer) Duration() time.Duration     { return 4 * time.Second }

func (p *recordingPlayer) token() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastToken
}

func TestPlaybackSessionRecording(t *testing.T) {
	t.Run("A scheduler run is mirrored to a recitation session", func(t *testing.T) {
		resetDB(t)

		user, _ := addUser(t, users.NewUserRequest{
			Name:     "Reciter",
			Email:    "reciter@email.com",
			Password: "testpass123",
		})

		db := mongodb.NewDB(testClient)
		recorder := sessions.NewDbRecorder(db, user.Id)
		player := &recordingPlayer{}
		scheduler := playback.NewScheduler(player, playback.CDNResolver{
			PrimaryBase:  "https://audio.example.com/one",
			FallbackBase: "https://audio.example.com/two",
		}, recorder)

		verses := []playback.Verse{
			{SurahId: 1, Number: 1},
			{SurahId: 1, Number: 2},
			{SurahId: 1, Number: 3},
		}
		require.NoError(t, scheduler.Start(verses, playback.Options{PauseDuration: 0}))
		require.NotEmpty(t, recorder.SessionId())

		started, err := db.GetSessionById(context.Background(), recorder.SessionId())
		require.NoError(t, err)
		require.Equal(t, user.Id, started.UserId)
		require.Equal(t, 1, started.SurahId)
		require.Equal(t, 1, started.FromAyah)
		require.Equal(t, 3, started.ToAyah)
		require.Zero(t, started.CompletedAyahs)
		require.False(t, started.IsCompleted)
		require.NotEmpty(t, started.WeekKey)

		for i := range verses {
			scheduler.OnLoaded(player.token())
			require.NoError(t, scheduler.Play())
			scheduler.OnVerseEnded()

			midway, err := db.GetSessionById(context.Background(), recorder.SessionId())
			require.NoError(t, err)
			require.Equal(t, i+1, midway.CompletedAyahs)
		}

		require.Equal(t, playback.StateCompleted, scheduler.State())

		final, err := db.GetSessionById(context.Background(), recorder.SessionId())
		require.NoError(t, err)
		require.Equal(t, 3, final.CompletedAyahs)
		require.True(t, final.IsCompleted)
	})
}
