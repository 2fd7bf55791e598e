package playback

import (
	"sync"
	"time"
)

// State of the playback scheduler.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StatePlaying
	StatePaused
	StateCountdown
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCountdown:
		return "countdown"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

const (
	// SeekStep is the fixed offset applied by Rewind and Forward.
	SeekStep = 10 * time.Second

	defaultPauseDuration = 5 * time.Second
	maxPauseDuration     = 30 * time.Second
	defaultLoadTimeout   = 8 * time.Second
)

// Options configure one playback run.
type Options struct {
	// PauseDuration is the countdown between verses, 0 to 30 seconds.
	// Zero means advance immediately; a negative value selects the
	// 5-second default.
	PauseDuration time.Duration
	// AutoRepeat restarts the whole list after the last verse ends.
	AutoRepeat bool
	// RepeatVerse replays the current verse instead of advancing.
	RepeatVerse bool
	// LoadTimeout bounds each source attempt. Zero selects 8 seconds.
	LoadTimeout time.Duration
}

type timerHandle interface {
	Stop() bool
}

type timerFactory func(d time.Duration, f func()) timerHandle

func stdTimer(d time.Duration, f func()) timerHandle {
	return time.AfterFunc(d, f)
}

// Scheduler drives sequential playback of a verse list. All transitions run
// under one mutex and are triggered either by caller methods or by player
// callbacks; timers funnel back through the same guarded paths. Every load
// and countdown captures the current generation, and any callback arriving
// with a stale generation is discarded, so superseded loads and cleared
// countdowns can never mutate state.
type Scheduler struct {
	mu       sync.Mutex
	player   Player
	sources  SourceResolver
	recorder Recorder
	now      func() time.Time
	newTimer timerFactory

	verses []Verse
	opts   Options

	state         State
	index         int
	generation    uint64
	usingFallback bool
	resumeOnLoad  bool

	loadTimer      timerHandle
	countdownTimer timerHandle
	countdownLeft  time.Duration
	countdownFrom  time.Time
	pausedInCount  bool

	startedAt         time.Time
	completedCount    int
	lastVerseDuration time.Duration
	lastErr           error
}

// NewScheduler wires a scheduler to its player and audio sources. Passing a
// nil recorder disables persistence.
func NewScheduler(player Player, sources SourceResolver, recorder Recorder) *Scheduler {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Scheduler{
		player:   player,
		sources:  sources,
		recorder: recorder,
		now:      time.Now,
		newTimer: stdTimer,
		state:    StateIdle,
	}
}

// Start begins a new run over the verse list, loading the first verse. The
// caller starts playback with Play once the verse is ready.
func (s *Scheduler) Start(verses []Verse, opts Options) error {
	if len(verses) == 0 {
		return ErrNoVerses
	}
	if opts.PauseDuration < 0 {
		opts.PauseDuration = defaultPauseDuration
	}
	if opts.PauseDuration > maxPauseDuration {
		return ErrInvalidPauseLength
	}
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = defaultLoadTimeout
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimersLocked()
	s.verses = verses
	s.opts = opts
	s.index = 0
	s.completedCount = 0
	s.lastVerseDuration = 0
	s.lastErr = nil
	s.resumeOnLoad = false
	s.pausedInCount = false
	s.startedAt = s.now()

	first := verses[0]
	last := verses[len(verses)-1]
	s.recorder.SessionStarted(first.SurahId, first.Number, last.Number, int(opts.PauseDuration/time.Second))

	s.loadLocked(s.index)
	return nil
}

// Stop abandons the current run. In-flight loads and armed countdowns are
// invalidated; their callbacks become no-ops.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.cancelTimersLocked()
	if s.state == StatePlaying {
		s.player.Pause()
	}
	s.state = StateIdle
	s.verses = nil
	s.pausedInCount = false
}

// Play starts or resumes playback. While a load is outstanding it fails
// with ErrLoadingInProgress; before any verse is loaded, ErrNoAudioLoaded.
func (s *Scheduler) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateLoading:
		return ErrLoadingInProgress
	case StateIdle, StateCompleted, StateFailed:
		return ErrNoAudioLoaded
	case StatePlaying, StateCountdown:
		return nil
	}

	if s.pausedInCount {
		s.resumeCountdownLocked()
		return nil
	}

	if err := s.player.Play(); err != nil {
		return err
	}
	s.state = StatePlaying
	return nil
}

// Pause suspends playback, or freezes a running inter-verse countdown.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePlaying:
		s.player.Pause()
		s.state = StatePaused
	case StateCountdown:
		if s.countdownTimer != nil {
			s.countdownTimer.Stop()
			s.countdownTimer = nil
		}
		elapsed := s.now().Sub(s.countdownFrom)
		s.countdownLeft -= elapsed
		if s.countdownLeft < 0 {
			s.countdownLeft = 0
		}
		s.pausedInCount = true
		s.state = StatePaused
	}
}

// OnLoaded is called by the player when a load settles successfully.
func (s *Scheduler) OnLoaded(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.state != StateLoading {
		return
	}
	s.stopLoadTimerLocked()

	if s.resumeOnLoad {
		s.resumeOnLoad = false
		if err := s.player.Play(); err != nil {
			s.failLoadLocked()
			return
		}
		s.state = StatePlaying
		return
	}
	s.state = StateReady
}

// OnLoadFailed is called by the player when a load settles with an error.
func (s *Scheduler) OnLoadFailed(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.state != StateLoading {
		return
	}
	s.failLoadLocked()
}

// OnVerseEnded is called by the player when the current verse finishes.
func (s *Scheduler) OnVerseEnded() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePlaying {
		return
	}

	s.lastVerseDuration = s.player.Duration()
	s.completedCount++
	s.recorder.ProgressChanged(s.completedCount, s.elapsedSecondsLocked())

	if s.opts.RepeatVerse {
		s.player.Seek(0)
		if err := s.player.Play(); err != nil {
			s.failLoadLocked()
		}
		return
	}

	// No countdown when advancing is immediate, or after the last verse
	// of a non-repeating run.
	atEnd := s.index >= len(s.verses)-1
	if s.opts.PauseDuration == 0 || (atEnd && !s.opts.AutoRepeat) {
		s.advanceLocked()
		return
	}

	s.state = StateCountdown
	s.countdownLeft = s.opts.PauseDuration
	s.pausedInCount = false
	s.armCountdownLocked(s.opts.PauseDuration)
}

// Retry reloads the current verse from the primary source after a failure.
func (s *Scheduler) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFailed {
		return nil
	}
	s.lastErr = nil
	s.loadLocked(s.index)
	return nil
}

// Rewind seeks backwards by the fixed step, clamped at the start.
func (s *Scheduler) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seekableLocked() {
		return
	}
	pos := s.player.Position() - SeekStep
	if pos < 0 {
		pos = 0
	}
	s.player.Seek(pos)
}

// Forward seeks ahead by the fixed step, clamped at the verse duration.
func (s *Scheduler) Forward() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seekableLocked() {
		return
	}
	pos := s.player.Position() + SeekStep
	if d := s.player.Duration(); pos > d {
		pos = d
	}
	s.player.Seek(pos)
}

// RepeatCurrent restarts the current verse from the beginning without
// touching the index. Distinct from the collection-level AutoRepeat option.
func (s *Scheduler) RepeatCurrent() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seekableLocked() {
		return ErrNoAudioLoaded
	}
	s.player.Seek(0)
	if s.state != StatePlaying {
		if err := s.player.Play(); err != nil {
			return err
		}
		s.state = StatePlaying
	}
	return nil
}

// SkipToVerse jumps to the verse at index, clamped to the list bounds.
func (s *Scheduler) SkipToVerse(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.verses) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.verses)-1 {
		index = len(s.verses) - 1
	}

	s.resumeOnLoad = s.state == StatePlaying || s.state == StateCountdown
	s.pausedInCount = false
	s.index = index
	s.loadLocked(index)
}

// PreviousVerse moves one verse back, flooring at the first.
func (s *Scheduler) PreviousVerse() {
	s.mu.Lock()
	index := s.index - 1
	s.mu.Unlock()
	s.SkipToVerse(index)
}

// NextVerse moves one verse ahead. Past the last verse it applies the same
// end-of-collection policy as natural completion.
func (s *Scheduler) NextVerse() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.verses) == 0 {
		return
	}
	if s.index >= len(s.verses)-1 {
		s.resumeOnLoad = s.state == StatePlaying || s.state == StateCountdown
		s.finishOrWrapLocked()
		return
	}
	s.resumeOnLoad = s.state == StatePlaying || s.state == StateCountdown
	s.pausedInCount = false
	s.index++
	s.loadLocked(s.index)
}

// ----- Derived values -----

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Scheduler) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Progress is the position within the current verse as a percentage, 0
// when no duration is known.
func (s *Scheduler) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.player.Duration()
	if d <= 0 {
		return 0
	}
	return float64(s.player.Position()) / float64(d) * 100
}

// RemainingCount is the number of verses after the current one.
func (s *Scheduler) RemainingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.verses) == 0 {
		return 0
	}
	return len(s.verses) - s.index - 1
}

// Elapsed is the wall-clock time since Start.
func (s *Scheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.startedAt.IsZero() {
		return 0
	}
	return s.now().Sub(s.startedAt)
}

// CountdownRemaining is the time left in the inter-verse pause, zero when
// no countdown is running.
func (s *Scheduler) CountdownRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state == StateCountdown:
		left := s.countdownLeft - s.now().Sub(s.countdownFrom)
		if left < 0 {
			left = 0
		}
		return left
	case s.pausedInCount:
		return s.countdownLeft
	default:
		return 0
	}
}

// LastVerseDuration is the duration of the most recently completed verse,
// shown alongside the countdown.
func (s *Scheduler) LastVerseDuration() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastVerseDuration
}

// SessionCompleted reports whether the whole list has been played through.
func (s *Scheduler) SessionCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateCompleted
}

// Err returns the terminal load error, if any.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ----- Internals (mu held) -----

func (s *Scheduler) loadLocked(index int) {
	s.generation++
	token := s.generation
	s.cancelTimersLocked()
	s.usingFallback = false
	s.state = StateLoading

	url := s.sources.PrimaryURL(s.verses[index])
	s.player.Load(url, token)
	s.armLoadTimerLocked(token)
}

// failLoadLocked handles a failed or timed-out attempt: one retry against
// the fallback source, then terminal failure.
func (s *Scheduler) failLoadLocked() {
	s.stopLoadTimerLocked()

	if !s.usingFallback {
		s.usingFallback = true
		s.generation++
		token := s.generation
		s.state = StateLoading
		url := s.sources.FallbackURL(s.verses[s.index])
		s.player.Load(url, token)
		s.armLoadTimerLocked(token)
		return
	}

	s.state = StateFailed
	s.lastErr = ErrAudioUnavailable
}

func (s *Scheduler) armLoadTimerLocked(token uint64) {
	s.loadTimer = s.newTimer(s.opts.LoadTimeout, func() {
		s.OnLoadFailed(token)
	})
}

func (s *Scheduler) armCountdownLocked(d time.Duration) {
	token := s.generation
	s.countdownFrom = s.now()
	s.countdownTimer = s.newTimer(d, func() {
		s.onCountdownElapsed(token)
	})
}

func (s *Scheduler) onCountdownElapsed(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.state != StateCountdown {
		return
	}
	s.countdownTimer = nil
	s.advanceLocked()
}

func (s *Scheduler) resumeCountdownLocked() {
	s.pausedInCount = false
	s.state = StateCountdown
	if s.countdownLeft <= 0 {
		s.advanceLocked()
		return
	}
	s.armCountdownLocked(s.countdownLeft)
}

func (s *Scheduler) advanceLocked() {
	s.resumeOnLoad = true
	if s.index+1 < len(s.verses) {
		s.index++
		s.loadLocked(s.index)
		return
	}
	s.finishOrWrapLocked()
}

func (s *Scheduler) finishOrWrapLocked() {
	if s.opts.AutoRepeat {
		s.index = 0
		s.pausedInCount = false
		s.loadLocked(0)
		return
	}

	s.generation++
	s.cancelTimersLocked()
	s.resumeOnLoad = false
	s.state = StateCompleted
	s.recorder.SessionCompleted(s.completedCount, s.elapsedSecondsLocked())
}

func (s *Scheduler) cancelTimersLocked() {
	s.stopLoadTimerLocked()
	if s.countdownTimer != nil {
		s.countdownTimer.Stop()
		s.countdownTimer = nil
	}
}

func (s *Scheduler) stopLoadTimerLocked() {
	if s.loadTimer != nil {
		s.loadTimer.Stop()
		s.loadTimer = nil
	}
}

func (s *Scheduler) seekableLocked() bool {
	return s.state == StatePlaying || s.state == StatePaused || s.state == StateReady
}

func (s *Scheduler) elapsedSecondsLocked() int {
	return int(s.now().Sub(s.startedAt) / time.Second)
}
