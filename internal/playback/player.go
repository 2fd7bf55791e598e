package playback

import "time"

// Player is the media element the scheduler drives. Implementations load
// asynchronously: Load returns immediately and the player reports the
// outcome by calling the scheduler's OnLoaded or OnLoadFailed with the same
// token it was handed. Tokens let the scheduler discard reports from loads
// it has since abandoned.
type Player interface {
	Load(url string, token uint64)
	Play() error
	Pause()
	Seek(position time.Duration)
	Position() time.Duration
	Duration() time.Duration
}

// Verse identifies one ayah in the playback list.
type Verse struct {
	SurahId int
	Number  int
}
