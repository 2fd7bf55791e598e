package playback

import "github.com/lealre/recitation-backend/internal/quran"

// SourceResolver maps a verse to its audio URLs. The primary source is
// tried first; the fallback once, after the primary fails or times out.
type SourceResolver interface {
	PrimaryURL(verse Verse) string
	FallbackURL(verse Verse) string
}

// CDNResolver builds URLs from two reciter base URLs using the canonical
// zero-padded verse file naming.
type CDNResolver struct {
	PrimaryBase  string
	FallbackBase string
}

func (r CDNResolver) PrimaryURL(verse Verse) string {
	return quran.AudioURL(r.PrimaryBase, verse.SurahId, verse.Number)
}

func (r CDNResolver) FallbackURL(verse Verse) string {
	return quran.AudioURL(r.FallbackBase, verse.SurahId, verse.Number)
}
