package quran

import (
	"fmt"
	"strings"
)

// VerseKey is the zero-padded "SSSAAA" identifier of a verse, used as the
// stable primary key for stored verse text.
func VerseKey(surah, ayah int) string {
	return fmt.Sprintf("%03d%03d", surah, ayah)
}

// VerseFileName builds the canonical audio file name for a verse. Every
// reciter host serves files under this exact zero-padded convention, so it
// is the join key between verse identity and audio identity.
func VerseFileName(surah, ayah int) string {
	return fmt.Sprintf("%03d%03d.mp3", surah, ayah)
}

// AudioURL joins a reciter base URL with the verse file name.
func AudioURL(baseURL string, surah, ayah int) string {
	return strings.TrimRight(baseURL, "/") + "/" + VerseFileName(surah, ayah)
}
