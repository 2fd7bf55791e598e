package verses

import (
	"context"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
)

// GetRange returns the verses of a surah between fromAyah and toAyah
// inclusive. A zero fromAyah defaults to 1 and a zero toAyah to the surah's
// last ayah, so an empty query returns the whole surah.
func GetRange(db *mongodb.DB, ctx context.Context, surahId, fromAyah, toAyah int) (VerseRangeResponse, error) {
	surah, ok := quran.SurahByNumber(surahId)
	if !ok {
		return VerseRangeResponse{}, ErrSurahNotFound
	}

	if fromAyah == 0 {
		fromAyah = 1
	}
	if toAyah == 0 {
		toAyah = surah.TotalAyahs
	}
	if fromAyah < 1 || toAyah > surah.TotalAyahs || fromAyah > toAyah {
		return VerseRangeResponse{}, ErrInvalidAyahRange
	}

	ayahsDb, err := db.GetAyahs(ctx, surahId, fromAyah, toAyah)
	if err != nil {
		return VerseRangeResponse{}, err
	}
	if len(ayahsDb) == 0 {
		return VerseRangeResponse{}, ErrSurahNotPopulated
	}

	ayahs := make([]Ayah, 0, len(ayahsDb))
	for _, ayahDb := range ayahsDb {
		ayahs = append(ayahs, MapDbAyahToApiAyah(ayahDb))
	}

	return VerseRangeResponse{
		Surah:    surah,
		FromAyah: fromAyah,
		ToAyah:   toAyah,
		Ayahs:    ayahs,
	}, nil
}

func MapDbAyahToApiAyah(ayah mongodb.AyahDb) Ayah {
	return Ayah{
		SurahId:     ayah.SurahId,
		Number:      ayah.Number,
		Text:        ayah.Text,
		Translation: ayah.Translation,
	}
}
