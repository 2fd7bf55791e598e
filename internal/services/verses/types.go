package verses

import (
	"errors"
	"net/http"

	"github.com/lealre/recitation-backend/internal/quran"
)

type Ayah struct {
	SurahId     int    `json:"surahId"`
	Number      int    `json:"number"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

type VerseRangeResponse struct {
	Surah    quran.Surah `json:"surah"`
	FromAyah int         `json:"fromAyah"`
	ToAyah   int         `json:"toAyah"`
	Ayahs    []Ayah      `json:"ayahs"`
}

type AllSurahsResponse struct {
	Surahs []quran.Surah `json:"surahs"`
}

var (
	ErrSurahNotFound     = errors.New("surah not found")
	ErrInvalidAyahRange  = errors.New("ayah range is outside the surah")
	ErrSurahNotPopulated = errors.New("surah text has not been populated")
)

var ErrorMap = map[error]int{
	ErrSurahNotFound:     http.StatusNotFound,
	ErrInvalidAyahRange:  http.StatusBadRequest,
	ErrSurahNotPopulated: http.StatusNotFound,
}
