package api

import (
	"net/http"

	"github.com/lealre/recitation-backend/internal/generics"
	"github.com/lealre/recitation-backend/internal/logx"
	"github.com/lealre/recitation-backend/internal/quran"
	"github.com/lealre/recitation-backend/internal/services/verses"
)

func (api *API) GetSurahs(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, verses.AllSurahsResponse{Surahs: quran.Surahs()})
}

// GetSurahAyahs returns the verse text for a surah, optionally limited by
// from/to query parameters.
func (api *API) GetSurahAyahs(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	surahId := generics.StringToInt(r.PathValue("id"))
	if surahId == 0 {
		respondWithError(w, http.StatusBadRequest, "Surah id is required")
		return
	}

	fromAyah := generics.StringToInt(r.URL.Query().Get("from"))
	toAyah := generics.StringToInt(r.URL.Query().Get("to"))

	verseRange, err := verses.GetRange(api.Db, r.Context(), surahId, fromAyah, toAyah)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(verses.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while getting verses")
		return
	}

	respondWithJSON(w, http.StatusOK, verseRange)
}

// GetJuzRange resolves a juz number to its start and end verse markers.
func (api *API) GetJuzRange(w http.ResponseWriter, r *http.Request) {
	juzNumber := generics.StringToInt(r.PathValue("number"))

	juzRange, err := quran.JuzRange(juzNumber)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, formatErrorMessage(err))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"juzNumber": juzNumber,
		"start":     map[string]int{"surahId": juzRange.Start.Surah, "ayah": juzRange.Start.Ayah},
		"end":       map[string]int{"surahId": juzRange.End.Surah, "ayah": juzRange.End.Ayah},
	})
}
