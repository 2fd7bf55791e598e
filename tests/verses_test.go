package tests

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
	"github.com/lealre/recitation-backend/internal/services/users"
	"github.com/lealre/recitation-backend/internal/services/verses"
	"github.com/stretchr/testify/require"
)

// seedSurah fills a surah's verses with placeholder text.
func seedSurah(t *testing.T, surahId int) {
	t.Helper()

	total := quran.AyahCount(surahId)
	require.Positive(t, total, "unknown surah %d", surahId)

	ayahs := make([]mongodb.AyahDb, 0, total)
	for number := 1; number <= total; number++ {
		ayahs = append(ayahs, mongodb.AyahDb{
			Id:          quran.VerseKey(surahId, number),
			SurahId:     surahId,
			Number:      number,
			Text:        fmt.Sprintf("text %d:%d", surahId, number),
			Translation: fmt.Sprintf("translation %d:%d", surahId, number),
		})
	}

	db := mongodb.NewDB(testClient)
	_, err := db.UpsertAyahs(context.Background(), ayahs)
	require.NoError(t, err)
}

func TestGetSurahs(t *testing.T) {
	t.Run("Listing all surahs without authentication", func(t *testing.T) {
		resetDB(t)

		resp := doRequest(t, http.MethodGet, "/surahs", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		listed := decodeBody[verses.AllSurahsResponse](t, resp)
		require.Len(t, listed.Surahs, 114)
		require.Equal(t, "Al-Fatihah", listed.Surahs[0].Name)
		require.Equal(t, 6, listed.Surahs[113].TotalAyahs)
	})
}

func TestGetSurahAyahs(t *testing.T) {
	t.Run("Getting a verse range", func(t *testing.T) {
		resetDB(t)
		seedSurah(t, 1)

		_, token := addUser(t, users.NewUserRequest{
			Name:     "Reader",
			Email:    "reader@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/surahs/1/ayahs?from=2&to=5", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		verseRange := decodeBody[verses.VerseRangeResponse](t, resp)
		require.Equal(t, 2, verseRange.FromAyah)
		require.Equal(t, 5, verseRange.ToAyah)
		require.Len(t, verseRange.Ayahs, 4)
		require.Equal(t, "text 1:2", verseRange.Ayahs[0].Text)
	})

	t.Run("Reading verses requires no authentication", func(t *testing.T) {
		resetDB(t)
		seedSurah(t, 1)

		resp := doRequest(t, http.MethodGet, "/surahs/1/ayahs?from=1&to=3", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		verseRange := decodeBody[verses.VerseRangeResponse](t, resp)
		require.Len(t, verseRange.Ayahs, 3)
	})

	t.Run("Defaults cover the whole surah", func(t *testing.T) {
		resetDB(t)
		seedSurah(t, 1)

		_, token := addUser(t, users.NewUserRequest{
			Name:     "Reader",
			Email:    "reader@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/surahs/1/ayahs", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		verseRange := decodeBody[verses.VerseRangeResponse](t, resp)
		require.Equal(t, 1, verseRange.FromAyah)
		require.Equal(t, 7, verseRange.ToAyah)
		require.Len(t, verseRange.Ayahs, 7)
	})

	t.Run("An unpopulated surah returns not found", func(t *testing.T) {
		resetDB(t)

		_, token := addUser(t, users.NewUserRequest{
			Name:     "Reader",
			Email:    "reader@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/surahs/2/ayahs", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("An out-of-range request is rejected", func(t *testing.T) {
		resetDB(t)
		seedSurah(t, 1)

		_, token := addUser(t, users.NewUserRequest{
			Name:     "Reader",
			Email:    "reader@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/surahs/1/ayahs?from=5&to=9", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		resp = doRequest(t, http.MethodGet, "/surahs/999/ayahs", token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestGetJuzRange(t *testing.T) {
	t.Run("Resolving juz boundaries", func(t *testing.T) {
		resetDB(t)

		_, token := addUser(t, users.NewUserRequest{
			Name:     "Reader",
			Email:    "reader@email.com",
			Password: "testpass123",
		})

		resp := doRequest(t, http.MethodGet, "/juz/5", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[map[string]any](t, resp)
		start := body["start"].(map[string]any)
		require.EqualValues(t, 4, start["surahId"])
		require.EqualValues(t, 24, start["ayah"])

		resp = doRequest(t, http.MethodGet, "/juz/31", token, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}
