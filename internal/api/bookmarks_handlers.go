package api

import (
	"encoding/json"
	"net/http"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/logx"
	"github.com/lealre/recitation-backend/internal/services/bookmarks"
)

func (api *API) CreateBookmark(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	var req bookmarks.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	bookmark, err := bookmarks.Create(api.Db, r.Context(), user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(bookmarks.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating bookmark")
		return
	}

	respondWithJSON(w, http.StatusCreated, bookmark)
}

func (api *API) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	allBookmarks, err := bookmarks.ListByUser(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while listing bookmarks")
		return
	}

	respondWithJSON(w, http.StatusOK, bookmarks.AllBookmarksResponse{Bookmarks: allBookmarks})
}

func (api *API) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	bookmarkId := r.PathValue("id")
	if bookmarkId == "" {
		respondWithError(w, http.StatusBadRequest, "Bookmark id is required")
		return
	}

	if err := bookmarks.Delete(api.Db, r.Context(), bookmarkId, user.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(bookmarks.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while deleting bookmark")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Bookmark deleted"})
}
