package api

import (
	"encoding/json"
	"net/http"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/logx"
	"github.com/lealre/recitation-backend/internal/services/sessions"
)

func (api *API) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	var req sessions.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	session, err := sessions.Create(api.Db, r.Context(), user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(sessions.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating session")
		return
	}

	respondWithJSON(w, http.StatusCreated, session)
}

func (api *API) UpdateSession(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	sessionId := r.PathValue("id")
	if sessionId == "" {
		respondWithError(w, http.StatusBadRequest, "Session id is required")
		return
	}

	var req sessions.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	session, err := sessions.UpdateProgress(api.Db, r.Context(), sessionId, user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(sessions.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while updating session")
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

func (api *API) GetSessions(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	allSessions, err := sessions.ListByUser(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while listing sessions")
		return
	}

	respondWithJSON(w, http.StatusOK, sessions.AllSessionsResponse{Sessions: allSessions})
}

func (api *API) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	weeks, err := sessions.WeeklySummary(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while building weekly summary")
		return
	}

	respondWithJSON(w, http.StatusOK, sessions.WeeklySummaryResponse{Weeks: weeks})
}
