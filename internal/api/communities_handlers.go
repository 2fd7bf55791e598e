package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/logx"
	"github.com/lealre/recitation-backend/internal/services/communities"
)

func (api *API) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	var req communities.CreateCommunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	community, assignment, err := communities.CreateCommunity(api.Db, r.Context(), user.Id, req)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to create community")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]any{
		"community":  community,
		"assignment": assignment,
	})
}

func (api *API) GetCommunities(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())

	allCommunities, err := communities.ListCommunities(api.Db, r.Context())
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while listing communities")
		return
	}

	respondWithJSON(w, http.StatusOK, communities.AllCommunitiesResponse{Communities: allCommunities})
}

func (api *API) GetCommunityDetails(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	details, err := communities.Details(api.Db, r.Context(), communityId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while getting community")
		return
	}

	respondWithJSON(w, http.StatusOK, details)
}

// JoinCommunity assigns the caller the lowest-numbered free juz.
func (api *API) JoinCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	assignment, err := communities.Join(api.Db, r.Context(), communityId, user.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while joining community")
		return
	}

	respondWithJSON(w, http.StatusCreated, assignment)
}

func (api *API) LeaveCommunity(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	if err := communities.Leave(api.Db, r.Context(), communityId, user.Id); err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while leaving community")
		return
	}

	respondWithJSON(w, http.StatusOK, DefaultResponse{Message: "Left community"})
}

// ClaimJuz assigns a specific juz to a caller who does not hold one yet.
func (api *API) ClaimJuz(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	var req communities.ClaimJuzRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	assignment, err := communities.Claim(api.Db, r.Context(), communityId, user.Id, req.JuzNumber)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while claiming juz")
		return
	}

	respondWithJSON(w, http.StatusCreated, assignment)
}

// ReassignJuz switches the caller's assignment to another juz, allowed only
// while their modification window is open.
func (api *API) ReassignJuz(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	var req communities.ClaimJuzRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	assignment, err := communities.Reassign(api.Db, r.Context(), communityId, user.Id, req.JuzNumber)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while reassigning juz")
		return
	}

	respondWithJSON(w, http.StatusOK, assignment)
}

func (api *API) CanModifyAssignment(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	canModify, err := communities.CanModify(api.Db, r.Context(), communityId, user.Id)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while checking assignment")
		return
	}

	respondWithJSON(w, http.StatusOK, communities.CanModifyResponse{CanModify: canModify})
}

func (api *API) GetAvailableJuz(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	communityId := r.PathValue("id")
	if communityId == "" {
		respondWithError(w, http.StatusBadRequest, "Community id is required")
		return
	}

	available, err := communities.AvailableJuz(api.Db, r.Context(), communityId)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while listing available juz")
		return
	}

	respondWithJSON(w, http.StatusOK, communities.AvailableJuzResponse{AvailableJuz: available})
}

func (api *API) UpdateJuzProgress(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	assignmentId := r.PathValue("id")
	if assignmentId == "" {
		respondWithError(w, http.StatusBadRequest, "Assignment id is required")
		return
	}

	var req communities.UpdateProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	assignment, err := communities.UpdateProgress(api.Db, r.Context(), assignmentId, user.Id, req.CompletionPercentage)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(communities.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while updating progress")
		return
	}

	respondWithJSON(w, http.StatusOK, assignment)
}
