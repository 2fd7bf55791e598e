package api

import (
	"encoding/json"
	"net/http"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/logx"
	"github.com/lealre/recitation-backend/internal/services/transfers"
)

// CreateTransferRequest opens a request for the juz named in the body; the
// current holder decides its outcome.
func (api *API) CreateTransferRequest(w http.ResponseWriter, r *http.Request) {
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

	var req transfers.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	request, err := transfers.Create(api.Db, r.Context(), communityId, user.Id, req.JuzNumber)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(transfers.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while creating transfer request")
		return
	}

	respondWithJSON(w, http.StatusCreated, request)
}

func (api *API) RespondTransferRequest(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	requestId := r.PathValue("id")
	if requestId == "" {
		respondWithError(w, http.StatusBadRequest, "Request id is required")
		return
	}

	var req transfers.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	request, err := transfers.Respond(api.Db, r.Context(), requestId, user.Id, req.Action)
	if err != nil {
		if statusCode, ok := getErrorStatusCode(transfers.ErrorMap, err); ok {
			respondWithError(w, statusCode, formatErrorMessage(err))
			return
		}
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while responding to transfer request")
		return
	}

	respondWithJSON(w, http.StatusOK, request)
}

func (api *API) GetTransferRequests(w http.ResponseWriter, r *http.Request) {
	logger := logx.FromContext(r.Context())
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	requests, err := transfers.List(api.Db, r.Context(), user.Id)
	if err != nil {
		logger.Printf("ERROR: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Unexpected error while listing transfer requests")
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}
