package api

import (
	"net/http"

	"github.com/lealre/recitation-backend/internal/auth"
	"github.com/lealre/recitation-backend/internal/services/users"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, DefaultResponse{
		Message: "Recitation backend",
	})
}

func (api *API) GetMe(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromContext(r.Context())
	if user == nil {
		RespondWithUnauthorized(w, auth.ErrNotAuthenticated)
		return
	}

	respondWithJSON(w, http.StatusOK, users.MapDbUserToApiUser(*user))
}
