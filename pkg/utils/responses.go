package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes payload as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ResponseDetail writes a {"detail": "..."} body, the shape every
// client-visible failure (and a few successes) uses.
func ResponseDetail(w http.ResponseWriter, code int, detail string) {
	ResponseJSON(w, code, map[string]string{"detail": detail})
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusCreated, payload)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusBadRequest, detail)
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusUnauthorized, detail)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusNotFound, detail)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, detail string) {
	ResponseDetail(w, http.StatusInternalServerError, detail)
}
