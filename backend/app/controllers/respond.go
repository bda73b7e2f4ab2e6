package controllers

import (
	"encoding/json"
	"net/http"

	"ieltsim/backend/app/dto"
	"ieltsim/backend/global"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

// writeStorageError logs the real failure and hands the client an opaque 500.
func writeStorageError(w http.ResponseWriter, err error) {
	global.Logger.Error().Err(err).Msg("storage error")
	writeError(w, http.StatusInternalServerError, "database error")
}
