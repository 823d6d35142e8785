package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var errBadID = errors.New("invalid id")

// parseID reads the {id} path variable. Malformed identifiers get a 404, the
// same as identifiers that match nothing.
func parseID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return int32(id), nil
}

func writeBadID(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, codeNotFound, "Invalid ID.")
}

// decodeJSON parses the request body into dst. A false return means the
// response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "Invalid request body.")
		return false
	}
	return true
}
