// Package httputil holds the JSON response helpers shared by all API
// handlers. Responses are encoded with sonic to keep the hot leaderboard
// and progress endpoints cheap.
package httputil

import (
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// WriteErrorResponse renders the error envelope. A nil details error keeps
// the details field out of the payload entirely. Joined errors (the service
// layer joins validation failures) are split into one detail line each.
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}
	if details != nil {
		resp.Details = splitJoined(details)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	sonic.ConfigDefault.NewEncoder(w).Encode(body)
}

// splitJoined breaks an errors.Join result into its lines; plain errors
// come back as a single entry.
func splitJoined(err error) []string {
	lines := strings.Split(err.Error(), "\n")
	details := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			details = append(details, l)
		}
	}
	return details
}
