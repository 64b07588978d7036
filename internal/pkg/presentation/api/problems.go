package api

import (
	"encoding/json"
	"net/http"
)

// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
const ProblemReportContentType string = "application/problem+json"

// problemDetails stores details about a certain problem according to RFC7807
type problemDetails struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	TraceID string `json:"traceID,omitempty"`

	code int
}

func (p *problemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", ProblemReportContentType)
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.code)

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}

func newNotFound(detail, traceID string) *problemDetails {
	return &problemDetails{
		Type:    "https://github.com/Densaugeo/paragen/errors/SceneNotFound",
		Title:   "Not Found",
		Detail:  detail,
		TraceID: traceID,
		code:    http.StatusNotFound,
	}
}

func newUnauthorized(detail, traceID string) *problemDetails {
	return &problemDetails{
		Type:    "https://github.com/Densaugeo/paragen/errors/UnauthorizedRequest",
		Title:   "Unauthorized Request",
		Detail:  detail,
		TraceID: traceID,
		code:    http.StatusUnauthorized,
	}
}

func newExportBusy(detail, traceID string) *problemDetails {
	return &problemDetails{
		Type:    "https://github.com/Densaugeo/paragen/errors/ExportChannelBusy",
		Title:   "Export Channel Busy",
		Detail:  detail,
		TraceID: traceID,
		code:    http.StatusServiceUnavailable,
	}
}

func newInternalError(detail, traceID string) *problemDetails {
	return &problemDetails{
		Type:    "https://github.com/Densaugeo/paragen/errors/InternalError",
		Title:   "Internal Error",
		Detail:  detail,
		TraceID: traceID,
		code:    http.StatusInternalServerError,
	}
}
