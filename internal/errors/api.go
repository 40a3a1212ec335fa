package errors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// FallbackMessage is shown when a failure response carries no usable
// body at all (including transport failures with no response).
const FallbackMessage = "An error occurred"

// MailFailureCode is the additionalInfo code the server sets when its
// mail subsystem failed while handling the request.
const MailFailureCode = "EMESSAGE"

// APIErrorResponse is the error payload shape produced by the remote
// API. AdditionalInfo is open-ended; the known members are a
// field-level validation map under "errors" and a subsystem code under
// "code".
type APIErrorResponse struct {
	Message        string         `json:"message"`
	StatusCode     int            `json:"statusCode"`
	AdditionalInfo map[string]any `json:"additionalInfo"`
}

// ParseAPIError decodes a failure response body. A nil return means
// the body was absent or unparseable and the caller should use
// FallbackMessage.
func ParseAPIError(body []byte) *APIErrorResponse {
	if len(body) == 0 {
		return nil
	}
	var resp APIErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}
	return &resp
}

// FieldErrors extracts the field-level validation map from
// additionalInfo, or nil when none is present.
func (r *APIErrorResponse) FieldErrors() map[string][]string {
	raw, err := jmespath.Search("errors", r.additionalInfo())
	if err != nil || raw == nil {
		return nil
	}
	fields, ok := raw.(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}
	out := make(map[string][]string, len(fields))
	for field, v := range fields {
		msgs, ok := v.([]any)
		if !ok {
			continue
		}
		for _, m := range msgs {
			if s, ok := m.(string); ok {
				out[field] = append(out[field], s)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Code extracts the subsystem error code from additionalInfo, or the
// empty string when none is present.
func (r *APIErrorResponse) Code() string {
	raw, err := jmespath.Search("code", r.additionalInfo())
	if err != nil || raw == nil {
		return ""
	}
	code, _ := raw.(string)
	return code
}

func (r *APIErrorResponse) additionalInfo() any {
	if r == nil || r.AdditionalInfo == nil {
		return map[string]any{}
	}
	return r.AdditionalInfo
}

// FormatMessage renders the user-facing message for a failure
// response. Field-level validation detail takes precedence over the
// top-level message; fields are ordered lexically so the output is
// stable.
func (r *APIErrorResponse) FormatMessage() string {
	if r == nil {
		return FallbackMessage
	}

	if fields := r.FieldErrors(); fields != nil {
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		lines := make([]string, 0, len(names))
		for _, name := range names {
			lines = append(lines, fmt.Sprintf("%s: %s", name, strings.Join(fields[name], ", ")))
		}
		if formatted := strings.Join(lines, "\n"); formatted != "" {
			return formatted
		}
	}

	if r.Message != "" {
		return r.Message
	}
	return FallbackMessage
}
