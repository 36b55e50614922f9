package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion identifies the response envelope schema for clients.
const envelopeVersion = 1

// envelope is the consistent JSON wrapper for all API responses.
type envelope struct {
	V       int  `json:"v"`
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// EnvelopeTransformer wraps every response body in the standard envelope.
// Error responses implement huma.StatusError and are wrapped with
// success=false.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	success := true
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		success = false
	}

	return envelope{
		V:       envelopeVersion,
		Success: success,
		Data:    v,
	}, nil
}
