package models

import (
	"encoding/json"
	"errors"
	"io"
)

// DecodeEstimateRequest reads exactly one EstimateRequest. Unknown fields and trailing data are
// rejected so a misspelled field never turns into a zero value.
func DecodeEstimateRequest(r io.Reader) (EstimateRequest, error) {
	var req EstimateRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return EstimateRequest{}, err
	}
	if dec.More() {
		return EstimateRequest{}, errors.New("unexpected trailing data")
	}
	return req, nil
}
