// Package dto holds the JSON shapes of the public API. IDs travel as strings
// and timestamps as ISO-8601.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// FlexibleID accepts an id sent either as a JSON string or a JSON number.
type FlexibleID int64

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("invalid id %s", data)
	}
	*id = FlexibleID(v)
	return nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
