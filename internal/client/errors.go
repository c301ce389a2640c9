package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FallbackAlert is shown when a failure carries no detail.
const FallbackAlert = "Something went wrong"

// RequestError is the single failure kind of the client. Status is zero when
// no response was received.
type RequestError struct {
	Method string
	Path   string
	Status int
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Detail)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %d %s: %v", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Err)
	default:
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// AlertText turns an action result into the text shown to the operator.
func AlertText(reply *Reply, err error) string {
	if err == nil {
		if reply == nil {
			return ""
		}
		return reply.Message
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return FallbackAlert
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationItem struct {
	Msg string `json:"msg"`
}

func newStatusError(method, path string, status int, raw []byte) *RequestError {
	return &RequestError{Method: method, Path: path, Status: status, Detail: parseDetail(raw)}
}

// parseDetail reads FastAPI's "detail", which is a string for HTTPException
// and a list of {loc, msg, type} for request validation failures.
func parseDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}
	var items []validationItem
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if msg := strings.TrimSpace(item.Msg); msg != "" {
				msgs = append(msgs, msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
