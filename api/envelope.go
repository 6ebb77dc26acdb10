package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// FetchCollection issues an authenticated GET and extracts the record
// sequence from any of the envelope conventions the server uses: a bare
// array, the collection under a data key, or the collection wrapped under
// its own resource name.
func FetchCollection[T any](ctx context.Context, c *Client, url, token, name string) ([]T, error) {
	raw, err := c.do(ctx, http.MethodGet, url, token, nil)
	if err != nil {
		return nil, err
	}
	return decodeCollection[T](raw, name)
}

func decodeCollection[T any](raw json.RawMessage, name string) ([]T, error) {
	body := bytes.TrimSpace(raw)
	if items, ok := decodeArray[T](body); ok {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ProtocolError{Message: "Invalid response format from server"}
	}
	for _, key := range []string{"data", name} {
		if payload, ok := envelope[key]; ok {
			if items, ok := decodeArray[T](bytes.TrimSpace(payload)); ok {
				return items, nil
			}
		}
	}
	return nil, &ProtocolError{Message: "Invalid response format from server"}
}

func decodeArray[T any](body []byte) ([]T, bool) {
	if len(body) == 0 || body[0] != '[' {
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, false
	}
	return items, true
}
