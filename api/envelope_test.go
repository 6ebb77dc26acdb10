package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID string `json:"id"`
}

func TestDecodeCollectionShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":"1"}]`},
		{"data key", `{"message":"ok","data":[{"id":"1"}]}`},
		{"resource key", `{"users":[{"id":"1"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := decodeCollection[record](json.RawMessage(tc.body), "users")
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "1", items[0].ID)
		})
	}
}

func TestDecodeCollectionPrefersDataKey(t *testing.T) {
	body := `{"data":[{"id":"d"}],"users":[{"id":"u"}]}`
	items, err := decodeCollection[record](json.RawMessage(body), "users")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "d", items[0].ID)
}

func TestDecodeCollectionFallsThroughNonArrayData(t *testing.T) {
	body := `{"data":{"total":1},"users":[{"id":"u"}]}`
	items, err := decodeCollection[record](json.RawMessage(body), "users")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "u", items[0].ID)
}

func TestDecodeCollectionRejectsUnknownShape(t *testing.T) {
	for _, body := range []string{
		`{"message":"ok"}`,
		`{"data":"nope"}`,
		`"just a string"`,
		`42`,
	} {
		_, err := decodeCollection[record](json.RawMessage(body), "users")
		var perr *ProtocolError
		require.ErrorAs(t, err, &perr, "body %s", body)
		assert.Equal(t, "Invalid response format from server", perr.Message)
	}
}

func TestDecodeCollectionEmptyArray(t *testing.T) {
	items, err := decodeCollection[record](json.RawMessage(`[]`), "users")
	require.NoError(t, err)
	assert.Empty(t, items)
}
