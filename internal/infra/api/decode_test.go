package api

import (
	"encoding/json"
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type named struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDecodeList_Shapes(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantIDs        []string
		wantPagination *entity.Pagination
	}{
		{name: "bare array", raw: `[{"id":"a"},{"id":"b"}]`, wantIDs: []string{"a", "b"}},
		{name: "data array", raw: `{"success":true,"data":[{"id":"a"}]}`, wantIDs: []string{"a"}},
		{
			name:           "data items with pagination",
			raw:            `{"data":{"items":[{"id":"a"}],"pagination":{"page":1,"limit":20,"total":41,"totalPages":3}}}`,
			wantIDs:        []string{"a"},
			wantPagination: &entity.Pagination{Page: 1, Limit: 20, Total: 41, TotalPages: 3},
		},
		{
			name:           "data users with top-level pagination",
			raw:            `{"data":{"users":[{"id":"u1"},{"id":"u2"}]},"pagination":{"page":2,"limit":2,"total":4,"totalPages":2}}`,
			wantIDs:        []string{"u1", "u2"},
			wantPagination: &entity.Pagination{Page: 2, Limit: 2, Total: 4, TotalPages: 2},
		},
		{name: "data vendors", raw: `{"data":{"vendors":[{"id":"v1"}]}}`, wantIDs: []string{"v1"}},
		{name: "top-level items", raw: `{"items":[{"id":"x"}]}`, wantIDs: []string{"x"}},
		{name: "single unknown array field", raw: `{"data":{"entries":[{"id":"e"}]}}`, wantIDs: []string{"e"}},
		{
			name:           "flat pagination fields",
			raw:            `{"data":[{"id":"a"}],"page":1,"limit":10,"total":1,"totalPages":1}`,
			wantIDs:        []string{"a"},
			wantPagination: &entity.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1},
		},
		{name: "null data", raw: `{"data":null}`, wantIDs: []string{}},
		{name: "empty body", raw: ``, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, pagination, err := DecodeList[named](json.RawMessage(tt.raw))
			require.NoError(t, err)
			require.NotNil(t, items)

			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPagination, pagination)
		})
	}
}

func TestDecodeList_Malformed(t *testing.T) {
	_, _, err := DecodeList[named](json.RawMessage(`"just a string"`))
	assert.Error(t, err)

	_, _, err = DecodeList[named](json.RawMessage(`[{"id":1}]`))
	assert.Error(t, err)
}

func TestDecodeOne_Shapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare object", raw: `{"id":"a","name":"Alice"}`},
		{name: "data object", raw: `{"success":true,"data":{"id":"a","name":"Alice"}}`},
		{name: "data keyed", raw: `{"data":{"user":{"id":"a","name":"Alice"}}}`},
		{name: "top keyed", raw: `{"user":{"id":"a","name":"Alice"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOne[named](json.RawMessage(tt.raw), "user")
			require.NoError(t, err)
			assert.Equal(t, &named{ID: "a", Name: "Alice"}, got)
		})
	}

	_, err := DecodeOne[named](json.RawMessage(`null`))
	assert.Error(t, err)
}
