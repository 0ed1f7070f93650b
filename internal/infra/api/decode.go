package api

import (
	"bytes"
	"encoding/json"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

// listKeys are the collection fields the backend nests list payloads under.
var listKeys = []string{
	"items", "users", "vendors", "products", "orders", "addresses", "messages",
	"notifications", "sessions", "categories", "subcategories", "attributes",
	"productTypes", "wishlist", "results", "docs", "rows",
}

// DecodeList canonicalizes every list shape the backend returns into []T.
// Accepted: [...], {data: [...]}, {data: {items: [...]}}, {items: [...]}, with an
// optional pagination object under pagination, meta or as flat fields.
func DecodeList[T any](raw json.RawMessage) ([]T, *entity.Pagination, error) {
	items, pagination, err := locateList(raw)
	if err != nil {
		return nil, nil, err
	}

	result := make([]T, 0)
	if items == nil {
		return result, pagination, nil
	}

	if err := json.Unmarshal(items, &result); err != nil {
		return nil, nil, errors.Wrap(err, "failed to decode list payload")
	}

	return result, pagination, nil
}

// DecodeOne accepts {data: {...}}, a bare object, or a wrapper keyed by name
// such as {data: {user: {...}}}.
func DecodeOne[T any](raw json.RawMessage, keys ...string) (*T, error) {
	payload := bytes.TrimSpace(raw)
	if isEmpty(payload) {
		return nil, errors.New("empty response body")
	}

	if obj, ok := asObject(payload); ok {
		if data, ok := obj["data"]; ok && !isEmpty(data) {
			payload = data
			obj, _ = asObject(data)
		}
		for _, key := range keys {
			if nested, ok := obj[key]; ok && !isEmpty(nested) {
				payload = nested

				break
			}
		}
	}

	result := new(T)
	if err := json.Unmarshal(payload, result); err != nil {
		return nil, errors.Wrap(err, "failed to decode response payload")
	}

	return result, nil
}

func locateList(raw json.RawMessage) (json.RawMessage, *entity.Pagination, error) {
	payload := bytes.TrimSpace(raw)
	if isEmpty(payload) {
		return nil, nil, nil
	}
	if payload[0] == '[' {
		return payload, nil, nil
	}

	obj, ok := asObject(payload)
	if !ok {
		return nil, nil, errors.Errorf("unexpected list payload: %.40s", payload)
	}

	pagination := parsePagination(obj)

	if data, ok := obj["data"]; ok {
		data = bytes.TrimSpace(data)
		if isEmpty(data) {
			return nil, pagination, nil
		}
		if data[0] == '[' {
			return data, pagination, nil
		}

		inner, ok := asObject(data)
		if !ok {
			return nil, nil, errors.Errorf("unexpected data payload: %.40s", data)
		}
		if pagination == nil {
			pagination = parsePagination(inner)
		}
		if items := findArray(inner); items != nil {
			return items, pagination, nil
		}

		return nil, pagination, nil
	}

	return findArray(obj), pagination, nil
}

// findArray returns the first known collection key, else the only array field.
func findArray(obj map[string]json.RawMessage) json.RawMessage {
	for _, key := range listKeys {
		if v, ok := obj[key]; ok {
			v = bytes.TrimSpace(v)
			if len(v) > 0 && v[0] == '[' {
				return v
			}
		}
	}

	var found json.RawMessage
	for _, v := range obj {
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '[' {
			if found != nil {
				return nil
			}
			found = v
		}
	}

	return found
}

func parsePagination(obj map[string]json.RawMessage) *entity.Pagination {
	for _, key := range []string{"pagination", "meta"} {
		if v, ok := obj[key]; ok && !isEmpty(v) {
			var p entity.Pagination
			if json.Unmarshal(v, &p) == nil && (p.Total > 0 || p.Page > 0) {
				return &p
			}
		}
	}

	if _, ok := obj["total"]; ok {
		var p entity.Pagination
		if raw, err := json.Marshal(obj); err == nil && json.Unmarshal(raw, &p) == nil {
			return &p
		}
	}

	return nil
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}

	return obj, true
}

func isEmpty(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)

	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
