package api

import (
	"net/url"
	"strconv"
)

// resource joins escaped path segments under a collection, e.g. resource("/users", id, "status").
func resource(collection string, segments ...string) string {
	path := collection
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}

	return path
}

// pageQuery adds page and limit when they are set.
func pageQuery(q url.Values, page, limit int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return q
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
