package http

import (
	"net/http"
	"strconv"
)

// pagination reads page and limit from the query string; services normalize them.
func pagination(r *http.Request) (page, limit int) {
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

// queryInt returns nil when key is absent and ok=false when it is not a number.
func queryInt(r *http.Request, key string) (value *int, ok bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}
