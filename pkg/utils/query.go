package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// ParsePage reads the 1-based "page" query parameter, falling back to 1 when absent or invalid
func ParsePage(r *http.Request) int {
	page, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("page")))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParseAmount reads an integer cents query parameter, returning fallback when absent
func ParseAmount(r *http.Request, name string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}
