package http

import (
	"net/http"
	"strconv"
	"strings"
)

// queryInt reads a required integer query parameter.
func queryInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0, false
	}
	return v, true
}

// formInt reads an integer form value. An empty optional value reads as 0.
func formInt(r *http.Request, name string, optional bool) (int, bool) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" && optional {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func companyParam(r *http.Request) string {
	return r.URL.Query().Get("company")
}
