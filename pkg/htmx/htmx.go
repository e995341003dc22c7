package htmx

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted reports whether the request comes from an hx-boost link or form.
// Boosted requests expect a full page.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// IsPartial reports whether the request expects a fragment.
func IsPartial(r *http.Request) bool {
	return IsHTMX(r) && !IsBoosted(r)
}

// Target returns the id of the element being swapped, if any.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// Trigger sets HX-Trigger with client side events. Events without details
// are sent as a plain comma separated list.
func Trigger(w http.ResponseWriter, events map[string]any) {
	if len(events) == 0 {
		return
	}

	plain := true
	names := make([]string, 0, len(events))
	for name, detail := range events {
		if detail != nil {
			plain = false
		}
		names = append(names, name)
	}

	if plain {
		sort.Strings(names)
		w.Header().Set(HeaderHXTrigger, strings.Join(names, ", "))
		return
	}

	data, err := json.Marshal(events)
	if err != nil {
		return
	}
	w.Header().Set(HeaderHXTrigger, string(data))
}

// Redirect sends a client side redirect for htmx requests and a regular
// HTTP redirect otherwise.
func Redirect(w http.ResponseWriter, r *http.Request, url string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, status)
}
