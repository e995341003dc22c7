// Package htmx holds request detection helpers and response headers for
// htmx driven pages.
//
//	if htmx.IsPartial(r) {
//	    // render only the fragment being swapped
//	}
//	htmx.Trigger(w, map[string]any{"cart-updated": map[string]int{"count": 3}})
//	htmx.Redirect(w, r, "/order-confirmation?order="+id, http.StatusSeeOther)
package htmx
