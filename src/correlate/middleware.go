// FILE: src/correlate/middleware.go
package correlate

import "net/http"

// Header carries the correlation id across HTTP hops
const Header = "X-Correlation-ID"

// Middleware opens a correlation scope per request: an incoming
// X-Correlation-ID header is honored, otherwise a fresh id is generated.
// The id is installed in the request context and echoed on the response
// so downstream services and clients can tie their entries together.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = NewID()
		}

		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
	})
}
