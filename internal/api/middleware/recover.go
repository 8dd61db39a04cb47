package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/deepgram/neuroscan/pkg/httpext"
	"github.com/rs/zerolog"
)

// Recover converts a handler panic into a generic 500 so no internal
// detail reaches the client
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			zerolog.Ctx(r.Context()).Error().
				Str("panic", fmt.Sprint(rec)).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("Recovered from handler panic")

			httpext.Text(w, "Internal Server Error", http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
