package middleware

import (
	"net/http"
	"net/url"
)

// LoginPath es a donde se redirige a los anónimos.
const LoginPath = "/accounts/login"

// RequireUser corta antes de la lógica de negocio: 303 al login con ?next=.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserID(r.Context()) == "" {
			target := LoginPath + "?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
