package accounts

import (
	"errors"
	"net/http"
	"strings"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/apperrors"
	"cat-collector/internal/platform/web"
	"cat-collector/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// Sessions es lo que el handler necesita para "loguear" al usuario.
// Issuer nil => modo dev: no se emiten cookies.
type Sessions struct {
	Issuer       auth.TokenIssuer
	CookieSecure bool
}

func RegisterRoutes(r chi.Router, svc *Service, sessions Sessions) {
	r.Get("/accounts/signup", signupFormHandler())
	r.Post("/accounts/signup", signupHandler(svc, sessions))

	r.Get("/accounts/login", loginFormHandler())
	r.Post("/accounts/login", loginHandler(svc, sessions))

	r.Post("/accounts/logout", logoutHandler(sessions))
}

type formResponse struct {
	Action string   `json:"action"`
	Fields []string `json:"fields"`
	Next   string   `json:"next,omitempty"`
}

type signupErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Cause string `json:"cause,omitempty"`
}

func signupFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, formResponse{
			Action: "/accounts/signup",
			Fields: []string{"username", "password1", "password2"},
		})
	}
}

// signupHandler godoc
// @Summary Crear cuenta
// @Description Crea el usuario, abre sesión (cookie) y redirige a /cats.
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Param username formData string true "Usuario (máx. 150)"
// @Param password1 formData string true "Contraseña (mín. 8)"
// @Param password2 formData string true "Confirmación"
// @Success 303 {string} string "redirect a /cats"
// @Failure 400 {object} signupErrorResponse
// @Router /accounts/signup [post]
func signupHandler(svc *Service, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(r, 1<<20); err != nil {
			web.WriteError(w, err)
			return
		}

		u, err := svc.Signup(r.Context(),
			r.PostFormValue("username"),
			r.PostFormValue("password1"),
			r.PostFormValue("password2"),
		)
		if err != nil {
			if ve, ok := apperrors.AsValidation(err); ok {
				web.WriteJSON(w, http.StatusBadRequest, signupErrorResponse{
					Error: SignupFailMessage,
					Field: ve.Field,
					Cause: ve.Message,
				})
				return
			}
			web.WriteError(w, err)
			return
		}

		if err := startSession(w, r, sessions, u); err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/cats")
	}
}

func loginFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, http.StatusOK, formResponse{
			Action: "/accounts/login",
			Fields: []string{"username", "password"},
			Next:   safeNext(r.URL.Query().Get("next")),
		})
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Tags accounts
// @Accept x-www-form-urlencoded
// @Param username formData string true "Usuario"
// @Param password formData string true "Contraseña"
// @Param next formData string false "Ruta local a la que volver"
// @Success 303 {string} string "redirect a next o /cats"
// @Failure 401 {object} web.ErrorResponse
// @Router /accounts/login [post]
func loginHandler(svc *Service, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.ParseForm(r, 1<<20); err != nil {
			web.WriteError(w, err)
			return
		}

		u, err := svc.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthenticated) {
				web.WriteJSON(w, http.StatusUnauthorized, web.ErrorResponse{Error: "invalid username or password"})
				return
			}
			web.WriteError(w, err)
			return
		}

		if err := startSession(w, r, sessions, u); err != nil {
			web.WriteError(w, err)
			return
		}

		next := safeNext(r.PostFormValue("next"))
		if next == "" {
			next = "/cats"
		}
		web.SeeOther(w, r, next)
	}
}

func logoutHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware.ClearSessionCookie(w, sessions.CookieSecure)
		web.SeeOther(w, r, "/")
	}
}

func startSession(w http.ResponseWriter, r *http.Request, sessions Sessions, u User) error {
	if sessions.Issuer == nil {
		return nil
	}
	token, exp, err := sessions.Issuer.Issue(r.Context(), auth.Claims{UserID: u.ID, Username: u.Username})
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(w, token, exp, sessions.CookieSecure)
	return nil
}

// safeNext solo acepta rutas locales; evita open redirects.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
