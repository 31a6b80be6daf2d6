package feedings

import (
	"net/http"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/cats/{catID}/add_feeding", addFeedingHandler(svc))
}

// addFeedingHandler godoc
// @Summary Registrar una comida
// @Description Form post. meal es obligatorio y exacto (B, L o D). Con datos inválidos responde 400 y no guarda nada.
// @Tags feedings
// @Accept x-www-form-urlencoded
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param catID path string true "ID del gato"
// @Param date formData string true "Fecha YYYY-MM-DD"
// @Param meal formData string true "B, L o D"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse "no existe o no es tuyo"
// @Router /cats/{catID}/add_feeding [post]
func addFeedingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")

		if err := web.ParseForm(r, 1<<20); err != nil {
			web.WriteError(w, err)
			return
		}

		_, err := svc.Record(r.Context(),
			middleware.UserID(r.Context()),
			catID,
			r.PostFormValue("date"),
			r.PostFormValue("meal"),
		)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/cats/"+catID)
	}
}
