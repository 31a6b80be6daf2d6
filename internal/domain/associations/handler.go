package associations

import (
	"net/http"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/cats/{catID}/assoc_toy/{toyID}", assocToyHandler(svc))
	r.Post("/cats/{catID}/assoc_toy/{toyID}/remove", removeToyHandler(svc))
}

// assocToyHandler godoc
// @Summary Dar un juguete a un gato
// @Description Idempotente: repetirlo no duplica el vínculo.
// @Tags associations
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 404 {object} web.ErrorResponse "gato ajeno/inexistente o juguete inexistente"
// @Router /cats/{catID}/assoc_toy/{toyID} [post]
func assocToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		err := svc.Associate(r.Context(), middleware.UserID(r.Context()), catID, chi.URLParam(r, "toyID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/cats/"+catID)
	}
}

// removeToyHandler godoc
// @Summary Quitar un juguete a un gato
// @Description Si el vínculo no existe no hace nada.
// @Tags associations
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 404 {object} web.ErrorResponse
// @Router /cats/{catID}/assoc_toy/{toyID}/remove [post]
func removeToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		err := svc.Disassociate(r.Context(), middleware.UserID(r.Context()), catID, chi.URLParam(r, "toyID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/cats/"+catID)
	}
}
