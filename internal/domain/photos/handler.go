package photos

import (
	"errors"
	"net/http"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const (
	// FormField es el nombre del campo multipart con la imagen.
	FormField = "photo-file"

	MaxUploadBytes = 10 << 20
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/cats/{catID}/add_photo", addPhotoHandler(svc))
}

// addPhotoHandler godoc
// @Summary Subir foto de un gato
// @Description Multipart con campo photo-file. Siempre redirige al detalle: si no hay archivo o la subida falla, simplemente no se agrega la foto.
// @Tags photos
// @Accept multipart/form-data
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param catID path string true "ID del gato"
// @Param photo-file formData file false "Imagen"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 404 {object} web.ErrorResponse "no existe o no es tuyo"
// @Router /cats/{catID}/add_photo [post]
func addPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		userID := middleware.UserID(r.Context())
		back := "/cats/" + catID

		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

		file, header, err := r.FormFile(FormField)
		if err != nil {
			// Sin archivo (o form ilegible): igual pasa por el gate para no filtrar gatos ajenos.
			if _, _, ierr := svc.Ingest(r.Context(), userID, catID, nil, 0, ""); ierr != nil {
				web.WriteError(w, ierr)
				return
			}
			if !errors.Is(err, http.ErrMissingFile) {
				svc.log.Warn("photo form unreadable", logger.Fields{"cat_id": catID, "err": err})
			}
			web.SeeOther(w, r, back)
			return
		}
		defer file.Close()

		if _, _, err := svc.Ingest(r.Context(), userID, catID, file, header.Size, header.Filename); err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, back)
	}
}
