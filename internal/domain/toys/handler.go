package toys

import (
	"net/http"
	"time"

	"cat-collector/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: los juguetes son compartidos; solo exigen login, no dueño.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/toys", listToysHandler(svc))

	r.Get("/toys/create", toyFormHandler(svc, false))
	r.Post("/toys/create", createToyHandler(svc))

	r.Get("/toys/{toyID}", getToyHandler(svc))

	r.Get("/toys/{toyID}/update", toyFormHandler(svc, true))
	r.Post("/toys/{toyID}/update", updateToyHandler(svc))

	r.Get("/toys/{toyID}/delete", deleteToyConfirmHandler(svc))
	r.Post("/toys/{toyID}/delete", deleteToyHandler(svc))
}

func DetailPath(toyID string) string {
	return "/toys/" + toyID
}

type toyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

type toyFormResponse struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

func toToyResponse(t Toy) toyResponse {
	return toyResponse{ID: t.ID, Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

func readInput(r *http.Request) (Input, error) {
	if err := web.ParseForm(r, 1<<20); err != nil {
		return Input{}, err
	}
	return Input{
		Name:  r.PostFormValue("name"),
		Color: r.PostFormValue("color"),
	}, nil
}

// listToysHandler godoc
// @Summary Listar juguetes
// @Tags toys
// @Produce json
// @Success 200 {array} toyResponse
// @Router /toys [get]
func listToysHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			web.WriteError(w, err)
			return
		}
		out := make([]toyResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toToyResponse(t))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// getToyHandler godoc
// @Summary Detalle de un juguete
// @Tags toys
// @Produce json
// @Param toyID path string true "ID del juguete"
// @Success 200 {object} toyResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /toys/{toyID} [get]
func getToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toToyResponse(t))
	}
}

func toyFormHandler(svc *Service, existing bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !existing {
			web.WriteJSON(w, http.StatusOK, toyFormResponse{Action: "/toys/create"})
			return
		}
		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, toyFormResponse{
			Action: DetailPath(t.ID) + "/update",
			Name:   t.Name,
			Color:  t.Color,
		})
	}
}

// createToyHandler godoc
// @Summary Crear juguete
// @Tags toys
// @Accept x-www-form-urlencoded
// @Param name formData string true "Nombre (máx. 50)"
// @Param color formData string true "Color (máx. 50)"
// @Success 303 {string} string "redirect a /toys/{toyID}"
// @Failure 400 {object} web.ErrorResponse
// @Router /toys/create [post]
func createToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readInput(r)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		t, err := svc.Create(r.Context(), in)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, DetailPath(t.ID))
	}
}

func updateToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readInput(r)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		t, err := svc.Update(r.Context(), chi.URLParam(r, "toyID"), in)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, DetailPath(t.ID))
	}
}

func deleteToyConfirmHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, err := svc.Get(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]any{
			"toy":    toToyResponse(t),
			"action": DetailPath(t.ID) + "/delete",
		})
	}
}

// deleteToyHandler godoc
// @Summary Borrar juguete
// @Description Lo desvincula de todos los gatos; los gatos no se tocan.
// @Tags toys
// @Param toyID path string true "ID del juguete"
// @Success 303 {string} string "redirect a /toys"
// @Failure 404 {object} web.ErrorResponse
// @Router /toys/{toyID}/delete [post]
func deleteToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "toyID")); err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/toys")
	}
}
