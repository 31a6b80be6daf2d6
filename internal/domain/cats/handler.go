package cats

import (
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/domain/associations"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const maxFormMemory = 1 << 20

// Detail agrupa los módulos que cuelgan del gato para armar la página de detalle.
type Detail struct {
	Feedings     *feedings.Service
	Photos       *photos.Service
	Toys         *toys.Service
	Associations *associations.Service
}

// RegisterRoutes asume que r ya exige usuario (middleware.RequireUser).
func RegisterRoutes(r chi.Router, svc *Service, detail Detail) {
	r.Get("/cats", listCatsHandler(svc))

	r.Get("/cats/create", createCatFormHandler())
	r.Post("/cats/create", createCatHandler(svc))

	r.Get("/cats/{catID}", catDetailHandler(svc, detail))

	r.Get("/cats/{catID}/update", updateCatFormHandler(svc))
	r.Post("/cats/{catID}/update", updateCatHandler(svc))

	r.Get("/cats/{catID}/delete", deleteCatConfirmHandler(svc))
	r.Post("/cats/{catID}/delete", deleteCatHandler(svc))
}

// DetailPath es el destino de los redirects de todas las acciones sobre un gato.
func DetailPath(catID string) string {
	return "/cats/" + catID
}

type catResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type catFormResponse struct {
	Action string       `json:"action"`
	Fields catFormField `json:"fields"`
}

type catFormField struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Description string `json:"description"`
	Age         int    `json:"age"`
}

type feedingResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Meal    string `json:"meal"`
	Display string `json:"display"`
}

type photoResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type toyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type mealChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type feedingForm struct {
	Action  string       `json:"action"`
	Initial string       `json:"initial"`
	Meals   []mealChoice `json:"meals"`
}

type catDetailResponse struct {
	Cat           catResponse       `json:"cat"`
	Feedings      []feedingResponse `json:"feedings"`
	Photos        []photoResponse   `json:"photos"`
	Toys          []toyResponse     `json:"toys"`
	ToysCatDoesnt []toyResponse     `json:"toys_cat_doesnt_have"`
	FeedingForm   feedingForm       `json:"feeding_form"`
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:          c.ID,
		Name:        c.Name,
		Breed:       c.Breed,
		Description: c.Description,
		Age:         c.Age,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toToyResponses(items []toys.Toy) []toyResponse {
	out := make([]toyResponse, 0, len(items))
	for _, t := range items {
		out = append(out, toyResponse{ID: t.ID, Name: t.Name, Color: t.Color})
	}
	return out
}

func readInput(r *http.Request) (Input, error) {
	if err := web.ParseForm(r, maxFormMemory); err != nil {
		return Input{}, err
	}
	age, err := web.FormInt(r, "age", 0)
	if err != nil {
		return Input{}, err
	}
	return Input{
		Name:        r.PostFormValue("name"),
		Breed:       r.PostFormValue("breed"),
		Description: r.PostFormValue("description"),
		Age:         age,
	}, nil
}

// listCatsHandler godoc
// @Summary Listar mis gatos
// @Description Solo devuelve los gatos del usuario autenticado.
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} catResponse
// @Success 303 {string} string "redirect a /accounts/login si no hay sesión"
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByOwner(r.Context(), middleware.UserID(r.Context()))
		if err != nil {
			web.WriteError(w, err)
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

// catDetailHandler godoc
// @Summary Detalle de un gato
// @Description Gato con sus feedings (más recientes primero), fotos, juguetes, juguetes que aún no tiene y el formulario de feeding.
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param catID path string true "ID del gato"
// @Success 200 {object} catDetailResponse
// @Failure 404 {object} web.ErrorResponse "no existe o no es tuyo"
// @Router /cats/{catID} [get]
func catDetailHandler(svc *Service, d Detail) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		c, err := svc.Get(ctx, chi.URLParam(r, "catID"), middleware.UserID(ctx))
		if err != nil {
			web.WriteError(w, err)
			return
		}

		feeds, err := d.Feedings.ListByCat(ctx, c.ID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		pics, err := d.Photos.ListByCat(ctx, c.ID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		toyIDs, err := d.Associations.ListToyIDs(ctx, c.ID)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		owned, err := d.Toys.ListByIDs(ctx, toyIDs)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		missing, err := d.Toys.ListExcluding(ctx, toyIDs)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		resp := catDetailResponse{
			Cat:           toCatResponse(c),
			Feedings:      make([]feedingResponse, 0, len(feeds)),
			Photos:        make([]photoResponse, 0, len(pics)),
			Toys:          toToyResponses(owned),
			ToysCatDoesnt: toToyResponses(missing),
			FeedingForm: feedingForm{
				Action:  DetailPath(c.ID) + "/add_feeding",
				Initial: string(feedings.DefaultMeal),
				Meals:   make([]mealChoice, 0, 3),
			},
		}
		for _, f := range feeds {
			resp.Feedings = append(resp.Feedings, feedingResponse{
				ID:      f.ID,
				Date:    f.Date.Format(feedings.DateLayout),
				Meal:    string(f.Meal),
				Display: f.String(),
			})
		}
		for _, p := range pics {
			resp.Photos = append(resp.Photos, photoResponse{ID: p.ID, URL: p.URL})
		}
		for _, m := range feedings.Meals() {
			resp.FeedingForm.Meals = append(resp.FeedingForm.Meals, mealChoice{Value: string(m), Label: m.Display()})
		}

		web.WriteJSON(w, http.StatusOK, resp)
	}
}

func createCatFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		web.WriteJSON(w, http.StatusOK, catFormResponse{Action: "/cats/create"})
	}
}

// createCatHandler godoc
// @Summary Crear gato
// @Description Form post; el dueño es el usuario autenticado. Responde 303 al detalle.
// @Tags cats
// @Accept x-www-form-urlencoded
// @Param name formData string true "Nombre (máx. 100)"
// @Param breed formData string true "Raza (máx. 100)"
// @Param description formData string false "Descripción (máx. 250)"
// @Param age formData int false "Edad, >= 0"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 400 {object} web.ErrorResponse
// @Router /cats/create [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := readInput(r)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		c, err := svc.Create(r.Context(), middleware.UserID(r.Context()), in)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, DetailPath(c.ID))
	}
}

func updateCatFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "catID"), middleware.UserID(r.Context()))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, catFormResponse{
			Action: DetailPath(c.ID) + "/update",
			Fields: catFormField{
				Name:        c.Name,
				Breed:       c.Breed,
				Description: c.Description,
				Age:         c.Age,
			},
		})
	}
}

// updateCatHandler godoc
// @Summary Editar gato
// @Tags cats
// @Accept x-www-form-urlencoded
// @Param catID path string true "ID del gato"
// @Param name formData string true "Nombre"
// @Param breed formData string true "Raza"
// @Param description formData string false "Descripción"
// @Param age formData int false "Edad"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /cats/{catID}/update [post]
func updateCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catID := chi.URLParam(r, "catID")
		userID := middleware.UserID(r.Context())

		// Autorizar antes de validar: un gato ajeno es 404 aunque el form sea inválido.
		if _, err := svc.Authorize(r.Context(), catID, userID); err != nil {
			web.WriteError(w, err)
			return
		}

		in, err := readInput(r)
		if err != nil {
			web.WriteError(w, err)
			return
		}

		c, err := svc.Update(r.Context(), catID, userID, in)
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, DetailPath(c.ID))
	}
}

func deleteCatConfirmHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), chi.URLParam(r, "catID"), middleware.UserID(r.Context()))
		if err != nil {
			web.WriteError(w, err)
			return
		}
		web.WriteJSON(w, http.StatusOK, map[string]any{
			"cat":     toCatResponse(c),
			"action":  DetailPath(c.ID) + "/delete",
			"confirm": "Are you sure you want to delete " + strings.TrimSpace(c.Name) + "?",
		})
	}
}

// deleteCatHandler godoc
// @Summary Borrar gato
// @Description Borra el gato con sus feedings, fotos y vínculos a juguetes. Los juguetes quedan.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Success 303 {string} string "redirect a /cats"
// @Failure 404 {object} web.ErrorResponse
// @Router /cats/{catID}/delete [post]
func deleteCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "catID"), middleware.UserID(r.Context())); err != nil {
			web.WriteError(w, err)
			return
		}
		web.SeeOther(w, r, "/cats")
	}
}
