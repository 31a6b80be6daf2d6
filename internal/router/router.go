package router

import (
	"database/sql"
	"net/http"

	_ "cat-collector/docs"
	objmem "cat-collector/internal/adapters/objectstore/memory"
	mem "cat-collector/internal/adapters/storage/memory"
	pg "cat-collector/internal/adapters/storage/postgres"
	lite "cat-collector/internal/adapters/storage/sqlite"
	"cat-collector/internal/domain/accounts"
	"cat-collector/internal/domain/associations"
	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/config"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/web"
	"cat-collector/internal/ports/auth"
	"cat-collector/internal/ports/objectstore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	TokenIssuer  auth.TokenIssuer  // nil => no se emiten cookies
	CookieSecure bool

	// Opcional: si viene, usa SQL según Driver (postgres|sqlite). Si no, in-memory.
	DB     *sql.DB
	Driver string

	// Nil => object store en memoria.
	Uploader objectstore.Uploader
	Photos   photos.Config

	// 0 => bcrypt.DefaultCost. Los tests usan bcrypt.MinCost.
	BcryptCost int
}

type repos struct {
	users        accounts.Repository
	cats         cats.Repository
	toys         toys.Repository
	associations associations.Repository
	feedings     feedings.Repository
	photos       photos.Repository
}

func newRepos(db *sql.DB, driver string) repos {
	switch {
	case db != nil && driver == config.DriverSQLite:
		return repos{
			users:        lite.NewUsersRepo(db),
			cats:         lite.NewCatsRepo(db),
			toys:         lite.NewToysRepo(db),
			associations: lite.NewAssociationsRepo(db),
			feedings:     lite.NewFeedingsRepo(db),
			photos:       lite.NewPhotosRepo(db),
		}
	case db != nil:
		return repos{
			users:        pg.NewUsersRepo(db),
			cats:         pg.NewCatsRepo(db),
			toys:         pg.NewToysRepo(db),
			associations: pg.NewAssociationsRepo(db),
			feedings:     pg.NewFeedingsRepo(db),
			photos:       pg.NewPhotosRepo(db),
		}
	default:
		m := mem.NewDB()
		return repos{
			users:        mem.NewUserRepo(m),
			cats:         mem.NewCatRepo(m),
			toys:         mem.NewToyRepo(m),
			associations: mem.NewAssociationRepo(m),
			feedings:     mem.NewFeedingRepo(m),
			photos:       mem.NewPhotoRepo(m),
		}
	}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", homeHandler)
	r.Get("/about", aboutHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	rp := newRepos(opts.DB, opts.Driver)

	uploader := opts.Uploader
	if uploader == nil {
		uploader = objmem.NewStore()
	}

	// Services por módulo
	accountsSvc := accounts.NewService(rp.users, opts.BcryptCost)
	catsSvc := cats.NewService(rp.cats)
	toysSvc := toys.NewService(rp.toys)
	feedingsSvc := feedings.NewService(rp.feedings, catsSvc)
	photosSvc := photos.NewService(rp.photos, catsSvc, uploader, opts.Photos, log)
	assocSvc := associations.NewService(rp.associations, catsSvc, toysSvc)

	// Rutas públicas
	accounts.RegisterRoutes(r, accountsSvc, accounts.Sessions{
		Issuer:       opts.TokenIssuer,
		CookieSecure: opts.CookieSecure,
	})

	// Rutas con login
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireUser)

		cats.RegisterRoutes(pr, catsSvc, cats.Detail{
			Feedings:     feedingsSvc,
			Photos:       photosSvc,
			Toys:         toysSvc,
			Associations: assocSvc,
		})
		feedings.RegisterRoutes(pr, feedingsSvc)
		photos.RegisterRoutes(pr, photosSvc)
		associations.RegisterRoutes(pr, assocSvc)
		toys.RegisterRoutes(pr, toysSvc)
	})

	return r
}

func homeHandler(w http.ResponseWriter, r *http.Request) {
	links := map[string]string{
		"about":  "/about",
		"signup": "/accounts/signup",
		"login":  "/accounts/login",
	}
	if middleware.UserID(r.Context()) != "" {
		links = map[string]string{
			"about": "/about",
			"cats":  "/cats",
			"toys":  "/toys",
		}
	}
	web.WriteJSON(w, http.StatusOK, map[string]any{
		"title": "Cat Collector",
		"links": links,
	})
}

func aboutHandler(w http.ResponseWriter, _ *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]any{
		"title": "About the Cat Collector",
		"body":  "Keep track of your cats: what they eat, which toys they have and how they look.",
	})
}
