package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}))
	if h.cfg.RequestTimeout > 0 {
		router.Use(withTimeout(h.cfg.RequestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)
		r.Post("/create-account", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/logout/{userId}", h.logout)
		r.Get("/get-user", h.getUser)

		r.Post("/add-note", h.addNote)
		r.Put("/edit-note/{noteId}", h.editNote)
		r.Get("/get-all-notes", h.getAllNotes)
		r.Delete("/delete-note/{noteId}", h.deleteNote)
		r.Put("/pin-note/{noteId}", h.pinNote)
		r.Get("/search-notes", h.searchNotes)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
