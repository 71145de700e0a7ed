package api

import (
	"github.com/corvidae/voxctl/server/dao"
	"github.com/corvidae/voxctl/server/middle"
	"github.com/go-chi/chi/v5"
)

// Routes builds a chi.Router that serves every endpoint of the API under
// PathPrefix. Callers should mount the result on their own top-level mux, or
// use it directly as an http.Handler.
func (api API) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middle.DontPanic())

	required := middle.RequireAuth(api.Backend.DB.Users(), api.Secret, api.UnauthDelay, dao.User{})
	optional := middle.OptionalAuth(api.Backend.DB.Users(), api.Secret, api.UnauthDelay, dao.User{})

	r.Route(PathPrefix, func(r chi.Router) {
		r.With(optional).Get("/info", api.HTTPGetInfo())

		r.Post("/login", api.HTTPCreateLogin())
		r.With(required).Delete("/login/{id}", api.HTTPDeleteLogin())
		r.With(required).Post("/tokens", api.HTTPCreateToken())

		r.With(required).Get("/users", api.HTTPGetAllUsers())
		r.With(required).Post("/users", api.HTTPCreateUser())
		r.With(required).Get("/users/{id}", api.HTTPGetUser())
		r.With(required).Patch("/users/{id}", api.HTTPUpdateUser())
		r.With(required).Put("/users/{id}", api.HTTPReplaceUser())
		r.With(required).Delete("/users/{id}", api.HTTPDeleteUser())

		r.With(required).Post("/sessions", api.HTTPCreateSession())
		r.With(required).Get("/sessions/{id}/held-keys", api.HTTPGetHeldKeys())
		r.With(required).Put("/sessions/{id}/held-keys", api.HTTPSetHeldKeys())
		r.With(required).Post("/sessions/{id}/recognitions", api.HTTPCreateRecognition())
	})

	return r
}
