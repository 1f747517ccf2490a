// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the HTTP routes to their handlers. Public reads
// live under /api; everything that writes lives under /api/admin behind
// the admin gate.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"newsdesk/internal/auth"
	"newsdesk/internal/handlers"
	"newsdesk/internal/middleware"
)

// Deps carries everything the route table needs.
type Deps struct {
	Tokens       *auth.Manager
	LoginLimiter *middleware.LoginLimiter

	Auth       *handlers.AuthHandler
	Articles   *handlers.ArticleHandler
	Categories *handlers.CategoryHandler
	Tags       *handlers.TagHandler
	Media      *handlers.MediaHandler
	Sections   *handlers.SectionHandler
	Users      *handlers.UserHandler
}

// New builds the full route table.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)
	r.Use(middleware.Authenticate(d.Tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.With(d.LoginLimiter.Middleware).Post("/auth/login", d.Auth.Login)

		r.Get("/articles", d.Articles.List)
		r.Get("/articles/{slug}", d.Articles.GetBySlug)
		r.Get("/categories", d.Categories.List)
		r.Get("/categories/{slug}", d.Categories.GetBySlug)
		r.Get("/tags", d.Tags.List)
		r.Get("/sections", d.Sections.List)
		r.Get("/sections/{key}/items", d.Sections.Items)
		r.Get("/users", d.Users.List)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/articles/{id}", d.Articles.GetByID)
			r.Post("/articles", d.Articles.Create)
			r.Put("/articles/{id}", d.Articles.Update)
			r.Delete("/articles/{id}", d.Articles.Delete)

			r.Post("/categories", d.Categories.Create)
			r.Put("/categories/{id}", d.Categories.Update)
			r.Delete("/categories/{id}", d.Categories.Delete)

			r.Post("/tags", d.Tags.Create)
			r.Put("/tags/{id}", d.Tags.Update)
			r.Delete("/tags/{id}", d.Tags.Delete)

			r.Get("/media", d.Media.List)
			r.Post("/media", d.Media.Upload)
			r.Get("/media/{id}/usage", d.Media.CheckUsage)
			r.Delete("/media/{id}", d.Media.Delete)

			r.Post("/sections", d.Sections.Create)
			r.Put("/sections/{id}", d.Sections.Update)
			r.Delete("/sections/{id}", d.Sections.Delete)
			r.Post("/section-items", d.Sections.CreateItem)
			r.Put("/section-items/{id}", d.Sections.UpdateItem)
			r.Delete("/section-items/{id}", d.Sections.DeleteItem)

			r.Get("/users", d.Users.ListFull)
			r.Post("/users", d.Users.Create)
			r.Put("/users/{id}", d.Users.Update)
			r.Delete("/users/{id}", d.Users.Delete)
		})
	})

	return r
}
