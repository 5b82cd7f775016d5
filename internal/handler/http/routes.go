// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/health", h.health)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/entities/{type}", func(r chi.Router) {
				r.Get("/", h.listEntities)
				r.Get("/{id}", h.getEntity)
				r.Put("/{id}", h.saveEntity)
				r.Delete("/{id}", h.deleteEntity)
				r.Get("/{id}/version", h.entityVersion)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.addCategory)
				r.Put("/{kind}/order", h.reorderCategories)
				r.Delete("/{kind}/{name}", h.removeCategory)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", h.listNotes)
				r.Put("/{key}", h.setNote)
				r.Delete("/{key}", h.deleteNote)
			})
		})
	})

	return router
}
