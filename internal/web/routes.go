package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware(h)
	r.Use(SessionMiddleware(h))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/github", Login(h))
			r.Get("/callback", Callback(h))
			r.Get("/user", User(h))
			r.Get("/logout", Logout(h))
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/", GetConfig(h))
			r.Method(http.MethodPut, "/", authenticated(PutConfig(h)))
		})

		r.Route("/github", func(r chi.Router) {
			r.Get("/profile", GetProfile(h))
			r.Get("/projects", GetProjects(h))
			r.Get("/blogs", GetBlogs(h))

			r.Get("/collections", GetCollections(h))
			r.Method(http.MethodPost, "/collections", authenticated(CreateCollection(h)))
			r.Method(http.MethodDelete, "/collections", authenticated(DeleteCollection(h)))

			r.Method(http.MethodPut, "/push", authenticated(Push(h)))
			r.Method(http.MethodDelete, "/push", authenticated(DeleteItem(h)))

			r.Method(http.MethodGet, "/repos", authenticated(ListRepos(h)))
			r.Method(http.MethodGet, "/repos/{owner}/{repo}", authenticated(ImportRepo(h)))
		})

		r.Route("/images", func(r chi.Router) {
			r.Method(http.MethodPost, "/upload", authenticated(UploadImage(h)))
			r.Method(http.MethodPost, "/delete", authenticated(DeleteImage(h)))
		})

		r.Route("/repo", func(r chi.Router) {
			r.Method(http.MethodPost, "/create", authenticated(CreateRepo(h)))
			r.Method(http.MethodGet, "/check/{owner}/{repo}", authenticated(CheckRepo(h)))
		})

		r.Method(http.MethodPost, "/ai/describe", authenticated(Describe(h)))
	})
}
