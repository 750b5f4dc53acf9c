package web

import (
	"io"
	"net/http"

	"gitfolio/internal/domain"
	"gitfolio/internal/httputil"
)

const maxUploadMemory = 8 << 20

func UploadImage(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "malformed multipart form")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "no file provided")
			return
		}
		defer file.Close()

		section := r.FormValue("type")
		if section == "" {
			section = "projects"
		}
		typ, err := domain.ParseSectionType(section)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid type")
			return
		}

		content, err := io.ReadAll(file)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "could not read file")
			return
		}

		url, err := handler.service.UploadImage(r.Context(), handler.repoConfig(r), typ,
			header.Filename, header.Header.Get("Content-Type"), content)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"url":     url,
		})
	}
}

func DeleteImage(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.URL == "" {
			httputil.RespondError(w, http.StatusBadRequest, "image url is required")
			return
		}

		if err := handler.service.DeleteImage(r.Context(), handler.repoConfig(r), body.URL); err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
