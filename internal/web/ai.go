package web

import (
	"net/http"

	"gitfolio/internal/httputil"
)

// Describe drafts a project description from the title and notes. The
// endpoint exists only when an API key is configured; otherwise it reports
// the feature as unavailable.
func Describe(handler *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := httputil.DecodeJSON(r, &body); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if body.Title == "" {
			httputil.RespondError(w, http.StatusBadRequest, "title is required")
			return
		}

		description, err := handler.AI.DescribeProject(r.Context(), body.Title, body.Content)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, map[string]string{"description": description})
	}
}
