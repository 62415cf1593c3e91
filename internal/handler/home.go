package handler

import "net/http"

// HomeHandler serves the service landing page.
type HomeHandler struct {
	renderer *Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(renderer *Renderer) *HomeHandler {
	return &HomeHandler{renderer: renderer}
}

// Show handles GET /. Unknown paths fall through to a not-found page.
func (h *HomeHandler) Show(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		h.renderer.RenderHTTP(w, "error", map[string]any{
			"Title":   "Page not found",
			"Message": "If you typed the web address, check it is correct.",
			"Status":  http.StatusNotFound,
		})
		return
	}

	h.renderer.RenderHTTP(w, "home", map[string]any{
		"Title": "Submit a bulk claim",
	})
}
