// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleRuntimes handles GET /v1/runtimes
func (s *Server) handleRuntimes(w http.ResponseWriter, r *http.Request) {
	families := make(map[string][]string)
	for _, fam := range s.runtimes.Families() {
		kinds := make([]string, 0, len(fam.Manifests))
		for _, m := range fam.Manifests {
			kinds = append(kinds, m.Kind)
		}
		sort.Strings(kinds)
		families[fam.Alias] = kinds
	}

	resp := map[string]any{
		"runtimes": s.runtimes.KnownContainerRuntimes(),
		"families": families,
	}
	if kind, ok := s.runtimes.DefaultKind(); ok {
		resp["defaultKind"] = kind
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleRuntimeByKind handles GET /v1/runtimes/{kind}
func (s *Server) handleRuntimeByKind(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	manifest, ok := s.runtimes.ResolveDefaultRuntime(kind)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown runtime kind"})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"kind":      manifest.Kind,
		"default":   manifest.Default,
		"image":     manifest.Image.PublicImageName(),
		"stemCells": manifest.StemCells,
	})
}

// handleBlackboxes handles GET /v1/blackboxes
func (s *Server) handleBlackboxes(w http.ResponseWriter, r *http.Request) {
	images := s.runtimes.BlackboxImages()
	names := make([]string, 0, len(images))
	for _, img := range images {
		names = append(names, img.PublicImageName())
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"blackboxes": names})
}


func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}
