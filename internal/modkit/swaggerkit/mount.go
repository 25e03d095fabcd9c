// Package swaggerkit serves the swagger UI and the normalized OpenAPI document
package swaggerkit

import (
	"encoding/json"
	"net/http"

	phttp "pillbox/internal/platform/net/http"
	"pillbox/internal/services/api/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docPath = "/api/docs/doc.json"

// Mount serves the UI under /api/docs/ and the document at /api/docs/doc.json
// disabled mounts nothing
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get(docPath, serveDoc(docs.SwaggerInfo.ReadDoc))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(docPath),
	))
}

// serveDoc renders read() through normalize on every request
func serveDoc(read func() string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(read()), &spec); err != nil {
			http.Error(w, "openapi document is not valid json", http.StatusInternalServerError)
			return
		}
		normalize(spec, "/api/v1")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
