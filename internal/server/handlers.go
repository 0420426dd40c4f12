package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/scriptwatch/exporter.git/internal/customerrors"
)

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	samples := s.metrics.Snapshot()

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)

	html := `<html><head><title>Script Exporter</title></head><body>
             <h1>Current samples</h1>
             <table border="1">
             <tr><th>Component</th><th>Process</th><th>Application</th><th>Env</th><th>Domain</th><th>Type</th><th>Value</th></tr>`

	for _, sample := range samples {
		html += fmt.Sprintf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			sample.Component, sample.ProcessName, sample.ApplicationName,
			sample.Env, sample.DomainName, sample.MonType,
			strconv.FormatFloat(sample.Value, 'f', -1, 64))
	}

	html += "</table></body></html>"
	w.Write([]byte(html))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	customerrors.WriteError(w, http.StatusNotFound, "")
}
