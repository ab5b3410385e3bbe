package web

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/evcraddock/rems/internal/mockdata"
	"github.com/evcraddock/rems/internal/overview"
)

type navLink struct {
	Label string
	Href  string
}

type indexData struct {
	DashboardURL string
}

type dashboardData struct {
	Nav          []navLink
	DashboardURL string
	GeneratedAt  time.Time
	Summary      overview.Summary
	Data         *mockdata.Dataset
}

// navLinks returns the sidebar entries, one per entity collection.
func navLinks() []navLink {
	links := []navLink{{Label: "Overview", Href: "/dashboard"}}
	for _, t := range mockdata.Types() {
		links = append(links, navLink{Label: t.Label(), Href: "/api/data?type=" + string(t)})
	}
	return links
}

// handleIndex renders the landing page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, "index.html", indexData{DashboardURL: s.cfg.DashboardURL})
}

// handleDashboard renders the overview for a freshly generated dataset.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ds, now := s.dataset()
	s.render(w, "dashboard.html", dashboardData{
		Nav:          navLinks(),
		DashboardURL: s.cfg.DashboardURL,
		GeneratedAt:  now,
		Summary:      overview.Summarize(ds, now),
		Data:         ds,
	})
}

// render executes the named template into a buffer so a failed render
// never leaves a partial page.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("writing page", "template", name, "error", err)
	}
}
