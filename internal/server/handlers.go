package server

import (
	"bytes"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/cokomi/timeline/pkg/timeline"
)

type indexModel struct {
	Title    string
	Snapshot timeline.Snapshot
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	model := indexModel{
		Title:    s.opts.Title,
		Snapshot: s.dash.Snapshot(s.selected(r)),
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", model); err != nil {
		s.opts.Logger.Error("render dashboard", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(appCSS)
}

type healthResponse struct {
	Status string `json:"status"`
	Steps  int    `json:"steps"`
	Source string `json:"source,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Steps:  s.dash.Len(),
		Source: s.dash.Source(),
	})
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dash.Sections())
}

func (s *Server) handleSteps(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dash.Snapshot(s.selected(r)).Filtered)
}

func (s *Server) handleGroups(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dash.Snapshot(s.selected(r)).Groups)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dash.Progress())
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.dash.Snapshot(s.selected(r)))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		s.opts.Logger.Error("encode response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
