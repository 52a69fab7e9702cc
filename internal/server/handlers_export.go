package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/render"
	"github.com/jonathan/resume-builder/internal/types"
)

// TemplatePreview is one rendered template in the gallery response
type TemplatePreview struct {
	Template types.TemplateType `json:"template"`
	HTML     string             `json:"html"`
}

// handlePreview handles GET /resumes/{id}/preview: the document rendered
// with its selected template. The optional ?template= query renders an
// alternative without changing the selection.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()
	tmpl := d.Template
	if q := r.URL.Query().Get("template"); q != "" {
		tmpl = types.TemplateType(q)
		if !tmpl.Valid() {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown template %q", q))
			return
		}
	}

	html, err := render.RenderTemplate(d, tmpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// handlePreviewGallery handles GET /resumes/{id}/previews: the document
// rendered with every built-in template, for the template picker. The
// templates render concurrently.
func (s *Server) handlePreviewGallery(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()

	var mu sync.Mutex
	previews := make([]TemplatePreview, 0, len(types.Templates))

	g, _ := errgroup.WithContext(r.Context())
	for _, tmpl := range types.Templates {
		g.Go(func() error {
			html, err := render.RenderTemplate(d, tmpl)
			if err != nil {
				return fmt.Errorf("render %s: %w", tmpl, err)
			}
			mu.Lock()
			previews = append(previews, TemplatePreview{Template: tmpl, HTML: html})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	// Restore display order; goroutines finish in any order.
	ordered := make([]TemplatePreview, 0, len(previews))
	for _, tmpl := range types.Templates {
		for _, p := range previews {
			if p.Template == tmpl {
				ordered = append(ordered, p)
				break
			}
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"previews": ordered})
}

// handleExportPDF handles GET /resumes/{id}/export/pdf
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()
	pdf, err := s.pdf.PDF(r.Context(), d)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "PDF export failed: "+err.Error())
		return
	}

	filename := export.Filename(d.Title, "pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// handleExportText handles GET /resumes/{id}/export/txt
func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()
	text := export.Text(d)

	filename := export.Filename(d.Title, "txt")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, text)
}

// handleExportDOCX handles GET /resumes/{id}/export/docx. Word export is
// not wired up yet; the endpoint reports that rather than 404 so clients
// can show a "coming soon" notice.
func (s *Server) handleExportDOCX(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.openSession(w, r)
	if !ok {
		return
	}

	d := sess.Store.Snapshot()
	data, err := export.DOCX(d)
	if err != nil {
		if errors.Is(err, export.ErrDOCXNotAvailable) {
			s.errorResponse(w, http.StatusNotImplemented, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "DOCX export failed: "+err.Error())
		return
	}

	filename := export.Filename(d.Title, "docx")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
