// Copyright (c) 2025 the mensad authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package menu

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/frcl/mensad/pkg/errors"
	"github.com/frcl/mensad/pkg/serializers"
	"github.com/frcl/mensad/pkg/server"
)

// Loader produces the current menu Document. The HTTP service loads a
// fresh Document per request; implementations fetch and parse the upstream
// page.
type Loader interface {
	Load(ctx context.Context) (*Document, error)
}

// Service owns the menu HTTP handlers. Request handling is stateless; the
// only state carried across requests is the timestamp of the last
// successful upstream load, reported on /meta.
type Service struct {
	loader     Loader
	lastUpdate atomic.Pointer[time.Time]
}

// NewService creates a Service backed by the given loader.
func NewService(loader Loader) *Service {
	return &Service{loader: loader}
}

// Routes returns the ServeMux pattern map for this service.
func (s *Service) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /{$}":            s.HandleDefault,
		"GET /help":           s.HandleHelp,
		"GET /meta":           s.HandleMeta,
		"GET /{mensa}":        s.HandleMensa,
		"GET /{mensa}/{line}": s.HandleLine,
	}
}

// HandleDefault serves GET /. Text form shows the default cafeteria; JSON
// form returns the full nested mapping for all cafeterias.
func (s *Service) HandleDefault(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantsJSON(r) {
		serializers.RespondJSON(w, http.StatusOK, doc.AsMap())
		return
	}

	m, ok := doc.Mensa(DefaultMensa)
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeParse,
			"default cafeteria missing from upstream page"))
		return
	}
	serializers.RespondText(w, http.StatusOK, Page(m.Text(), r.Host))
}

// HandleMensa serves GET /{mensa}.
func (s *Service) HandleMensa(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	m, err := s.mensaFor(doc, r.PathValue("mensa"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantsJSON(r) {
		serializers.RespondJSON(w, http.StatusOK, Menu{m.Name: m.AsMap()})
		return
	}
	serializers.RespondText(w, http.StatusOK, Page(m.Text(), r.Host))
}

// HandleLine serves GET /{mensa}/{line}.
func (s *Service) HandleLine(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	m, err := s.mensaFor(doc, r.PathValue("mensa"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	line, err := m.ResolveLine(r.PathValue("line"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantsJSON(r) {
		serializers.RespondJSON(w, http.StatusOK,
			Menu{m.Name: {line.Name: line.Meals}})
		return
	}
	serializers.RespondText(w, http.StatusOK, Page(line.Text(), r.Host))
}

// HandleHelp serves GET /help: ANSI usage text for curl, an HTML variant
// for browsers.
func (s *Service) HandleHelp(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		serializers.RespondHTML(w, http.StatusOK, UsageHTML(r.Host))
		return
	}
	serializers.RespondText(w, http.StatusOK, UsageText(r.Host))
}

// HandleMeta serves GET /meta with the timestamp of the last successful
// upstream load observed by this process.
func (s *Service) HandleMeta(w http.ResponseWriter, _ *http.Request) {
	body := struct {
		LastUpdate *string `json:"last_update"`
	}{}
	if t := s.lastUpdate.Load(); t != nil {
		ts := t.UTC().Format(time.RFC3339)
		body.LastUpdate = &ts
	}
	serializers.RespondJSON(w, http.StatusOK, body)
}

func (s *Service) load(ctx context.Context) (*Document, error) {
	doc, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s.lastUpdate.Store(&now)
	return doc, nil
}

func (s *Service) mensaFor(doc *Document, query string) (*Mensa, error) {
	name, err := ResolveMensa(query)
	if err != nil {
		return nil, err
	}
	m, ok := doc.Mensa(name)
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeParse,
			"cafeteria missing from upstream page",
			map[string]any{"mensa": name})
	}
	return m, nil
}

// writeError maps a structured error onto the response: JSON clients get
// the standard error body, curl clients an ANSI error page. Failures stay
// isolated to the request that hit them.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.CodeOf(err)
	msg := errors.MessageOf(err)
	status := statusFor(code)

	slog.Error("request failed",
		"requestID", server.RequestIDFromContext(r.Context()),
		"path", r.URL.Path,
		"code", code,
		"error", err,
	)

	if wantsJSON(r) {
		server.WriteError(w, r, status, code, msg, retryable(code), nil)
		return
	}
	serializers.RespondText(w, status, Page(ErrorPage(msg), r.Host))
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAmbiguousName, errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeUpstreamUnavailable, errors.ErrCodeParse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func retryable(code errors.ErrorCode) bool {
	return code == errors.ErrCodeUpstreamUnavailable
}
