package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// mockStorage implements Storage in memory for handler tests
type mockStorage struct {
	mu      sync.Mutex
	resumes map[uuid.UUID]*db.Resume
	saves   int
}

func newMockStorage() *mockStorage {
	return &mockStorage{resumes: make(map[uuid.UUID]*db.Resume)}
}

func (m *mockStorage) CreateResume(_ context.Context, d types.ResumeData) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := db.FromResumeData(uuid.New(), d)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	m.resumes[rec.ID] = &rec
	return &rec, nil
}

func (m *mockStorage) GetResume(_ context.Context, id uuid.UUID) (*db.Resume, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.resumes[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (m *mockStorage) SaveResume(_ context.Context, id uuid.UUID, d types.ResumeData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return fmt.Errorf("resume %s not found", id)
	}
	rec := db.FromResumeData(id, d)
	rec.UpdatedAt = time.Now()
	m.resumes[id] = &rec
	m.saves++
	return nil
}

func (m *mockStorage) ListResumes(_ context.Context) ([]db.ResumeSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summaries := make([]db.ResumeSummary, 0, len(m.resumes))
	for _, rec := range m.resumes {
		summaries = append(summaries, db.ResumeSummary{
			ID:        rec.ID,
			Title:     rec.Title,
			Template:  rec.Template,
			UpdatedAt: rec.UpdatedAt,
		})
	}
	return summaries, nil
}

func (m *mockStorage) DeleteResume(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.resumes[id]; !ok {
		return fmt.Errorf("resume %s not found", id)
	}
	delete(m.resumes, id)
	return nil
}

func (m *mockStorage) Close() {}

func (m *mockStorage) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// testServer wraps a Server with its mock storage
type testServer struct {
	*Server
	mock *mockStorage
}

// newTestServer creates a server with mock storage. The autosave debounce
// is long so tests observe saves only where they flush explicitly.
func newTestServer() *testServer {
	mock := newMockStorage()
	s := &Server{
		db:       mock,
		sessions: session.NewManager(mock, time.Hour),
		pdf:      &export.PDFExporter{},
	}
	return &testServer{Server: s, mock: mock}
}

// seed stores a resume and returns its ID
func (ts *testServer) seed(t *testing.T, d types.ResumeData) uuid.UUID {
	t.Helper()
	rec, err := ts.mock.CreateResume(context.Background(), d)
	require.NoError(t, err)
	return rec.ID
}

// do runs one request through the full router
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.routes().ServeHTTP(w, req)
	return w
}

// decodeResume parses the standard editing view from a response
func decodeResume(t *testing.T, w *httptest.ResponseRecorder) ResumeResponse {
	t.Helper()
	var resp ResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestCatalog(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodGet, "/catalog", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Templates    []types.TemplateType `json:"templates"`
		ThemeColors  []types.ThemeColor   `json:"themeColors"`
		FontFamilies []string             `json:"fontFamilies"`
		Steps        []types.StepInfo     `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Templates, 7)
	assert.Len(t, resp.ThemeColors, 12)
	assert.Contains(t, resp.FontFamilies, "IBM Plex Serif")
	assert.Len(t, resp.Steps, 10)
}

func TestCreateResume_Defaults(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodPost, "/resumes", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResume(t, w)
	assert.Equal(t, "My Resume", resp.Resume.Title)
	assert.Equal(t, types.DefaultTemplate, resp.Resume.Template)
	assert.Equal(t, types.StepPersonal, resp.Step)
	assert.NotEmpty(t, resp.Resume.ID)
}

func TestCreateResume_TitleAndTemplate(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodPost, "/resumes", CreateResumeRequest{
		Title:    "Backend Role",
		Template: "classic",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResume(t, w)
	assert.Equal(t, "Backend Role", resp.Resume.Title)
	assert.Equal(t, types.TemplateClassic, resp.Resume.Template)
}

func TestCreateResume_UnknownTemplate(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodPost, "/resumes", CreateResumeRequest{Template: "holographic"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, ts.mock.resumes)
}

func TestListResumes(t *testing.T) {
	ts := newTestServer()
	ts.seed(t, types.Initial())
	ts.seed(t, types.Initial())

	w := ts.do(t, http.MethodGet, "/resumes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Resumes []db.ResumeSummary `json:"resumes"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Resumes, 2)
}

func TestListResumes_Empty(t *testing.T) {
	ts := newTestServer()

	w := ts.do(t, http.MethodGet, "/resumes", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Resumes []db.ResumeSummary `json:"resumes"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Resumes)
}
