package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mmark3273/sibur/internal/dto"
	"github.com/mmark3273/sibur/internal/service"
	"github.com/mmark3273/sibur/internal/timegrid"
	"github.com/mmark3273/sibur/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

type mockUploadService struct {
	ingestResult *dto.UploadResponse
	ingestErr    error
	metaResult   *dto.MetaResponse
	metaErr      error
}

func (m *mockUploadService) Ingest(_ context.Context, _ string, _ io.Reader) (*dto.UploadResponse, error) {
	return m.ingestResult, m.ingestErr
}
func (m *mockUploadService) Meta(_ context.Context) (*dto.MetaResponse, error) {
	return m.metaResult, m.metaErr
}

type mockGridService struct {
	result  *timegrid.Grid
	err     error
	lastReq *dto.GridRequest
}

func (m *mockGridService) GetGrid(_ context.Context, req *dto.GridRequest) (*timegrid.Grid, error) {
	m.lastReq = req
	return m.result, m.err
}

type mockMarkService struct {
	err     error
	lastReq *dto.MarkRequest
}

func (m *mockMarkService) Write(_ context.Context, req *dto.MarkRequest) error {
	m.lastReq = req
	return m.err
}

type mockDirectoryService struct {
	listResult *dto.DirectoryListResponse
	listErr    error
	upsertErr  error
	deleteErr  error
	deleted    string
}

func (m *mockDirectoryService) List(_ context.Context) (*dto.DirectoryListResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockDirectoryService) Upsert(_ context.Context, _ *dto.DirectoryUpsertRequest) error {
	return m.upsertErr
}
func (m *mockDirectoryService) Delete(_ context.Context, plate string) error {
	m.deleted = plate
	return m.deleteErr
}

type mockPaletteService struct {
	result *dto.PaletteResponse
	err    error
}

func (m *mockPaletteService) Get(_ context.Context) (*dto.PaletteResponse, error) {
	return m.result, m.err
}
func (m *mockPaletteService) Save(_ context.Context, _ *dto.PaletteRequest) (*dto.PaletteResponse, error) {
	return m.result, m.err
}
func (m *mockPaletteService) Reset(_ context.Context) (*dto.PaletteResponse, error) {
	return m.result, m.err
}

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) Export(_ context.Context, _ *dto.GridRequest) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func multipartFile(t *testing.T, field, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(content)
	mw.Close()
	return buf, mw.FormDataContentType()
}

// ═══════════════════════════════════════════════════════════
// UploadHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUploadHandler_Upload_Success(t *testing.T) {
	mock := &mockUploadService{
		ingestResult: &dto.UploadResponse{UploadID: 7, Filename: "requests.xlsx", RowCount: 3},
	}
	h := NewUploadHandler(mock)

	body, contentType := multipartFile(t, "file", "requests.xlsx", []byte("xlsx-bytes"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	r := gin.New()
	r.POST("/uploads", h.Upload)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	h := NewUploadHandler(&mockUploadService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", strings.NewReader("no file here"))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/uploads", h.Upload)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestUploadHandler_Upload_ParseError(t *testing.T) {
	mock := &mockUploadService{ingestErr: service.ErrUploadParse}
	h := NewUploadHandler(mock)

	body, contentType := multipartFile(t, "file", "broken.xlsx", []byte("not a workbook"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/uploads", body)
	req.Header.Set("Content-Type", contentType)

	r := gin.New()
	r.POST("/uploads", h.Upload)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestUploadHandler_Meta(t *testing.T) {
	mock := &mockUploadService{metaResult: &dto.MetaResponse{HasData: false}}
	h := NewUploadHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/meta", nil)

	r := gin.New()
	r.GET("/meta", h.Meta)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// GridHandler Tests
// ═══════════════════════════════════════════════════════════

func TestGridHandler_GetGrid_Success(t *testing.T) {
	mock := &mockGridService{result: &timegrid.Grid{Day: "2026-02-09", Slots: timegrid.Slots()}}
	h := NewGridHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/grid?day=2026-02-09&upload_id=3", nil)

	r := gin.New()
	r.GET("/grid", h.GetGrid)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastReq == nil || mock.lastReq.Day != "2026-02-09" {
		t.Fatalf("day not bound: %+v", mock.lastReq)
	}
	if mock.lastReq.UploadID == nil || *mock.lastReq.UploadID != 3 {
		t.Errorf("upload_id not bound: %+v", mock.lastReq.UploadID)
	}
}

func TestGridHandler_GetGrid_MissingDay(t *testing.T) {
	h := NewGridHandler(&mockGridService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/grid", nil)

	r := gin.New()
	r.GET("/grid", h.GetGrid)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 10001 {
		t.Errorf("expected error code 10001, got %d", resp.Code)
	}
}

func TestGridHandler_GetGrid_NoData(t *testing.T) {
	mock := &mockGridService{err: service.ErrNoData}
	h := NewGridHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/grid?day=2026-02-09", nil)

	r := gin.New()
	r.GET("/grid", h.GetGrid)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12003 {
		t.Errorf("expected error code 12003, got %d", resp.Code)
	}
}

func TestGridHandler_GetGrid_BadDay(t *testing.T) {
	mock := &mockGridService{err: service.ErrBadDay}
	h := NewGridHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/grid?day=bogus", nil)

	r := gin.New()
	r.GET("/grid", h.GetGrid)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 12001 {
		t.Errorf("expected error code 12001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// MarkHandler Tests
// ═══════════════════════════════════════════════════════════

func TestMarkHandler_WriteMark_Success(t *testing.T) {
	mock := &mockMarkService{}
	h := NewMarkHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/marks", jsonBody(dto.MarkRequest{
		Day: "2026-02-09", Plate: "А111АА", Kind: "fact", Slot: "07:00", Value: 1,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/marks", h.WriteMark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.lastReq == nil || mock.lastReq.Slot != "07:00" {
		t.Fatalf("request not forwarded: %+v", mock.lastReq)
	}
}

func TestMarkHandler_WriteMark_BadJSON(t *testing.T) {
	h := NewMarkHandler(&mockMarkService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/marks", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/marks", h.WriteMark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestMarkHandler_WriteMark_InvalidSlot(t *testing.T) {
	mock := &mockMarkService{err: service.ErrInvalidSlot}
	h := NewMarkHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/marks", jsonBody(dto.MarkRequest{
		Day: "2026-02-09", Plate: "А111АА", Kind: "fact", Slot: "07:10", Value: 1,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/marks", h.WriteMark)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 13002 {
		t.Errorf("expected error code 13002, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// DirectoryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestDirectoryHandler_List(t *testing.T) {
	mock := &mockDirectoryService{
		listResult: &dto.DirectoryListResponse{Items: []dto.DirectoryEntryResponse{
			{VehiclePlate: "А111АА", ScheduleText: "5/2"},
		}},
	}
	h := NewDirectoryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/directory", nil)

	r := gin.New()
	r.GET("/directory", h.ListDirectory)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestDirectoryHandler_Upsert_MissingPlate(t *testing.T) {
	h := NewDirectoryHandler(&mockDirectoryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/directory", jsonBody(map[string]string{"schedule_text": "5/2"}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/directory", h.UpsertDirectory)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestDirectoryHandler_Delete(t *testing.T) {
	mock := &mockDirectoryService{}
	h := NewDirectoryHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/directory/%D0%90111%D0%90%D0%90", nil)

	r := gin.New()
	r.DELETE("/directory/:plate", h.DeleteDirectory)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.deleted != "А111АА" {
		t.Errorf("expected plate А111АА, got %q", mock.deleted)
	}
}

// ═══════════════════════════════════════════════════════════
// PaletteHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPaletteHandler_Get(t *testing.T) {
	mock := &mockPaletteService{result: &dto.PaletteResponse{Accent: "#55b4c7"}}
	h := NewPaletteHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/palette", nil)

	r := gin.New()
	r.GET("/palette", h.GetPalette)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPaletteHandler_Save_BadJSON(t *testing.T) {
	h := NewPaletteHandler(&mockPaletteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/palette", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/palette", h.SavePalette)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Export_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-bytes"),
		filename: "export_2026-02-09.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export?day=2026-02-09", nil)

	r := gin.New()
	r.GET("/export", h.Export)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "export_2026-02-09.xlsx") {
		t.Errorf("unexpected Content-Disposition %q", disposition)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("unexpected Content-Type %q", got)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Errorf("body not streamed: %q", w.Body.String())
	}
}

func TestExportHandler_Export_NoData(t *testing.T) {
	mock := &mockExportService{err: service.ErrNoData}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export?day=2026-02-09", nil)

	r := gin.New()
	r.GET("/export", h.Export)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
