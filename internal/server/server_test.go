package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/billfold/internal/config"
	estimatedomain "github.com/smallbiznis/billfold/internal/estimate/domain"
	invoicedomain "github.com/smallbiznis/billfold/internal/invoice/domain"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubInvoiceService struct {
	invoicedomain.Service
	getErr  error
	view    invoicedomain.InvoiceView
	updated *invoicedomain.UpdateInvoiceRequest
}

func (s stubInvoiceService) GetByID(ctx context.Context, id string) (invoicedomain.InvoiceView, error) {
	if s.getErr != nil {
		return invoicedomain.InvoiceView{}, s.getErr
	}
	return s.view, nil
}

func (s stubInvoiceService) List(ctx context.Context, filter invoicedomain.Filter) (invoicedomain.ListInvoiceResponse, error) {
	return invoicedomain.ListInvoiceResponse{Invoices: []invoicedomain.InvoiceView{s.view}}, nil
}

func (s stubInvoiceService) Update(ctx context.Context, id string, req invoicedomain.UpdateInvoiceRequest) (invoicedomain.InvoiceView, error) {
	if s.updated != nil {
		*s.updated = req
	}
	return s.view, nil
}

type stubEstimateService struct {
	estimatedomain.Service
	acceptErr error
	updated   *estimatedomain.UpdateEstimateRequest
}

func (s stubEstimateService) Update(ctx context.Context, id string, req estimatedomain.UpdateEstimateRequest) (estimatedomain.Estimate, error) {
	if s.updated != nil {
		*s.updated = req
	}
	return estimatedomain.Estimate{ID: id, Status: estimatedomain.StatusDraft}, nil
}

func (s stubEstimateService) Accept(ctx context.Context, id string) (estimatedomain.Estimate, error) {
	if s.acceptErr != nil {
		return estimatedomain.Estimate{}, s.acceptErr
	}
	return estimatedomain.Estimate{ID: id, Status: estimatedomain.StatusAccepted}, nil
}

func newTestServer(t *testing.T, invoiceSvc invoicedomain.Service, estimateSvc estimatedomain.Service) *gin.Engine {
	t.Helper()

	srv := &Server{
		cfg:         config.Config{},
		log:         zap.NewNop(),
		invoiceSvc:  invoiceSvc,
		estimateSvc: estimateSvc,
	}
	engine := gin.New()
	srv.RegisterRoutes(engine)
	return engine
}

func TestHealthz(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestGetInvoiceNotFound(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{getErr: invoicedomain.ErrInvoiceNotFound}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-missing", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Error.Code != invoicedomain.ErrInvoiceNotFound.Error() {
		t.Fatalf("error code = %q, want %q", body.Error.Code, invoicedomain.ErrInvoiceNotFound.Error())
	}
}

func TestGetInvoiceIncludesDerivedStatus(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{view: invoicedomain.InvoiceView{
		Invoice: invoicedomain.Invoice{ID: "inv-1", Number: "INV-2026-0001", Total: 100},
		Status:  invoicedomain.StatusSent,
	}}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices/inv-1", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["status"] != string(invoicedomain.StatusSent) {
		t.Fatalf("status field = %v, want %q", body["status"], invoicedomain.StatusSent)
	}
}

func TestListInvoicesPagination(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{view: invoicedomain.InvoiceView{
		Invoice: invoicedomain.Invoice{ID: "inv-1"},
		Status:  invoicedomain.StatusDraft,
	}}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices?page_size=10", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Invoices []json.RawMessage `json:"invoices"`
		PageInfo struct {
			TotalSize int `json:"total_size"`
		} `json:"page_info"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(body.Invoices) != 1 || body.PageInfo.TotalSize != 1 {
		t.Fatalf("got %d invoices, total_size %d, want 1 and 1", len(body.Invoices), body.PageInfo.TotalSize)
	}
}

func TestListInvoicesRejectsBadDate(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/invoices?date_from=not-a-date", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAcceptEstimateConflict(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{}, stubEstimateService{acceptErr: estimatedomain.ErrInvalidTransition})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/estimates/est-1/accept", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestUpdateInvoiceKeepsLineItemsWhenOmitted(t *testing.T) {
	var captured invoicedomain.UpdateInvoiceRequest
	engine := newTestServer(t, stubInvoiceService{updated: &captured}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/inv-1", strings.NewReader(`{"notes":"updated"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if captured.LineItems != nil {
		t.Fatalf("LineItems = %v, want nil when the body omits line_items", captured.LineItems)
	}
	if captured.Notes == nil || *captured.Notes != "updated" {
		t.Fatalf("Notes = %v, want \"updated\"", captured.Notes)
	}
}

func TestUpdateInvoiceClearsLineItemsWhenEmpty(t *testing.T) {
	var captured invoicedomain.UpdateInvoiceRequest
	engine := newTestServer(t, stubInvoiceService{updated: &captured}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/invoices/inv-1", strings.NewReader(`{"line_items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if captured.LineItems == nil || len(captured.LineItems) != 0 {
		t.Fatalf("LineItems = %v, want an explicit empty set", captured.LineItems)
	}
}

func TestUpdateEstimateKeepsLineItemsWhenOmitted(t *testing.T) {
	var captured estimatedomain.UpdateEstimateRequest
	engine := newTestServer(t, stubInvoiceService{}, stubEstimateService{updated: &captured})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/estimates/est-1", strings.NewReader(`{"notes":"updated"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if captured.LineItems != nil {
		t.Fatalf("LineItems = %v, want nil when the body omits line_items", captured.LineItems)
	}
	if captured.Notes == nil || *captured.Notes != "updated" {
		t.Fatalf("Notes = %v, want \"updated\"", captured.Notes)
	}
}

func TestCreateInvoiceRejectsBadBody(t *testing.T) {
	engine := newTestServer(t, stubInvoiceService{}, stubEstimateService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
