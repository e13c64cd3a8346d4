package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/edcviet/invoicegen/internal/cache"
	"github.com/edcviet/invoicegen/internal/clock"
	"github.com/edcviet/invoicegen/internal/config"
	"github.com/edcviet/invoicegen/internal/invoice/domain"
	"github.com/edcviet/invoicegen/internal/invoice/export"
	"github.com/edcviet/invoicegen/internal/invoice/render"
	"github.com/edcviet/invoicegen/internal/invoice/service"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	cfg := config.Config{
		Addr:        ":0",
		Environment: "test",
		DraftTTL:    time.Hour,
	}
	svc := service.NewService(service.Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.FixedClock{At: time.Date(2025, time.April, 18, 9, 0, 0, 0, time.UTC)},
		Store:    cache.NewSessionStore[snowflake.ID, domain.Draft](cfg.DraftTTL),
		Renderer: render.NewRenderer(),
		Exporter: export.NewPDFExporter(),
	})

	srv := NewServer(Params{Cfg: cfg, Log: zap.NewNop(), InvoiceSvc: svc})
	engine := gin.New()
	registerRoutes(engine, srv)
	return engine
}

type draftEnvelope struct {
	Data domain.DraftView `json:"data"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func createDraft(t *testing.T, engine *gin.Engine) domain.DraftView {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/invoices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("create draft status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env draftEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func decodeDraft(t *testing.T, rec *httptest.ResponseRecorder) domain.DraftView {
	t.Helper()
	var env draftEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestCreateAndGetDraft(t *testing.T) {
	engine := newTestEngine(t)
	created := createDraft(t, engine)

	if created.Invoice.Currency != "VND" {
		t.Fatalf("currency = %q, want VND", created.Invoice.Currency)
	}
	if len(created.Invoice.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(created.Invoice.Items))
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/invoices/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	got := decodeDraft(t, rec)
	if got.ID != created.ID {
		t.Fatalf("id = %q, want %q", got.ID, created.ID)
	}
	if got.Display.IssueDate != "April 18, 2025" {
		t.Fatalf("display issue date = %q", got.Display.IssueDate)
	}
}

func TestCreateDraftWithCurrency(t *testing.T) {
	engine := newTestEngine(t)
	rec := doJSON(t, engine, http.MethodPost, "/api/invoices", `{"currency":"usd"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decodeDraft(t, rec).Invoice.Currency; got != "USD" {
		t.Fatalf("currency = %q, want USD", got)
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/invoices", `{"currency":"XYZ"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetDraftErrors(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/api/invoices/not-a-snowflake", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid id status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodGet, "/api/invoices/1234567890123456789", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing draft status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "draft_not_found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestFieldEditEndpoints(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/business", `{"field":"name","value":"EDC Viet"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("business status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decodeDraft(t, rec).Invoice.Business.Name; got != "EDC Viet" {
		t.Fatalf("business name = %q", got)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/client", `{"field":"facebook","value":"fb.com/acme"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("client status = %d", rec.Code)
	}
	if got := decodeDraft(t, rec).Invoice.Client.Facebook; got != "fb.com/acme" {
		t.Fatalf("client facebook = %q", got)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/payment", `{"field":"method","value":"cod"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("payment status = %d", rec.Code)
	}
	if got := decodeDraft(t, rec).Invoice.Payment.Method; got != domain.MethodCashOnDelivery {
		t.Fatalf("payment method = %q", got)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/delivery", `{"field":"tracking_number","value":"VN123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("delivery status = %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/business", `{"field":"bogus","value":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/business", `{"value":"x"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing field status = %d, want 400", rec.Code)
	}
}

func TestItemEndpointsRecomputeTotal(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodPatch, "/api/invoices/"+draft.ID+"/items/0", `{"field":"price","value":"60,000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("item status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := decodeDraft(t, rec).Display.Total; got != "₫60,000" {
		t.Fatalf("total = %q", got)
	}

	rec = doJSON(t, engine, http.MethodPost, "/api/invoices/"+draft.ID+"/items", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("add item status = %d", rec.Code)
	}
	if got := len(decodeDraft(t, rec).Invoice.Items); got != 2 {
		t.Fatalf("items = %d, want 2", got)
	}

	rec = doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/discount", `{"discount":"15000"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("discount status = %d", rec.Code)
	}
	if got := decodeDraft(t, rec).Display.Total; got != "₫45,000" {
		t.Fatalf("total after discount = %q", got)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/invoices/"+draft.ID+"/items/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("remove status = %d", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/invoices/"+draft.ID+"/items/0", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("remove last status = %d, want 409", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/invoices/"+draft.ID+"/items/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad index status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, "/api/invoices/"+draft.ID+"/items/9", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("out of range status = %d, want 400", rec.Code)
	}
}

func TestCurrencyAndDatesEndpoints(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/currency", `{"currency":"USD"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("currency status = %d", rec.Code)
	}
	if got := decodeDraft(t, rec).Invoice.Currency; got != "USD" {
		t.Fatalf("currency = %q", got)
	}

	rec = doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/currency", `{"currency":"ZZZ"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad currency status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/dates", `{"issue_date":"2025-05-01","due_date":"2025-05-15"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("dates status = %d", rec.Code)
	}
	got := decodeDraft(t, rec)
	if got.Invoice.DueDate != "2025-05-15" {
		t.Fatalf("due date = %q", got.Invoice.DueDate)
	}
	if got.Display.DueDate != "May 15, 2025" {
		t.Fatalf("display due date = %q", got.Display.DueDate)
	}

	rec = doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/dates", `{"issue_date":"garbage","due_date":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date status = %d, want 400", rec.Code)
	}
}

func TestSetNumberEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodPut, "/api/invoices/"+draft.ID+"/number", `{"number":"INV-2025-0042"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("number status = %d", rec.Code)
	}
	if got := decodeDraft(t, rec).Invoice.Number; got != "INV-2025-0042" {
		t.Fatalf("number = %q", got)
	}
}

func TestPreviewEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/invoices/"+draft.ID+"/preview", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("preview status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "TOTAL AMOUNT DUE") {
		t.Fatalf("preview missing total section")
	}

	// First render assigned a number; it shows up on subsequent reads.
	getRec := doJSON(t, engine, http.MethodGet, "/api/invoices/"+draft.ID, "")
	if got := decodeDraft(t, getRec).Invoice.Number; !strings.HasPrefix(got, "INV-Q") {
		t.Fatalf("number = %q, want INV-Q prefix", got)
	}
}

func TestDownloadEndpoint(t *testing.T) {
	engine := newTestEngine(t)
	draft := createDraft(t, engine)

	rec := doJSON(t, engine, http.MethodGet, "/api/invoices/"+draft.ID+"/download", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("download status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".pdf") {
		t.Fatalf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a pdf")
	}
}

func TestHealthz(t *testing.T) {
	engine := newTestEngine(t)
	rec := doJSON(t, engine, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rec.Code)
	}
}
