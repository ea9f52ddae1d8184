package observability

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
)

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/blog", nil)
	req.Header.Set(httpx.RequestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	logLine := buffer.String()
	for _, marker := range []string{`"method":"GET"`, `"path":"/blog"`, `"status":204`, `"request_id":"req-123"`} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	logLine := buffer.String()
	for _, marker := range []string{`"status":200`, `"bytes":2`, `"latency":`} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
}

func TestRequestLoggerAttachesContextLogger(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := RequestLogger(zerolog.New(&buffer))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		httpx.LoggerFor(r).Warn().Msg("inside handler")
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(httpx.RequestIDHeader, "req-9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !strings.Contains(buffer.String(), `"request_id":"req-9","message":"inside handler"`) {
		t.Fatalf("log = %q, want handler line with request id", buffer.String())
	}
}

func TestTraceStartsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	var spanCtx trace.SpanContext
	h := traceWith(provider.Tracer(TracerName))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		spanCtx = trace.SpanContextFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/blog", nil))

	if !spanCtx.IsValid() {
		t.Fatal("handler context has no span")
	}
	spans := recorder.Ended()
	if len(spans) != 1 || spans[0].Name() != "GET /blog" || spans[0].SpanKind() != trace.SpanKindServer {
		t.Fatalf("spans = %+v", spans)
	}
}
