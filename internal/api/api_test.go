package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/partscout/partscout/pkg/resolve"
	"github.com/partscout/partscout/pkg/similarity"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	eng, err := resolve.New(resolve.Options{})
	if err != nil {
		t.Fatalf("resolve.New() = %v", err)
	}
	router := NewRouter(eng, similarity.New(eng), log.New(io.Discard))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %s", body)
	}
}

func TestClassify(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/v1/classify?mpn=STM32F103C8T6")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var c classification
	if err := json.Unmarshal(body, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c.ManufacturerID != "st" {
		t.Errorf("manufacturer_id = %s, want st", c.ManufacturerID)
	}
	if c.Type != "stm32_mcu" {
		t.Errorf("type = %s, want stm32_mcu", c.Type)
	}
	if c.Package != "LQFP48" {
		t.Errorf("package = %s, want LQFP48", c.Package)
	}
	if !c.Classified {
		t.Error("classified = false")
	}
}

func TestClassifyUnknownDegrades(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/v1/classify?mpn=ZZZZZZ99")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (unknown is an answer, not an error)", resp.StatusCode)
	}

	var c classification
	if err := json.Unmarshal(body, &c); err != nil {
		t.Fatal(err)
	}
	if c.ManufacturerID != "unknown" || c.Classified {
		t.Errorf("unknown part classified as %s/%s", c.ManufacturerID, c.Type)
	}
}

func TestClassifyRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/v1/classify")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		t.Fatal(err)
	}
	if e.Code != "INVALID_MPN" {
		t.Errorf("code = %s, want INVALID_MPN", e.Code)
	}
}

func TestClassifyBatch(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/v1/classify", "application/json",
		strings.NewReader(`["LM358N", "1N4148", "W25Q64FV"]`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var batch batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		t.Fatal(err)
	}
	if batch.ID == "" {
		t.Error("batch response missing report id")
	}
	if batch.Count != 3 || len(batch.Items) != 3 {
		t.Fatalf("count = %d, items = %d, want 3", batch.Count, len(batch.Items))
	}
	if batch.Items[0].ManufacturerID != "ti" {
		t.Errorf("LM358N manufacturer = %s, want ti", batch.Items[0].ManufacturerID)
	}
	if batch.Items[1].ManufacturerID != "vishay" {
		t.Errorf("1N4148 manufacturer = %s, want vishay", batch.Items[1].ManufacturerID)
	}
}

func TestClassifyBatchRejectsBadBody(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{`{"not":"a list"}`, `[]`, `["` + strings.Repeat("A", 80) + `"]`} {
		resp, err := srv.Client().Post(srv.URL+"/v1/classify", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, resp.StatusCode)
		}
	}
}

func TestManufacturers(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/v1/manufacturers?mpn=IRF530")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var candidates []candidate
	if err := json.Unmarshal(body, &candidates); err != nil {
		t.Fatal(err)
	}
	if len(candidates) < 2 {
		t.Fatalf("got %d candidates, want at least 2", len(candidates))
	}
	if candidates[0].ManufacturerID != "infineon" || candidates[0].Confidence != "HIGH" {
		t.Errorf("first candidate = %s/%s, want infineon/HIGH",
			candidates[0].ManufacturerID, candidates[0].Confidence)
	}
}

func TestSimilarity(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/v1/similarity?a=LM7805&b=MC7805")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var sim similarityResponse
	if err := json.Unmarshal(body, &sim); err != nil {
		t.Fatal(err)
	}
	if sim.Score <= 0.7 {
		t.Errorf("score = %v, want > 0.7", sim.Score)
	}
	if sim.A != "LM7805" || sim.B != "MC7805" {
		t.Errorf("echoed MPNs = %s/%s", sim.A, sim.B)
	}

	resp, _ = get(t, srv, "/v1/similarity?a=LM7805")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing b: status = %d, want 400", resp.StatusCode)
	}
}
