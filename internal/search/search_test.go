package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
)

type fakeFinder struct {
	items []models.Product
}

func (f *fakeFinder) SearchProducts(_ context.Context, q string, offset, limit int) (int64, []models.Product, error) {
	var out []models.Product
	for _, p := range f.items {
		if strings.Contains(p.NameAr, q) {
			out = append(out, p)
		}
	}
	return int64(len(out)), out, nil
}

func TestDBSearcher_ReturnsIDs(t *testing.T) {
	s := &DBSearcher{Repo: &fakeFinder{items: []models.Product{
		{Base: models.Base{ID: "1"}, NameAr: "هاتف ذكي"},
		{Base: models.Base{ID: "2"}, NameAr: "ثلاجة"},
	}}}

	total, ids, err := s.Search(context.Background(), "هاتف", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"1"}, ids)
	assert.NoError(t, s.Index(context.Background(), &models.Product{}))
	assert.NoError(t, s.Remove(context.Background(), "1"))
}

type fakeES struct {
	mu       sync.Mutex
	indexed  map[string]map[string]any
	lastBody map[string]any
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"name":"test","cluster_name":"test","version":{"number":"9.0.0","build_flavor":"default"},"tagline":"You Know, for Search"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		f.lastBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":2,"relation":"eq"},"hits":[{"_id":"p2"},{"_id":"p1"}]}}`)
	case strings.HasPrefix(r.URL.Path, "/products/_doc/") && r.Method == http.MethodPut:
		id := strings.TrimPrefix(r.URL.Path, "/products/_doc/")
		doc := map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&doc)
		f.indexed[id] = doc
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	case strings.HasPrefix(r.URL.Path, "/products/_doc/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/products/_doc/")
		if _, ok := f.indexed[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"result":"not_found"}`)
			return
		}
		delete(f.indexed, id)
		_, _ = io.WriteString(w, `{"result":"deleted"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{}`)
	}
}

func TestESSearcher_IndexSearchRemove(t *testing.T) {
	fake := &fakeES{indexed: map[string]map[string]any{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	ctx := context.Background()
	s, err := NewESSearcher(ctx, ESConfig{URL: srv.URL})
	require.NoError(t, err)

	name := "Phone"
	require.NoError(t, s.Index(ctx, &models.Product{Base: models.Base{ID: "p1"}, NameAr: "هاتف", NameEn: &name, IsActive: true}))
	fake.mu.Lock()
	assert.Equal(t, "هاتف", fake.indexed["p1"]["nameAr"])
	assert.Equal(t, "Phone", fake.indexed["p1"]["nameEn"])
	fake.mu.Unlock()

	total, ids, err := s.Search(ctx, "phone", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{"p2", "p1"}, ids)

	fake.mu.Lock()
	boolQ := fake.lastBody["query"].(map[string]any)["bool"].(map[string]any)
	mm := boolQ["must"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "phone", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
	fake.mu.Unlock()

	require.NoError(t, s.Remove(ctx, "p1"))
	require.NoError(t, s.Remove(ctx, "missing"))
}
