package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sells-group/investor-research/internal/model"
)

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}

type stubResearcher struct {
	result *model.Result
	err    error
	gotNam string
}

func (s *stubResearcher) Run(_ context.Context, name string) (*model.Result, error) {
	s.gotNam = name
	return s.result, s.err
}

func testResult() *model.Result {
	r := &model.Result{
		Profile: model.Profile{Name: "Jane Investor", Firm: "Example Capital"},
	}
	r.Normalize()
	return r
}

func TestHandleHealth(t *testing.T) {
	srv := httptest.NewServer(newRouter(&stubResearcher{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleInvestors(t *testing.T) {
	srv := httptest.NewServer(newRouter(&stubResearcher{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/investors")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["investors"], "Marc Andreessen")
	assert.Contains(t, body["investors"], "Cathie Wood")
	assert.Len(t, body["investors"], 5)
}

func TestHandleMock(t *testing.T) {
	srv := httptest.NewServer(newRouter(&stubResearcher{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/mock")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool          `json:"success"`
		Profile model.Profile `json:"profile"`
		News    []model.NewsItem
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Marc Andreessen", body.Profile.Name)
}

func TestHandleResearch_FormBody(t *testing.T) {
	stub := &stubResearcher{result: testResult()}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/research", url.Values{"investor_name": {"Jane Investor"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Run-ID"))
	assert.Equal(t, "Jane Investor", stub.gotNam)

	var body struct {
		Success bool          `json:"success"`
		Profile model.Profile `json:"profile"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Example Capital", body.Profile.Firm)
}

func TestHandleResearch_JSONBody(t *testing.T) {
	stub := &stubResearcher{result: testResult()}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/research", "application/json",
		strings.NewReader(`{"investor_name":"Jane Investor"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane Investor", stub.gotNam)
}

func TestHandleResearch_NameAlias(t *testing.T) {
	stub := &stubResearcher{result: testResult()}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/research", "application/json",
		strings.NewReader(`{"name":"Jane Investor"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane Investor", stub.gotNam)
}

func TestHandleResearch_MissingName(t *testing.T) {
	srv := httptest.NewServer(newRouter(&stubResearcher{}))
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/research", url.Values{})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "investor_name")
}

func TestHandleResearch_PipelineError(t *testing.T) {
	stub := &stubResearcher{err: eris.New("search unavailable")}
	srv := httptest.NewServer(newRouter(stub))
	defer srv.Close()

	resp, err := http.PostForm(srv.URL+"/research", url.Values{"investor_name": {"Jane Investor"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "search unavailable")
}
