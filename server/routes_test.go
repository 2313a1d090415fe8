package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/7blacky7/godaal/algorithms/all"
	"github.com/7blacky7/godaal/algorithms/neuralnetworks/layers/elu"
	"github.com/7blacky7/godaal/api"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/native"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return NewServer(native.NewTable(0), "table")
}

func serve(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&b).Encode(body))
	}

	req := httptest.NewRequest(method, path, &b)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestVersionHandler(t *testing.T) {
	w := serve(t, newTestServer().GenerateRoutes(), http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.VersionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "table", resp.Backend)
	assert.Equal(t, native.TableVersion, resp.Native)
}

func TestFamilyHandlers(t *testing.T) {
	h := newTestServer().GenerateRoutes()

	t.Run("list", func(t *testing.T) {
		w := serve(t, h, http.MethodGet, "/api/families", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.FamiliesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		names := make([]string, len(resp.Families))
		for i, f := range resp.Families {
			names[i] = f.Name
		}
		assert.Contains(t, names, "neuralnetworks/layers.InputLayout")
	})

	t.Run("show", func(t *testing.T) {
		w := serve(t, h, http.MethodGet, "/api/family/neuralnetworks/layers/dropout.LayerDataID", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var f daal.Family
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
		assert.Equal(t, []daal.Member{{Name: "AuxRetainMask", Code: 2}}, f.Members)
	})

	t.Run("unknown", func(t *testing.T) {
		w := serve(t, h, http.MethodGet, "/api/family/neuralnetworks/layers/dropout.LayerDataId", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "did you mean")
	})
}

func TestKindHandlers(t *testing.T) {
	h := newTestServer().GenerateRoutes()

	w := serve(t, h, http.MethodGet, "/api/kinds/"+string(elu.Kind), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info daal.KindInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, elu.Kind, info.Name)
	assert.Equal(t, []daal.Precision{daal.DoublePrecision, daal.SinglePrecision}, info.Precisions)
	assert.Contains(t, w.Body.String(), `"double"`)

	w = serve(t, h, http.MethodGet, "/api/kinds/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, h, http.MethodGet, "/api/kinds", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp api.KindsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Kinds, len(daal.Kinds()))
}

func TestProbeHandler(t *testing.T) {
	t.Run("selected", func(t *testing.T) {
		w := serve(t, newTestServer().GenerateRoutes(), http.MethodPost, "/api/probe",
			api.ProbeRequest{Kinds: []string{string(elu.Kind)}, Parallel: 2})
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ProbeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Outcomes, 2)
		assert.Zero(t, resp.Failed)
		assert.Equal(t, "table", resp.Backend)
		for _, o := range resp.Outcomes {
			assert.Len(t, o.Companions, 2)
		}
	})

	t.Run("precision", func(t *testing.T) {
		tbl := native.NewTable(0)
		w := serve(t, NewServer(tbl, "table").GenerateRoutes(), http.MethodPost, "/api/probe",
			api.ProbeRequest{Kinds: []string{string(elu.Kind)}, Precision: "single"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ProbeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Outcomes, 1)
		assert.Equal(t, "single", resp.Outcomes[0].Precision)
		assert.Equal(t, 1, tbl.Calls(native.OpInit), "double darf nicht konstruiert werden")

		w = serve(t, NewServer(tbl, "table").GenerateRoutes(), http.MethodPost, "/api/probe",
			api.ProbeRequest{Precision: "half"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		w := serve(t, newTestServer().GenerateRoutes(), http.MethodPost, "/api/probe", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ProbeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Outcomes)
		assert.Zero(t, resp.Failed)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := serve(t, newTestServer().GenerateRoutes(), http.MethodPost, "/api/probe",
			api.ProbeRequest{Kinds: []string{"neural_networks.layers.elu.Btach"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), string(elu.Kind))
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/probe", strings.NewReader("{"))
		w := httptest.NewRecorder()
		newTestServer().GenerateRoutes().ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no library", func(t *testing.T) {
		s := &Server{}
		w := serve(t, s.GenerateRoutes(), http.MethodPost, "/api/probe", api.ProbeRequest{})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAllowedHostsMiddleware(t *testing.T) {
	s := newTestServer()
	s.addr = &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8765}
	h := s.GenerateRoutes()

	cases := map[string]int{
		"localhost":         http.StatusOK,
		"127.0.0.1:8765":    http.StatusOK,
		"box.local":         http.StatusOK,
		"example.com":       http.StatusForbidden,
		"daal.example.com":  http.StatusForbidden,
		"registry.internal": http.StatusOK,
	}
	for host, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
		req.Host = host
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, host)
	}
}

func TestClientRoundTrip(t *testing.T) {
	ts := httptest.NewServer(newTestServer().GenerateRoutes())
	defer ts.Close()

	base, err := url.Parse(ts.URL)
	require.NoError(t, err)
	client := api.NewClient(base, ts.Client())
	ctx := context.Background()

	require.NoError(t, client.Heartbeat(ctx))

	v, err := client.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "table", v.Backend)

	f, err := client.Family(ctx, "math/smoothrelu.ResultID")
	require.NoError(t, err)
	assert.Equal(t, "math/smoothrelu.ResultID", f.Name)

	_, err = client.Family(ctx, "math/smoothrelu.Nope")
	var statusErr api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	resp, err := client.Probe(ctx, &api.ProbeRequest{Kinds: []string{string(elu.Kind)}})
	require.NoError(t, err)
	assert.Len(t, resp.Outcomes, 2)
}
