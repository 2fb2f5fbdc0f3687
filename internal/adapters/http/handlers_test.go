package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/battleship/internal/domain"
	"svw.info/battleship/internal/infrastructure/sessions"
	"svw.info/battleship/internal/usecase"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sessions.NewLRU(16, nil)
	require.NoError(t, err)
	uc := usecase.NewService(st, usecase.Defaults{Rows: 10, Cols: 10, MaxRows: 26, MaxCols: 26}, zerolog.Nop())
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any) (int, snapshotResp) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer res.Body.Close()
	var out snapshotResp
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res.StatusCode, out
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	code, out := post(t, srv, "/api/session", map[string]any{})
	require.Equal(t, http.StatusCreated, code, out.Error)
	require.NotNil(t, out.Snapshot)
	return out.Snapshot.ID
}

func TestCreateAndObserve(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	code, out := post(t, srv, "/api/observe", observeReq{ID: id, Row: 0, Col: 0, Kind: "miss"})
	require.Equal(t, http.StatusOK, code, out.Error)
	assert.Equal(t, domain.Miss, out.Snapshot.Board[0][0])
	assert.Equal(t, 0, out.Snapshot.Aggregate[0][0])
	assert.Equal(t, 2, out.Snapshot.PerShip["Destroyer"][1][0])
}

func TestCreateEmptyBody(t *testing.T) {
	srv := newServer(t)
	res, err := http.Post(srv.URL+"/api/session", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestCreateRejectsOversizedBoard(t *testing.T) {
	srv := newServer(t)
	code, out := post(t, srv, "/api/session", createReq{Rows: 100000, Cols: 100000})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Nil(t, out.Snapshot)
	assert.Contains(t, out.Error, "invalid board dimensions")

	code, _ = post(t, srv, "/api/session", createReq{Rows: 26, Cols: 27})
	assert.Equal(t, http.StatusBadRequest, code)

	code, out = post(t, srv, "/api/session", createReq{Rows: 26, Cols: 26})
	require.Equal(t, http.StatusCreated, code, out.Error)
	assert.Equal(t, 26, out.Snapshot.Rows)
}

func TestObserveErrors(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	code, out := post(t, srv, "/api/observe", observeReq{ID: id, Row: 10, Col: 0, Kind: "hit"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out.Error, "out of bounds")

	code, _ = post(t, srv, "/api/observe", observeReq{ID: id, Row: 1, Col: 1, Kind: "splash"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = post(t, srv, "/api/observe", observeReq{ID: "missing", Row: 1, Col: 1, Kind: "hit"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestSunkResetSnapshot(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	_, base := post(t, srv, "/api/snapshot", idReq{ID: id})
	require.NotNil(t, base.Snapshot)

	code, out := post(t, srv, "/api/sunk", sunkReq{ID: id, Name: "Carrier", Sunk: true})
	require.Equal(t, http.StatusOK, code, out.Error)
	carrier := out.Snapshot.PerShip["Carrier"]
	assert.Equal(t, base.Snapshot.Aggregate[5][5]-carrier[5][5], out.Snapshot.Aggregate[5][5])

	code, _ = post(t, srv, "/api/sunk", sunkReq{ID: id, Name: "Rowboat", Sunk: true})
	assert.Equal(t, http.StatusBadRequest, code)

	_, _ = post(t, srv, "/api/observe", observeReq{ID: id, Row: 3, Col: 3, Kind: "hit"})
	code, out = post(t, srv, "/api/reset", idReq{ID: id})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, domain.Unknown, out.Snapshot.Board[3][3])
	assert.True(t, out.Snapshot.Ships[4].Sunk)
}

func TestDelete(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	code, _ := post(t, srv, "/api/delete", idReq{ID: id})
	assert.Equal(t, http.StatusOK, code)
	code, _ = post(t, srv, "/api/delete", idReq{ID: id})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newServer(t)
	res, err := http.Get(srv.URL + "/api/observe")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)

	res, err = http.Post(srv.URL+"/api/heatmap", "text/plain", nil)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestInvalidJSON(t *testing.T) {
	srv := newServer(t)
	res, err := http.Post(srv.URL+"/api/observe", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHeatmap(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	res, err := http.Get(srv.URL + "/api/heatmap?format=numbers&ship=Destroyer&id=" + id)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(res.Body)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, []string{"2", "3", "3", "3", "3", "3", "3", "3", "3", "2"}, strings.Fields(lines[0]))

	colour, err := http.Get(srv.URL + "/api/heatmap?id=" + id)
	require.NoError(t, err)
	defer colour.Body.Close()
	buf.Reset()
	_, _ = buf.ReadFrom(colour.Body)
	assert.Equal(t, http.StatusOK, colour.StatusCode)
	assert.NotContains(t, buf.String(), "\x1b[", "responses are not terminals")

	res2, err := http.Get(srv.URL + "/api/heatmap?id=" + id + "&ship=Rowboat")
	require.NoError(t, err)
	res2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)

	res3, err := http.Get(srv.URL + "/api/heatmap?id=missing")
	require.NoError(t, err)
	res3.Body.Close()
	assert.Equal(t, http.StatusNotFound, res3.StatusCode)
}
