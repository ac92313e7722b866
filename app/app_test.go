package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/config"
	"github.com/jaybhuva31/Paaksathi-AI/database"
	"github.com/jaybhuva31/Paaksathi-AI/entities"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/apperr"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/export/service"
)

type env struct {
	t   *testing.T
	srv *httptest.Server
	db  *gorm.DB
	cfg config.AppConfig
}

type client struct {
	env *env
	hc  *http.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	static := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(filepath.Join(static, "pages"), 0o755))
	for _, name := range []string{"index", "login", "dashboard", "profile"} {
		require.NoError(t, os.WriteFile(filepath.Join(static, "pages", name+".html"), []byte("<html>"+name+"</html>"), 0o644))
	}

	cfg := config.AppConfig{
		StaticDir:     static,
		UploadDir:     filepath.Join(static, "uploads"),
		MaxUploadMB:   1,
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		AdminUsername: "admin",
		AdminPassword: "admin123",
		Detector:      ai.SourceMock,
		DetectTimeout: 5 * time.Second,
		ExportTZ:      "Asia/Kolkata",
	}
	db, err := database.OpenSQLite(filepath.Join(dir, "app.db"), database.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	srv := httptest.NewServer(New(cfg, db, ai.NewMock(), zap.NewNop()))
	t.Cleanup(srv.Close)
	return &env{t: t, srv: srv, db: db, cfg: cfg}
}

func (e *env) client() *client {
	jar, err := cookiejar.New(nil)
	require.NoError(e.t, err)
	return &client{env: e, hc: &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
}

func (c *client) do(method, path, ctype string, body []byte) (*http.Response, map[string]any) {
	t := c.env.t
	t.Helper()
	req, err := http.NewRequest(method, c.env.srv.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}
	resp, err := c.hc.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func (c *client) json(method, path string, payload any) (int, map[string]any) {
	c.env.t.Helper()
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(c.env.t, err)
	}
	resp, out := c.do(method, path, "application/json", body)
	return resp.StatusCode, out
}

func (c *client) upload(path, field, filename, crop string) (int, map[string]any) {
	c.env.t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(c.env.t, err)
	_, _ = fw.Write([]byte("\x89PNG fake"))
	if crop != "" {
		require.NoError(c.env.t, w.WriteField("crop_type", crop))
	}
	require.NoError(c.env.t, w.Close())
	resp, out := c.do(http.MethodPost, path, w.FormDataContentType(), buf.Bytes())
	return resp.StatusCode, out
}

func (e *env) count(model any) int64 {
	var n int64
	require.NoError(e.t, e.db.Model(model).Count(&n).Error)
	return n
}

func num(v any) int64 {
	f, _ := v.(float64)
	return int64(f)
}

func TestSignupLoginProfileLogout(t *testing.T) {
	e := newEnv(t)
	c := e.client()

	_, before := c.json(http.MethodGet, "/api/stats", nil)

	code, out := c.json(http.MethodPost, "/api/user/signup", map[string]string{
		"name": "રમેશ", "mobile": "9876543210", "email": "r@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "રજિસ્ટ્રેશન સફળ!", out["message"])

	_, after := c.json(http.MethodGet, "/api/stats", nil)
	assert.Equal(t, num(before["total_users"])+1, num(after["total_users"]))

	// signup establishes the session
	code, out = c.json(http.MethodGet, "/api/user/profile", nil)
	require.Equal(t, http.StatusOK, code)
	user := out["user"].(map[string]any)
	assert.Equal(t, "9876543210", user["mobile"])
	assert.EqualValues(t, 0, num(out["user_scans"]))

	code, out = c.json(http.MethodPost, "/api/user/logout", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "લોગઆઉટ સફળ!", out["message"])

	code, out = c.json(http.MethodGet, "/api/user/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, apperr.MsgNotLoggedIn, out["message"])

	code, out = c.json(http.MethodPost, "/api/user/login", map[string]string{"mobile": "9876543210", "password": "secret1"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "લોગિન સફળ!", out["message"])

	code, out = c.json(http.MethodPost, "/api/user/login", map[string]string{"mobile": "9876543210", "password": "wrong1"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, apperr.MsgInvalidCredentials, out["message"])
}

func TestSignupRejections(t *testing.T) {
	e := newEnv(t)
	c := e.client()

	code, _ := c.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "A", "mobile": "9876543210", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)

	code, out := c.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "B", "mobile": "9876543210", "password": "secret2"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, apperr.MsgDuplicateMobile, out["message"])

	code, out = c.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "C", "mobile": "98765", "password": "secret3"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "માન્ય 10 અંકનો મોબાઇલ નંબર દાખલ કરો", out["message"])

	resp, out := c.do(http.MethodPost, "/api/user/signup", "application/json", []byte("{not json"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apperr.MsgInvalidRequest, out["message"])

	assert.EqualValues(t, 1, e.count(&entities.User{}))
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	e := newEnv(t)
	c := e.client()

	// a user session does not open admin endpoints
	code, _ := c.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "A", "mobile": "9876543210", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)

	for _, ep := range []struct{ method, path string }{
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/scan-records"},
		{http.MethodGet, "/api/admin/export-users"},
		{http.MethodPost, "/api/crops"},
		{http.MethodDelete, "/api/crops/1"},
		{http.MethodPost, "/api/diseases"},
		{http.MethodDelete, "/api/diseases/1"},
		{http.MethodPost, "/api/schemes"},
		{http.MethodDelete, "/api/schemes/1"},
	} {
		code, out := c.json(ep.method, ep.path, map[string]string{"name_gu": "x", "title": "x"})
		assert.Equal(t, http.StatusUnauthorized, code, "%s %s", ep.method, ep.path)
		assert.Equal(t, apperr.MsgUnauthorized, out["message"], "%s %s", ep.method, ep.path)
	}
	assert.EqualValues(t, 10, e.count(&entities.Crop{}), "nothing may change without an admin session")
}

func adminClient(t *testing.T, e *env) *client {
	t.Helper()
	c := e.client()
	code, out := c.json(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "admin123"})
	require.Equal(t, http.StatusOK, code, out)
	require.Equal(t, "એડમિન લોગિન સફળ!", out["message"])
	return c
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	e := newEnv(t)
	code, out := e.client().json(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, apperr.MsgInvalidAdmin, out["message"])
}

func TestContentCRUDRoundTrip(t *testing.T) {
	e := newEnv(t)
	c := adminClient(t, e)

	code, out := c.json(http.MethodPost, "/api/crops", map[string]string{"name_gu": "જીરું", "name_en": "Cumin"})
	require.Equal(t, http.StatusOK, code, out)
	cropID := num(out["crop_id"])
	assert.NotZero(t, cropID)

	_, out = c.json(http.MethodGet, "/api/crops", nil)
	assert.Len(t, out["crops"], 11)

	code, _ = c.json(http.MethodDelete, "/api/crops/"+itoa(cropID), nil)
	assert.Equal(t, http.StatusOK, code)
	_, out = c.json(http.MethodGet, "/api/crops", nil)
	assert.Len(t, out["crops"], 10)

	code, out = c.json(http.MethodPost, "/api/crops", map[string]string{"name_en": "NoGujarati"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, out["success"])

	code, out = c.json(http.MethodPost, "/api/diseases", map[string]any{"name_gu": "સુકારો", "crop": "જીરું"})
	require.Equal(t, http.StatusOK, code, out)
	var d entities.Disease
	require.NoError(t, e.db.First(&d, num(out["disease_id"])).Error)
	for _, list := range [][]string{d.Symptoms, d.Treatment, d.Prevention} {
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}

	code, out = c.json(http.MethodPost, "/api/schemes", map[string]string{"title": "નવી યોજના", "description": "વિગત"})
	require.Equal(t, http.StatusOK, code, out)
	_, out = c.json(http.MethodGet, "/api/schemes", nil)
	schemes := out["schemes"].([]any)
	require.Len(t, schemes, 4)
	assert.Equal(t, "નવી યોજના", schemes[3].(map[string]any)["title"], "schemes keep insertion order")

	code, _ = c.json(http.MethodDelete, "/api/schemes/not-a-number", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestScanUploadAppendsOneRow(t *testing.T) {
	e := newEnv(t)
	user := e.client()
	code, _ := user.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "A", "mobile": "9876543210", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)

	before := e.count(&entities.Scan{})
	code, out := user.upload("/api/scan/upload", "file", "leaf.png", "Potato")
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, before+1, e.count(&entities.Scan{}))

	result := out["result"].(map[string]any)
	assert.Equal(t, "Late Blight", result["disease_name"])
	assert.Equal(t, "લેટ બ્લાઇટ", result["disease_name_guj"])
	path := out["image_path"].(string)
	assert.True(t, strings.HasSuffix(path, "_leaf.png"), path)
	_, err := os.Stat(path)
	assert.NoError(t, err)

	_, out = user.json(http.MethodGet, "/api/user/profile", nil)
	assert.EqualValues(t, 1, num(out["user_scans"]))

	// anonymous scan, default crop
	code, out = e.client().upload("/api/scan/upload", "file", "leaf.jpg", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Bacterial Blight", out["result"].(map[string]any)["disease_name"])

	code, out = e.client().upload("/api/scan/upload", "file", "notes.pdf", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "અમાન્ય ફાઇલ પ્રકાર. કૃપા કરીને PNG, JPG, JPEG અથવા GIF ફાઇલ અપલોડ કરો", out["message"])

	code, out = e.client().upload("/api/scan/upload", "photo", "leaf.jpg", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "કોઈ ફાઇલ પ્રદાન કરવામાં આવી નથી", out["message"])

	assert.Equal(t, before+2, e.count(&entities.Scan{}))

	admin := adminClient(t, e)
	_, out = admin.json(http.MethodGet, "/api/admin/scan-records", nil)
	records := out["records"].([]any)
	require.Len(t, records, 2)
}

func TestUploadFormRecordsScan(t *testing.T) {
	e := newEnv(t)
	resp, _ := func() (*http.Response, map[string]any) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("image", "leaf.gif")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("GIF89a"))
		require.NoError(t, w.WriteField("crop_type", "rice"))
		require.NoError(t, w.Close())
		return e.client().do(http.MethodPost, "/upload", w.FormDataContentType(), buf.Bytes())
	}()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	assert.EqualValues(t, 1, e.count(&entities.Scan{}))
	assert.EqualValues(t, 1, e.count(&entities.Visit{}))
}

func TestAdminStatsAndExport(t *testing.T) {
	e := newEnv(t)
	u := e.client()
	code, _ := u.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "A", "mobile": "9876543210", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)
	resp, _ := u.do(http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	c := adminClient(t, e)
	code, out := c.json(http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, code)
	stats := out["stats"].(map[string]any)
	assert.EqualValues(t, 1, num(stats["total_users"]))
	assert.EqualValues(t, 1, num(stats["total_visits"]))
	assert.Len(t, out["recent_visits"], 1)
	assert.Len(t, out["users"], 1)

	resp, _ = c.do(http.MethodGet, "/api/admin/export-users", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, service.ContentTypeXLSX, resp.Header.Get("Content-Type"))
	cd := resp.Header.Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(cd, `attachment; filename="users_export_`), cd)
	assert.True(t, strings.HasSuffix(cd, `.xlsx"`), cd)

	// admin logout leaves the admin scope closed, the user scope untouched
	code, _ = c.json(http.MethodPost, "/api/admin/logout", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = c.json(http.MethodGet, "/api/admin/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = u.json(http.MethodGet, "/api/user/profile", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestPagesAndWeather(t *testing.T) {
	e := newEnv(t)
	c := e.client()

	resp, _ := c.do(http.MethodGet, "/dashboard", "", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, _ = c.do(http.MethodGet, "/login", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 2, e.count(&entities.Visit{}), "redirected page views still count")

	code, _ := c.json(http.MethodPost, "/api/user/signup", map[string]string{"name": "A", "mobile": "9876543210", "password": "secret1"})
	require.Equal(t, http.StatusOK, code)
	resp, _ = c.do(http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, _ = c.json(http.MethodPost, "/api/track-visit", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4, e.count(&entities.Visit{}))

	code, out := c.json(http.MethodGet, "/api/weather?lat=21.17&lon=72.83", nil)
	require.Equal(t, http.StatusOK, code)
	data := out["data"].(map[string]any)
	assert.EqualValues(t, 28, num(data["temperature"]))
	assert.EqualValues(t, 65, num(data["humidity"]))
	assert.EqualValues(t, 12, num(data["wind_speed"]))
	assert.EqualValues(t, 30, num(data["rain_probability"]))
	assert.Equal(t, "Partly Cloudy", data["condition"])
	assert.Equal(t, "અંશતઃ વાદળછાયા", data["condition_guj"])

	code, out = c.json(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, ai.SourceMock, out["detector"])

	code, out = c.json(http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, out["success"])
}

func itoa(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
