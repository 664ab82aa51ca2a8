package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"career-match/internal/app"
	"career-match/internal/config"
	"career-match/internal/database/migration"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/infrastructure/broker"
	"career-match/internal/infrastructure/cache"
	"career-match/internal/ws"
	"career-match/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const devCode = "246810"

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestIntegration_PostAnalyzeApply drives one poster and one seeker through
// the whole API against a real Postgres.
func TestIntegration_PostAnalyzeApply(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	r := migration.Runner{Source: migrations.FS}
	if _, err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	suffix := uuid.NewString()[:8]
	posterEmail := "poster-" + suffix + "@example.com"
	seekerEmail := "seeker-" + suffix + "@example.com"
	title := "Integration Go Developer " + suffix
	defer func() {
		cctx := context.Background()
		_, _ = db.Exec(cctx, `DELETE FROM job_postings WHERE title = $1`, title)
		_, _ = db.Exec(cctx, `DELETE FROM users WHERE email = ANY($1)`, []string{posterEmail, seekerEmail})
		_, _ = db.Exec(cctx, `DELETE FROM verification_codes WHERE email = ANY($1)`, []string{posterEmail, seekerEmail})
	}()

	logger := log.New(io.Discard, "", 0)
	c := &app.Container{
		Config:    testConfig(),
		Logger:    logger,
		DB:        db,
		Cache:     cache.NewRedisFromClient(nil, 0, logger),
		Publisher: broker.Noop{},
		Hub:       ws.NewHub(logger),
	}
	fa := app.NewFromContainer(c).Fiber

	poster := signIn(t, fa, posterEmail, "job_poster")
	seeker := signIn(t, fa, seekerEmail, "job_seeker")

	deadline := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	var posted struct {
		ID string `json:"id"`
	}
	call(t, fa, jsonReq("POST", "/api/v1/jobs", map[string]any{
		"title": title, "company": "IT Co", "location": "Remote", "description": "Go and PostgreSQL",
		"salary_range": "$90,000 - $100,000", "workers_needed": 1, "application_deadline": deadline,
	}), poster, fiber.StatusCreated, &posted)
	if posted.ID == "" {
		t.Fatalf("post job: empty id")
	}

	var feed []struct {
		ID string `json:"id"`
	}
	call(t, fa, httptest.NewRequest("GET", "/api/v1/jobs?search="+suffix+"&min_salary=90000", nil), seeker, fiber.StatusOK, &feed)
	if len(feed) != 1 || feed[0].ID != posted.ID {
		t.Fatalf("feed: expected only %s, got %+v", posted.ID, feed)
	}

	call(t, fa, resumeUpload(t, "Software Engineer", "Go developer. Built a REST API with docker and sql."), seeker, fiber.StatusOK, nil)

	var analysis struct {
		Score       int `json:"score"`
		Suggestions []struct {
			Key string `json:"key"`
		} `json:"suggestions"`
	}
	call(t, fa, httptest.NewRequest("POST", "/api/v1/resume/analysis", nil), seeker, fiber.StatusOK, &analysis)
	if len(analysis.Suggestions) == 0 {
		t.Fatalf("analysis: expected suggestions for a short résumé")
	}

	var applied struct {
		ResumeText string `json:"resume_text"`
	}
	call(t, fa, httptest.NewRequest("POST", "/api/v1/resume/suggestions/"+analysis.Suggestions[0].Key+"/apply", nil), seeker, fiber.StatusOK, &applied)
	if applied.ResumeText == "" {
		t.Fatalf("apply: empty résumé text")
	}

	var proceed struct {
		Score       int    `json:"score"`
		Destination string `json:"destination"`
	}
	call(t, fa, httptest.NewRequest("POST", "/api/v1/resume/proceed", nil), seeker, fiber.StatusOK, &proceed)
	if proceed.Score != analysis.Score {
		t.Fatalf("proceed: expected recorded score %d, got %d", analysis.Score, proceed.Score)
	}

	call(t, fa, jsonReq("POST", "/api/v1/jobs/"+posted.ID+"/applications", map[string]string{"cover_letter": "Hello!"}), seeker, fiber.StatusCreated, nil)

	var apps []struct {
		UserEmail  string `json:"user_email"`
		ResumeName string `json:"resume_name"`
	}
	call(t, fa, httptest.NewRequest("GET", "/api/v1/jobs/"+posted.ID+"/applications", nil), poster, fiber.StatusOK, &apps)
	if len(apps) != 1 || apps[0].UserEmail != seekerEmail || apps[0].ResumeName != "cv.txt" {
		t.Fatalf("applications: unexpected %+v", apps)
	}

	var suggested struct {
		Jobs []struct {
			ID string `json:"id"`
		} `json:"jobs"`
	}
	call(t, fa, httptest.NewRequest("GET", "/api/v1/jobs/suggestions", nil), seeker, fiber.StatusOK, &suggested)
	if len(suggested.Jobs) == 0 {
		t.Fatalf("suggestions: expected curated jobs")
	}
	call(t, fa, jsonReq("POST", "/api/v1/jobs/"+suggested.Jobs[0].ID+"/applications", map[string]string{"cover_letter": "Hello!"}), seeker, fiber.StatusCreated, nil)
}

func connectTestDB(t *testing.T, ctx context.Context) *dbpostgres.Pool {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CAREERMATCH_TEST_DB_SSL_MODE"), "disable")

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CAREERMATCH_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_*)")
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost: host, DBPort: port, DBName: name, DBUser: user, DBPassword: pass, DBSSLMode: ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "career-match", Environment: "test", HTTPPort: "0", Timezone: "UTC"},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Auth: config.AuthConfig{CodeTTL: 10 * time.Minute, DevCode: devCode},
	}
}

func signIn(t *testing.T, fa *fiber.App, email, role string) string {
	t.Helper()

	call(t, fa, jsonReq("POST", "/api/v1/auth/login", map[string]string{"email": email, "role": role}), "", fiber.StatusOK, nil)

	var session struct {
		Tokens struct {
			AccessToken string `json:"access_token"`
		} `json:"tokens"`
	}
	call(t, fa, jsonReq("POST", "/api/v1/auth/verify", map[string]string{"email": email, "code": devCode}), "", fiber.StatusOK, &session)
	if session.Tokens.AccessToken == "" {
		t.Fatalf("verify %s: missing access_token", email)
	}
	return session.Tokens.AccessToken
}

func call(t *testing.T, fa *fiber.App, req *http.Request, token string, wantStatus int, out any) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := fa.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode: %v", req.Method, req.URL.Path, err)
	}
	if sr.Status != wantStatus {
		t.Fatalf("%s %s: expected status=%d, got %d (message=%s)", req.Method, req.URL.Path, wantStatus, sr.Status, sr.Message)
	}
	if out != nil {
		if err := json.Unmarshal(sr.Data, out); err != nil {
			t.Fatalf("%s %s: data unmarshal: %v", req.Method, req.URL.Path, err)
		}
	}
}

func jsonReq(method, path string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func resumeUpload(t *testing.T, role, text string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("role", role); err != nil {
		t.Fatalf("write role: %v", err)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="resume"; filename="cv.txt"`)
	h.Set("Content-Type", "text/plain")
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	_, _ = part.Write([]byte(text))
	_ = w.Close()

	req := httptest.NewRequest("PUT", "/api/v1/profile", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}
