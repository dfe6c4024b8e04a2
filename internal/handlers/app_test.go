package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/justicelink/justicelink/internal/database"
	"github.com/justicelink/justicelink/internal/handlers"
	"github.com/justicelink/justicelink/internal/middleware"
	"github.com/justicelink/justicelink/internal/storage"
	"github.com/justicelink/justicelink/internal/types"
	"github.com/justicelink/justicelink/internal/utils"
	"github.com/justicelink/justicelink/tests/helpers"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	App   *fiber.App
	DB    *gorm.DB
	Files *storage.FileStore
}

// newTestApp stands up the API against an in-memory database and a
// throwaway upload directory, with the same route table as the server.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	files, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file store: %v", err)
	}

	sessions := session.New(session.Config{
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*types.CustomError); ok {
				return utils.ErrorResponse(c, e.Message, e.Code, e.Type)
			}
			if e, ok := err.(*fiber.Error); ok {
				return utils.ErrorResponse(c, e.Message, e.Code, "unknown")
			}
			return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "unknown")
		},
	})

	authHandler := &handlers.AuthHandler{DB: db, Sessions: sessions}
	userHandler := &handlers.UserHandler{DB: db}
	caseHandler := &handlers.CaseHandler{DB: db}
	permHandler := &handlers.PermissionHandler{DB: db}
	docHandler := &handlers.DocumentHandler{DB: db, Files: files}

	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(sessions)

	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", requireAuth, authHandler.Logout)
	api.Get("/session", requireAuth, authHandler.Session)
	api.Get("/user/:id", requireAuth, userHandler.GetUser)
	api.Get("/users/search", requireAuth, userHandler.SearchUsers)
	api.Post("/cases", requireAuth, caseHandler.CreateCase)
	api.Get("/cases", requireAuth, caseHandler.ListCases)
	api.Get("/case/:id", requireAuth, caseHandler.GetCase)
	api.Put("/case/:id/status", requireAuth, caseHandler.UpdateStatus)
	api.Get("/case/:id/summary", requireAuth, caseHandler.Summarize)
	api.Get("/case/:id/permissions", requireAuth, permHandler.ListPermissions)
	api.Post("/case/:id/grant-access", requireAuth, permHandler.GrantAccess)
	api.Get("/case/:id/documents", requireAuth, docHandler.ListDocuments)
	api.Post("/case/:id/upload", requireAuth, docHandler.Upload)
	api.Get("/document/:id/download", requireAuth, docHandler.Download)

	return &testApp{App: app, DB: db, Files: files}
}

// request performs a JSON API call. body may be nil; cookie may be nil for
// unauthenticated calls.
func (ta *testApp) request(t *testing.T, method, path string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := ta.App.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

// upload performs a multipart file upload to /api/case/:id/upload.
func (ta *testApp) upload(t *testing.T, caseID, fileName, contents string, cookie *http.Cookie) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(contents)); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/case/"+caseID+"/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := ta.App.Test(req, 5000)
	if err != nil {
		t.Fatalf("Upload to case %s failed: %v", caseID, err)
	}
	return resp
}

// login opens a session for a previously seeded account and returns its
// cookie.
func (ta *testApp) login(t *testing.T, email string) *http.Cookie {
	t.Helper()

	resp := ta.request(t, http.MethodPost, "/api/login", map[string]string{
		"email":    email,
		"password": helpers.TestPassword,
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Login as %s returned %d", email, resp.StatusCode)
	}
	return helpers.SessionCookie(t, resp)
}
