// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL or Valkey are
// unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"brandvoice/internal/ai"
	"brandvoice/internal/cache"
	"brandvoice/internal/database"
	"brandvoice/internal/email"
	"brandvoice/internal/middleware"
	"brandvoice/internal/pdf"
	"brandvoice/internal/session"
	"brandvoice/internal/store"
	"brandvoice/internal/voice"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brandvoice")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brandvoice")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		for _, pattern := range []string{"session:*", "page:*", "voice-preview:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests. S3 is
// not configured in tests; asset endpoints report unavailable.
type testEnv struct {
	DB       *sql.DB
	Valkey   *redis.Client
	Sessions *session.Store
	Clients  *store.ClientStore
	Intakes  *store.IntakeStore
	Scripts  *store.ScriptStore
	Activity *store.ActivityStore
	Assets   *store.AssetStore
	Users    *store.UserStore
	Admin    *Admin
	Auth     *Auth
	Portal   *Portal
	Public   *Public
}

// newTestEnv creates a complete test environment. The AI registry has no
// API keys, so script generation runs against the deterministic offline
// provider; email is disabled, the PDF renderer and TTS unconfigured.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	clients := store.NewClientStore(db)
	intakes := store.NewIntakeStore(db)
	scripts := store.NewScriptStore(db)
	activity := store.NewActivityStore(db)
	assets := store.NewAssetStore(db)
	users := store.NewUserStore(db)

	aiRegistry := ai.NewRegistry("", nil)
	mailer := email.New("", "test@brandvoice.studio", "admin@brandvoice.studio", "http://localhost:8080")
	renderer := pdf.New("")
	tts := voice.New("")
	pages := cache.NewPageCache(vk, time.Minute)
	previews := cache.NewPreviewCache(vk, time.Minute)

	return &testEnv{
		DB:       db,
		Valkey:   vk,
		Sessions: sessions,
		Clients:  clients,
		Intakes:  intakes,
		Scripts:  scripts,
		Activity: activity,
		Assets:   assets,
		Users:    users,
		Admin:    NewAdmin(clients, intakes, scripts, activity, assets, users, aiRegistry, mailer, renderer, nil),
		Auth:     NewAuth(sessions, users),
		Portal:   NewPortal(users, clients, scripts, assets, activity),
		Public:   NewPublic(pages, previews, tts),
	}
}

// testSession creates session data for handler tests.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// withSession attaches session data to a request context.
func withSession(r *http.Request, sess *session.Data) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, sess))
}

// withChiURLParamAndSession adds both a chi URL param and session data.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	return r.WithContext(ctx)
}

// cleanClients removes test clients by email. Intakes, scripts, assets,
// and activity rows cascade with the client.
func cleanClients(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM clients WHERE email = $1", e)
	}
}

// cleanUsers removes test users by email.
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", e)
	}
}
