package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"wakescroll/backend/internal/db"
	"wakescroll/backend/internal/handler"
	"wakescroll/backend/internal/repository"
	"wakescroll/backend/internal/router"
	"wakescroll/backend/internal/service"
	"wakescroll/backend/internal/store"
)

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

type totalEnvelope struct {
	Total int `json:"total"`
}

type todayXPEnvelope struct {
	Date string `json:"date"`
	XP   int    `json:"xp"`
}

type streakEnvelope struct {
	Streak int `json:"streak"`
}

type entriesEnvelope struct {
	Entries []struct {
		ID         string `json:"id"`
		Text       string `json:"text"`
		Mood       string `json:"mood"`
		DateString string `json:"dateString"`
	} `json:"entries"`
}

type weeklyEnvelope struct {
	Days []struct {
		DateString string `json:"dateString"`
		Entries    int    `json:"entries"`
		Words      int    `json:"words"`
	} `json:"days"`
}

type tapEnvelope struct {
	Total int `json:"total"`
	Today struct {
		Taps     int      `json:"taps"`
		Times    []string `json:"times"`
		XPEarned int      `json:"xpEarned"`
	} `json:"today"`
}

type ratingEnvelope struct {
	Current struct {
		Overall    int `json:"overall"`
		Focus      int `json:"focus"`
		Discipline int `json:"discipline"`
		Clarity    int `json:"clarity"`
	} `json:"current"`
	Potential struct {
		Overall int `json:"overall"`
	} `json:"potential"`
	PoorLifestylePercentage int `json:"poorLifestylePercentage"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRewardLedgerFlow(t *testing.T) {
	engine := setupTestEngine(t)

	user1 := registerUser(t, engine, "user1@example.com", "123456")
	user2 := registerUser(t, engine, "user2@example.com", "123456")

	// Two same-day credits accumulate into one daily record.
	status, _ := requestJSON(t, engine, http.MethodPost, "/api/xp/add", user1.Token, map[string]int{"amount": 3})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on add xp, got %d", status)
	}
	status, raw := requestJSON(t, engine, http.MethodPost, "/api/xp/add", user1.Token, map[string]int{"amount": 4})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on add xp, got %d", status)
	}
	var total totalEnvelope
	if err := json.Unmarshal(raw, &total); err != nil {
		t.Fatalf("unmarshal total: %v", err)
	}
	if total.Total != 7 {
		t.Fatalf("expected total 7, got %d", total.Total)
	}

	status, raw = requestJSON(t, engine, http.MethodGet, "/api/xp/today", user1.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on today xp, got %d", status)
	}
	var today todayXPEnvelope
	if err := json.Unmarshal(raw, &today); err != nil {
		t.Fatalf("unmarshal today xp: %v", err)
	}
	if today.XP != 7 {
		t.Fatalf("expected todays xp 7, got %d", today.XP)
	}

	// First credit of the day starts a streak of 1.
	status, raw = requestJSON(t, engine, http.MethodGet, "/api/xp/streak", user1.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on streak, got %d", status)
	}
	var currentStreak streakEnvelope
	if err := json.Unmarshal(raw, &currentStreak); err != nil {
		t.Fatalf("unmarshal streak: %v", err)
	}
	if currentStreak.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", currentStreak.Streak)
	}

	// The validator agrees with the live scalar.
	status, raw = requestJSON(t, engine, http.MethodPost, "/api/xp/streak/validate", user1.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on validate, got %d", status)
	}
	var fixed streakEnvelope
	if err := json.Unmarshal(raw, &fixed); err != nil {
		t.Fatalf("unmarshal validated streak: %v", err)
	}
	if fixed.Streak != 1 {
		t.Fatalf("expected validated streak 1, got %d", fixed.Streak)
	}

	// Non-positive amounts are rejected.
	status, raw = requestJSON(t, engine, http.MethodPost, "/api/xp/add", user1.Token, map[string]int{"amount": -2})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", status)
	}
	var validationErr apiErrorEnvelope
	if err := json.Unmarshal(raw, &validationErr); err != nil {
		t.Fatalf("unmarshal validation error: %v", err)
	}
	if validationErr.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %s", validationErr.Error.Code)
	}

	// User isolation: user2's ledger is untouched.
	status, raw = requestJSON(t, engine, http.MethodGet, "/api/xp", user2.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 for user2 xp, got %d", status)
	}
	var user2Total totalEnvelope
	if err := json.Unmarshal(raw, &user2Total); err != nil {
		t.Fatalf("unmarshal user2 total: %v", err)
	}
	if user2Total.Total != 0 {
		t.Fatalf("expected user2 total 0, got %d", user2Total.Total)
	}
}

func TestCatchScrollTap(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "tapper@example.com", "123456")

	for i := 0; i < 2; i++ {
		status, raw := requestJSON(t, engine, http.MethodPost, "/api/xp/catch-scroll/tap", user.Token, nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200 on tap, got %d", status)
		}
		if i == 1 {
			var tap tapEnvelope
			if err := json.Unmarshal(raw, &tap); err != nil {
				t.Fatalf("unmarshal tap: %v", err)
			}
			if tap.Total != 2 || tap.Today.Taps != 2 || tap.Today.XPEarned != 2 {
				t.Fatalf("unexpected tap state: %+v", tap)
			}
			if len(tap.Today.Times) != tap.Today.Taps {
				t.Fatalf("taps %d != times %d", tap.Today.Taps, len(tap.Today.Times))
			}
		}
	}
}

func TestJournalFlow(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "writer@example.com", "123456")

	status, raw := requestJSON(t, engine, http.MethodPost, "/api/journal", user.Token, map[string]string{
		"text": "hello",
		"mood": "😄",
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 on save, got %d: %s", status, string(raw))
	}

	status, raw = requestJSON(t, engine, http.MethodGet, "/api/journal/today", user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on today, got %d", status)
	}
	var todays entriesEnvelope
	if err := json.Unmarshal(raw, &todays); err != nil {
		t.Fatalf("unmarshal todays entries: %v", err)
	}
	if len(todays.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(todays.Entries))
	}
	if todays.Entries[0].Text != "hello" || todays.Entries[0].Mood != "😄" {
		t.Fatalf("unexpected entry: %+v", todays.Entries[0])
	}

	// Weekly buckets are always exactly seven days.
	weekStart := todays.Entries[0].DateString
	status, raw = requestJSON(t, engine, http.MethodGet, "/api/journal/weekly?start="+weekStart, user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on weekly, got %d", status)
	}
	var weekly weeklyEnvelope
	if err := json.Unmarshal(raw, &weekly); err != nil {
		t.Fatalf("unmarshal weekly: %v", err)
	}
	if len(weekly.Days) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(weekly.Days))
	}
	if weekly.Days[0].DateString != weekStart || weekly.Days[0].Entries != 1 {
		t.Fatalf("unexpected first bucket: %+v", weekly.Days[0])
	}

	// Delete removes exactly the matching record.
	status, raw = requestJSON(t, engine, http.MethodDelete, "/api/journal/"+todays.Entries[0].ID, user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", status)
	}
	status, raw = requestJSON(t, engine, http.MethodGet, "/api/journal", user.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("expected 200 on list, got %d", status)
	}
	var all entriesEnvelope
	if err := json.Unmarshal(raw, &all); err != nil {
		t.Fatalf("unmarshal entries: %v", err)
	}
	if len(all.Entries) != 0 {
		t.Fatalf("expected no entries after delete, got %d", len(all.Entries))
	}
}

func TestTimerRejectsNonPresetDuration(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "focus@example.com", "123456")

	status, raw := requestJSON(t, engine, http.MethodPost, "/api/timer/sessions", user.Token, map[string]int{
		"durationMinutes": 17,
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-preset duration, got %d", status)
	}
	var apiErr apiErrorEnvelope
	if err := json.Unmarshal(raw, &apiErr); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if apiErr.Error.Code != "validation_failed" {
		t.Fatalf("expected validation_failed, got %s", apiErr.Error.Code)
	}

	status, _ = requestJSON(t, engine, http.MethodPost, "/api/timer/sessions", user.Token, map[string]int{
		"durationMinutes": 25,
	})
	if status != http.StatusCreated {
		t.Fatalf("expected 201 for preset duration, got %d", status)
	}
}

func TestCalendarQueryNamesOffendingField(t *testing.T) {
	engine := setupTestEngine(t)
	user := registerUser(t, engine, "calendar@example.com", "123456")

	type fieldError struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}

	status, raw := requestJSON(t, engine, http.MethodGet, "/api/journal/calendar?year=2026&month=13", user.Token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for month 13, got %d", status)
	}
	var monthErr fieldError
	if err := json.Unmarshal(raw, &monthErr); err != nil {
		t.Fatalf("unmarshal month error: %v", err)
	}
	if monthErr.Error.Code != "validation_failed" || monthErr.Error.Details["field"] != "month" {
		t.Fatalf("expected validation_failed on field month, got %+v", monthErr.Error)
	}

	status, raw = requestJSON(t, engine, http.MethodGet, "/api/timer/monthly?month=2", user.Token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing year, got %d", status)
	}
	var yearErr fieldError
	if err := json.Unmarshal(raw, &yearErr); err != nil {
		t.Fatalf("unmarshal year error: %v", err)
	}
	if yearErr.Error.Details["field"] != "year" {
		t.Fatalf("expected field year, got %+v", yearErr.Error)
	}
}

func TestRatingQuizIsPublic(t *testing.T) {
	engine := setupTestEngine(t)

	status, raw := requestJSON(t, engine, http.MethodPost, "/api/rating/quiz", "", map[string]interface{}{
		"answers": map[string]int{
			"dailyHours":  3,
			"firstReach":  2,
			"nightScroll": 3,
			"focusLoss":   1,
			"sleepImpact": 2,
			"moodImpact":  1,
		},
	})
	if status != http.StatusOK {
		t.Fatalf("expected 200 on quiz, got %d: %s", status, string(raw))
	}

	var result ratingEnvelope
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("unmarshal rating: %v", err)
	}
	for _, field := range []int{result.Current.Overall, result.Current.Focus, result.Current.Discipline, result.Current.Clarity} {
		if field < 15 || field > 48 {
			t.Fatalf("rating field %d out of [15,48]", field)
		}
	}
	if result.Potential.Overall > 92 || result.Potential.Overall < result.Current.Overall {
		t.Fatalf("potential overall %d violates caps (current %d)", result.Potential.Overall, result.Current.Overall)
	}
	if result.PoorLifestylePercentage < 40 || result.PoorLifestylePercentage > 95 {
		t.Fatalf("poor lifestyle percentage %d out of bounds", result.PoorLifestylePercentage)
	}
}

func TestLedgerRequiresAuth(t *testing.T) {
	engine := setupTestEngine(t)

	status, _ := requestJSON(t, engine, http.MethodGet, "/api/xp", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}

func TestCORSPreflight(t *testing.T) {
	engine := setupTestEngine(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	recorder := httptest.NewRecorder()

	engine.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", recorder.Code)
	}
	if recorder.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("unexpected allow-origin header: %s", recorder.Header().Get("Access-Control-Allow-Origin"))
	}
}

func setupTestEngine(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	_, currentFile, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(currentFile), "..", "..", "migrations")
	if err := db.Migrate(database, migrationsDir); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	kv, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open ledger store: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})

	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, "test-secret", 24*time.Hour)

	handlers := router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		XP:      handler.NewXPHandler(service.NewXPService(repository.NewXPRepository(kv), time.UTC)),
		Journal: handler.NewJournalHandler(service.NewJournalService(repository.NewJournalRepository(kv), time.UTC)),
		Timer:   handler.NewTimerHandler(service.NewTimerService(repository.NewTimerRepository(kv), time.UTC)),
		Goal:    handler.NewGoalHandler(service.NewGoalService(repository.NewGoalRepository(kv))),
		Rating:  handler.NewRatingHandler(),
	}

	return router.New(authService, handlers, []string{"http://localhost:5173"})
}

func registerUser(t *testing.T, server http.Handler, email, password string) authResponse {
	t.Helper()
	status, body := requestJSON(t, server, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if status != http.StatusCreated {
		t.Fatalf("register %s failed with status %d: %s", email, status, string(body))
	}
	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("empty token for user %s", email)
	}
	return resp
}

func requestJSON(
	t *testing.T,
	server http.Handler,
	method, path, token string,
	body interface{},
) (int, []byte) {
	t.Helper()

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		payload = raw
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.Body.Bytes()
}
