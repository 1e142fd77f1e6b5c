package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobmatch/internal/catalog"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/delivery/http/routes"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type recommendationItem struct {
	Title          string   `json:"Job Title"`
	Company        string   `json:"Company"`
	MatchScore     string   `json:"Match Score"`
	RequiredSkills []string `json:"Required Skills"`
	MissingSkills  []string `json:"Missing Skills"`
}

type recommendationsData struct {
	Recommendations []recommendationItem `json:"recommendations"`
}

func writeCatalogCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	csv := "Job Title,Company,Required Skills\n" +
		"Data Scientist,TechCorp,\"Python, SQL, Machine Learning\"\n" +
		"Frontend Developer,WebDesign,\"JavaScript, React, CSS\"\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}

func newTestApp(t *testing.T, engine *usecase.RecommendationEngine) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())
	routes.NewRegistry(engine).Register(app)
	return app
}

func TestIntegration_RecommendationsEndpoint(t *testing.T) {
	source := catalog.NewCSVSource(writeCatalogCSV(t))
	engine := usecase.NewRecommendationEngine(source, "", 0, nil, nil)
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("engine start: %v", err)
	}
	app := newTestApp(t, engine)

	body, _ := json.Marshal(map[string]any{"skills": []string{"python", "sql"}, "top_k": 1})
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var data recommendationsData
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	if len(data.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(data.Recommendations))
	}
	top := data.Recommendations[0]
	if top.Title != "Data Scientist" {
		t.Fatalf("expected Data Scientist, got %s", top.Title)
	}
	if !strings.HasSuffix(top.MatchScore, "%") {
		t.Fatalf("match score %q is not a percentage string", top.MatchScore)
	}
	if len(top.MissingSkills) > 3 {
		t.Fatalf("missing skills exceed cap: %v", top.MissingSkills)
	}
	for _, s := range top.MissingSkills {
		if s == "python" || s == "sql" {
			t.Fatalf("missing skills contain a user skill: %s", s)
		}
	}
}

func TestIntegration_ModelNotLoaded(t *testing.T) {
	engine := usecase.NewRecommendationEngine(catalog.NewCSVSource("missing.csv"), "", 0, nil, nil)
	app := newTestApp(t, engine)

	body, _ := json.Marshal(map[string]any{"skills": []string{"python"}})
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}

func TestIntegration_HealthReflectsModelState(t *testing.T) {
	source := catalog.NewCSVSource(writeCatalogCSV(t))
	engine := usecase.NewRecommendationEngine(source, "", 0, nil, nil)
	app := newTestApp(t, engine)

	check := func(wantLoaded bool) {
		t.Helper()
		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		if err != nil {
			t.Fatalf("health request: %v", err)
		}
		defer resp.Body.Close()

		var sr semanticResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			t.Fatalf("decode: %v", err)
		}
		var data struct {
			ModelLoaded bool `json:"model_loaded"`
		}
		if err := json.Unmarshal(sr.Data, &data); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if data.ModelLoaded != wantLoaded {
			t.Fatalf("model_loaded = %v, want %v", data.ModelLoaded, wantLoaded)
		}
	}

	check(false)
	if err := engine.Start(context.Background()); err != nil {
		t.Fatalf("engine start: %v", err)
	}
	check(true)
}
