package http_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
)

// findOpenAPISpec locates api/openapi.yaml by walking up from the test directory.
func findOpenAPISpec(t *testing.T) string {
	dir, _ := os.Getwd()

	for i := 0; i < 5; i++ {
		candidate := filepath.Join(dir, "api", "openapi.yaml")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("could not find api/openapi.yaml")
	return ""
}

func loadSpec(t *testing.T) *openapi3.T {
	t.Helper()
	data, err := os.ReadFile(findOpenAPISpec(t))
	if err != nil {
		t.Fatalf("failed to read openapi.yaml: %v", err)
	}

	loader := &openapi3.Loader{IsExternalRefsAllowed: false}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		t.Fatalf("failed to parse OpenAPI document: %v", err)
	}
	return spec
}

// TestOpenAPISpec validates the document and checks it covers every route.
func TestOpenAPISpec(t *testing.T) {
	spec := loadSpec(t)

	if err := spec.Validate(context.Background()); err != nil {
		t.Fatalf("OpenAPI validation failed: %v", err)
	}

	expectedPaths := []string{
		"/api/v1/",
		"/api/v1/uid",
		"/api/v1/distanceTo",
		"/api/v1/isCloseTo",
		"/api/v1/nextPosition",
		"/api/v1/isInRegion",
		"/graphql",
		"/ws",
		"/health",
		"/ready",
		"/metrics",
	}
	for _, path := range expectedPaths {
		if item := spec.Paths.Find(path); item == nil {
			t.Errorf("expected path %s not found", path)
		}
	}

	expectedSchemas := []string{
		"Position",
		"PositionInput",
		"DistanceRequest",
		"NextPositionRequest",
		"Region",
		"RegionRequest",
		"RegionCheckEvent",
		"APIError",
	}
	for _, schema := range expectedSchemas {
		if spec.Components.Schemas[schema] == nil {
			t.Errorf("expected schema %s not found", schema)
		}
	}

	t.Logf("OpenAPI document valid: %d paths, %d schemas", len(spec.Paths.Map()), len(spec.Components.Schemas))
}

// TestOpenAPIRejectionsHaveNoBody checks that geometry 400s are documented without content.
func TestOpenAPIRejectionsHaveNoBody(t *testing.T) {
	spec := loadSpec(t)

	for _, path := range []string{"/api/v1/distanceTo", "/api/v1/isCloseTo", "/api/v1/nextPosition", "/api/v1/isInRegion"} {
		op := spec.Paths.Find(path).Post
		if op == nil {
			t.Fatalf("%s: missing POST operation", path)
		}
		rejected := op.Responses.Status(400)
		if rejected == nil || rejected.Value == nil {
			t.Errorf("%s: missing 400 response", path)
			continue
		}
		if len(rejected.Value.Content) != 0 {
			t.Errorf("%s: 400 response should have no content", path)
		}
	}
}

func TestOpenAPIInfo(t *testing.T) {
	spec := loadSpec(t)

	if spec.Info.Title != "Drone Geometry API" {
		t.Errorf("expected title 'Drone Geometry API', got %q", spec.Info.Title)
	}
	if spec.Info.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", spec.Info.Version)
	}
	if spec.Info.Description == "" {
		t.Error("expected non-empty description")
	}
	if len(spec.Servers) == 0 {
		t.Fatal("expected at least one server")
	}

	t.Logf("OpenAPI Info: %s v%s @ %s", spec.Info.Title, spec.Info.Version, spec.Servers[0].URL)
}
