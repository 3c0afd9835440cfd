package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveEnvVariables(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_KEY", "secret")

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"env present", "${GO_WEATHER_TEST_KEY:fallback}", "secret"},
		{"default used", "${GO_WEATHER_TEST_MISSING:fallback}", "fallback"},
		{"empty default", "${GO_WEATHER_TEST_MISSING:}", ""},
		{"no default", "${GO_WEATHER_TEST_MISSING}", ""},
		{"plain value", "http://api.example.com", "http://api.example.com"},
		{"embedded", "http://${GO_WEATHER_TEST_MISSING:localhost}:8080", "http://localhost:8080"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveEnvVariables(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInitReadsNestedKeys(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_PORT", "9999")

	dir := t.TempDir()
	path := filepath.Join(dir, "application.yml")
	content := []byte(`app:
  server:
    port: ${GO_WEATHER_TEST_PORT:8080}
  client:
    timeout: 3s
  flag: true
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	original := properties
	t.Cleanup(func() { properties = original })

	Init(path)

	if got := GetInt("app.server.port"); got != 9999 {
		t.Fatalf("expected port 9999, got %d", got)
	}
	if got := GetDuration("app.client.timeout"); got != 3*time.Second {
		t.Fatalf("expected 3s, got %v", got)
	}
	if !GetBool("app.flag") {
		t.Fatal("expected app.flag to be true")
	}
	if got := GetStringOrDefault("app.missing", "dflt"); got != "dflt" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestLocateWalksUp(t *testing.T) {
	path, err := Locate(defaultPropertiesPath)
	if err != nil {
		t.Fatalf("expected to find %s from the package directory: %v", defaultPropertiesPath, err)
	}
	if filepath.Base(path) != "application.yml" {
		t.Fatalf("unexpected path %s", path)
	}

	if _, err := Locate("configs/does-not-exist.yml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
