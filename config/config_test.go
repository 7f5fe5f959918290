package config

import (
	"strings"
	"testing"
)

func TestValidateYAMLContent_DefaultsApply(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(""))
	if err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.City.Fallback != "New York" {
		t.Fatalf("unexpected fallback: %q", cfg.City.Fallback)
	}
	if cfg.Web.ListenAddr != "127.0.0.1:7878" {
		t.Fatalf("unexpected listen addr: %q", cfg.Web.ListenAddr)
	}
	if !cfg.Import.AutoStatsAfterImport {
		t.Fatalf("expected auto stats default on")
	}
	if cfg.Import.MergeByDefault {
		t.Fatalf("expected merge default off")
	}
}

func TestValidateYAMLContent_ExampleTemplateIsValid(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("example template must validate: %v", err)
	}
}

func TestValidateYAMLContent_OverridesApply(t *testing.T) {
	t.Parallel()

	content := `
city:
  fallback: "Lisbon"
  corrections:
    kualalumpur: "Kuala Lumpur"
import:
  merge_by_default: true
web:
  listen_addr: "127.0.0.1:9000"
`
	cfg, err := ValidateYAMLContent([]byte(content))
	if err != nil {
		t.Fatalf("validate config: %v", err)
	}
	if cfg.City.Fallback != "Lisbon" {
		t.Fatalf("unexpected fallback: %q", cfg.City.Fallback)
	}
	if cfg.City.Corrections["kualalumpur"] != "Kuala Lumpur" {
		t.Fatalf("unexpected corrections: %v", cfg.City.Corrections)
	}
	if !cfg.Import.MergeByDefault {
		t.Fatalf("merge override not applied")
	}
	if cfg.Web.ListenAddr != "127.0.0.1:9000" {
		t.Fatalf("listen addr override not applied: %q", cfg.Web.ListenAddr)
	}
}

func TestValidateYAMLContent_RejectsBadListenAddr(t *testing.T) {
	t.Parallel()

	content := `
web:
  listen_addr: "not-an-address"
`
	_, err := ValidateYAMLContent([]byte(content))
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateYAMLContent_RejectsBadCorrectionKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
	}{
		{
			name: "uppercase key",
			content: `
city:
  corrections:
    NewYork: "New York"
`,
		},
		{
			name: "separator in key",
			content: `
city:
  corrections:
    new-york: "New York"
`,
		},
		{
			name: "empty value",
			content: `
city:
  corrections:
    newyork: ""
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ValidateYAMLContent([]byte(tc.content)); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
