package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fieldsYAML = `
fields:
  email:
    label: Email
    inputType: email
    validation:
      required: true
  pin:
    label: PIN
    inputType: password
`

const openapiYAML = `
openapi: 3.0.3
info:
  title: Accounts
  version: 1.0.0
paths: {}
components:
  schemas:
    Account:
      type: object
      required: [email]
      properties:
        email:
          type: string
          format: email
          title: Email address
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadStore_Config(t *testing.T) {
	flags := &globalFlags{config: writeFile(t, "fields.yaml", fieldsYAML)}
	store, err := flags.loadStore(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := strings.Join(store.Names(), ","); got != "email,pin" {
		t.Fatalf("names = %q", got)
	}
}

func TestLoadStore_ConfigDirectory(t *testing.T) {
	path := writeFile(t, "fields.yaml", fieldsYAML)
	flags := &globalFlags{config: filepath.Dir(path)}
	store, err := flags.loadStore(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := store.Field("pin"); !ok {
		t.Fatalf("pin missing")
	}
}

func TestLoadStore_OpenAPI(t *testing.T) {
	flags := &globalFlags{openapi: writeFile(t, "api.yaml", openapiYAML), schema: "Account"}
	store, err := flags.loadStore(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, ok := store.Field("email")
	if !ok {
		t.Fatalf("email missing")
	}
	if cfg.Label != "Email address" || cfg.InputType != "email" || !cfg.Validation.Required {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadStore_Errors(t *testing.T) {
	if _, err := (&globalFlags{}).loadStore(context.Background()); err != errNoSource {
		t.Fatalf("expected errNoSource, got %v", err)
	}
	if _, err := (&globalFlags{openapi: "api.yaml"}).loadStore(context.Background()); err == nil {
		t.Fatalf("expected missing schema error")
	}
}

func TestBuildField(t *testing.T) {
	flags := &globalFlags{config: writeFile(t, "fields.yaml", fieldsYAML)}
	store, err := flags.loadStore(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := buildField(store, ""); err == nil {
		t.Fatalf("expected ambiguity error with two fields")
	}
	if _, err := buildField(store, "missing"); err == nil {
		t.Fatalf("expected unknown field error")
	}
	f, err := buildField(store, "pin")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if f.Mounted() || f.Name() != "pin" {
		t.Fatalf("unexpected field: mounted=%v name=%q", f.Mounted(), f.Name())
	}
}

func TestRenderCommand(t *testing.T) {
	flags := &globalFlags{config: writeFile(t, "fields.yaml", fieldsYAML)}
	cmd := renderCmd(flags)
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--field", "email", "--renderer", "ansi", "--validate"})
	cmd.SetContext(context.Background())

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Email") {
		t.Fatalf("label missing from output:\n%s", out.String())
	}
}

func TestOpenAPICommand(t *testing.T) {
	flags := &globalFlags{openapi: writeFile(t, "api.yaml", openapiYAML), schema: "Account"}
	cmd := openapiCmd(flags)
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	cmd.SetContext(context.Background())

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "email:") || !strings.Contains(out.String(), "required: true") {
		t.Fatalf("unexpected yaml:\n%s", out.String())
	}
}
