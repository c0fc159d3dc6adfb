package fieldconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/fieldconfig"
)

const yamlDoc = `
fields:
  email:
    label: Email
    placeholder: you@example.com
    inputType: email
    color: "#ff5722"
    validation:
      required: true
      maxLength: 64
  pin:
    label: PIN
    inputType: password
    value: "1234"
    dark: true
    style:
      width: 120
`

const jsonDoc = `{
  "fields": {
    "age": {"label": "Age", "inputType": "number"}
  }
}`

func TestLoadFS_YAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"fields/account.yaml": {Data: []byte(yamlDoc)},
		"fields/profile.json": {Data: []byte(jsonDoc)},
		"fields/README.md":    {Data: []byte("ignored")},
	}

	store, err := fieldconfig.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"age", "email", "pin"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	email, ok := store.Field("email")
	if !ok {
		t.Fatalf("email missing")
	}
	if email.Source != "fields/account.yaml" {
		t.Fatalf("source = %q", email.Source)
	}
	if !email.Validation.Required || email.Validation.MaxLength == nil || *email.Validation.MaxLength != 64 {
		t.Fatalf("validation not parsed: %+v", email.Validation)
	}

	pin, _ := store.Field("pin")
	if !pin.Dark || pin.Value != "1234" || pin.Style["width"] != 120 {
		t.Fatalf("pin not parsed: %+v", pin)
	}
}

func TestLoadFS_NilAndEmpty(t *testing.T) {
	store, err := fieldconfig.LoadFS(nil)
	if err != nil || !store.Empty() {
		t.Fatalf("nil fs should yield empty store, got %v", err)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":       "   ",
		"invalid":     "fields: [unterminated",
		"kind":        "fields:\n  a:\n    inputType: date\n",
		"pattern":     "fields:\n  a:\n    validation:\n      pattern: \"(\"\n",
		"empty name":  "fields:\n  \"  \":\n    label: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"f.yaml": {Data: []byte(doc)}}
			if _, err := fieldconfig.LoadFS(fsys); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadFS_DuplicateAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": {Data: []byte(jsonDoc)},
		"b.json": {Data: []byte(jsonDoc)},
	}
	_, err := fieldconfig.LoadFS(fsys)
	if err == nil || !strings.Contains(err.Error(), "duplicate field \"age\"") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fields.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := fieldconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := store.Field("email"); !ok {
		t.Fatalf("email missing")
	}

	if _, err := fieldconfig.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFieldConfig_BuildsWorkingField(t *testing.T) {
	store, err := fieldconfig.Parse([]byte(yamlDoc), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, _ := store.Field("email")

	f, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f.Mount()

	got := f.Config()
	if got.Name != "email" || got.Label != "Email" || got.Kind != field.KindEmail || got.Color != "#ff5722" {
		t.Fatalf("config not applied: %+v", got)
	}

	if f.Validate() {
		t.Fatalf("empty required email should fail")
	}
	f.Input(field.InputEvent{Value: "me@example.com"})
	if !f.Validate() {
		t.Fatalf("valid email should pass")
	}
}

func TestFieldConfig_RulesKeepKindFormat(t *testing.T) {
	store, err := fieldconfig.Parse([]byte("fields:\n  email:\n    inputType: email\n    validation:\n      required: true\n"), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, _ := store.Field("email")
	f, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f.Mount()

	f.SetValue("not-an-email")
	if f.Validate() {
		t.Fatalf("required email should reject malformed input")
	}
	f.SetValue("")
	if f.Validate() {
		t.Fatalf("required email should reject blank input")
	}
	f.SetValue("me@example.com")
	if !f.Validate() {
		t.Fatalf("well formed address should pass")
	}
}

func TestFieldConfig_KindDefaultPredicate(t *testing.T) {
	store, err := fieldconfig.Parse([]byte(jsonDoc), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, _ := store.Field("age")
	f, err := cfg.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	f.Mount()
	f.SetValue("abc")
	if f.Validate() {
		t.Fatalf("number kind should reject non-numeric input")
	}
	f.SetValue("42")
	if !f.Validate() {
		t.Fatalf("number kind should accept 42")
	}
}

func TestStore_MarshalRoundTrip(t *testing.T) {
	store, err := fieldconfig.Parse([]byte(yamlDoc), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := store.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again, err := fieldconfig.Parse(out, "marshalled")
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, out)
	}
	if diff := cmp.Diff(store.Names(), again.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}
