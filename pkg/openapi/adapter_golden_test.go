package openapi_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-textfield/pkg/testsupport"
)

func TestAdapterFieldsFromDocument_Golden(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "accounts.yaml"))

	store, err := newAdapter(nil).FieldsFromDocument(testsupport.Context(), doc, "Account")
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	got := testsupport.StoreConfigs(store)

	goldenPath := filepath.Join("testdata", "accounts.fields.json")
	testsupport.WriteGolden(t, goldenPath, got)
	want := testsupport.MustLoadFieldConfigs(t, goldenPath)

	if diff := testsupport.CompareFieldConfigs(want, got); diff != "" {
		t.Fatalf("field configs mismatch (-want +got):\n%s", diff)
	}
	for name, cfg := range got {
		if cfg.Source != doc.Location() {
			t.Fatalf("%s: source = %q, want %q", name, cfg.Source, doc.Location())
		}
	}
}
