// Where: cli/internal/domain/template/renderer_test.go
// What: Tests for the template store.
// Why: Ensure every variant is registered and lookups fail loudly.
package template

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultStoreRegistersElevenVariants(t *testing.T) {
	ids, err := Default().IDs()
	if err != nil {
		t.Fatalf("list ids: %v", err)
	}
	want := []string{
		"info/github-flutter-signed",
		"info/github-flutter-unsigned",
		"info/github-native-signed",
		"info/github-native-unsigned",
		"info/github-react-native-signed",
		"workflows/github-flutter-signed",
		"workflows/github-flutter-unsigned",
		"workflows/github-native-signed",
		"workflows/github-native-unsigned",
		"workflows/github-react-native-signed",
		"workflows/github-react-native-unsigned",
	}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("registered ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderUnknownVariant(t *testing.T) {
	_, err := Default().Render("workflows/github-ios-signed", map[string]any{})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderRejectsInvalidIDs(t *testing.T) {
	for _, id := range []string{"", "github-native-signed", "partials/steps", "workflows/a/b", "workflows/"} {
		t.Run(id, func(t *testing.T) {
			_, err := Default().Render(id, nil)
			if !errors.Is(err, ErrInvalidVariantID) && !errors.Is(err, ErrTemplateNotFound) {
				t.Fatalf("expected lookup error for %q, got %v", id, err)
			}
		})
	}
}

func TestRenderUsesSprigAndPartials(t *testing.T) {
	fsys := fstest.MapFS{
		"tpl/workflows/demo.tmpl": {Data: []byte(`name: [[ .Title | upper ]][[ template "tail" . ]]`)},
		"tpl/partials/common.tmpl": {Data: []byte(`[[ define "tail" ]] (${{ github.ref }})[[ end ]]`)},
	}
	store := NewStore(fsys, "tpl")
	got, err := store.Render("workflows/demo", map[string]any{"Title": "demo"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "name: DEMO (${{ github.ref }})" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderMissingParamFails(t *testing.T) {
	fsys := fstest.MapFS{
		"tpl/info/demo.tmpl": {Data: []byte(`[[ .BuildVariantName ]]`)},
	}
	store := NewStore(fsys, "tpl")
	_, err := store.Render("info/demo", map[string]any{"ShowVersions": true})
	if err == nil {
		t.Fatalf("expected error for undeclared param")
	}
	if !strings.Contains(err.Error(), "info/demo") {
		t.Fatalf("expected variant id in error, got %v", err)
	}
}

func TestRenderMalformedTemplateFails(t *testing.T) {
	fsys := fstest.MapFS{
		"tpl/workflows/broken.tmpl": {Data: []byte(`[[ if .ShowVersions ]]`)},
	}
	store := NewStore(fsys, "tpl")
	if _, err := store.Render("workflows/broken", map[string]any{"ShowVersions": true}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestRenderConcurrentReads(t *testing.T) {
	store := NewStore(fstest.MapFS{
		"tpl/workflows/demo.tmpl": {Data: []byte(`[[ .Title ]]`)},
	}, "tpl")

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := store.Render("workflows/demo", map[string]any{"Title": "same"})
			if err != nil {
				errs <- err
				return
			}
			if got != "same" {
				errs <- errors.New("unexpected output " + got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent render: %v", err)
	}
}
