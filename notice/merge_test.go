package notice

import (
	"reflect"
	"testing"
)

func TestMergeOverwritesNonNullFields(t *testing.T) {
	base := map[string]any{
		"title":       "old title",
		"description": "keep me",
	}
	patch := map[string]any{
		"title": "new title",
	}

	got := Merge(base, patch)

	if got["title"] != "new title" {
		t.Errorf("expected patched title, got %v", got["title"])
	}
	if got["description"] != "keep me" {
		t.Errorf("expected base description preserved, got %v", got["description"])
	}
}

func TestMergeNullPreservesBaseValue(t *testing.T) {
	base := map[string]any{"title": "stored"}
	patch := map[string]any{"title": nil}

	got := Merge(base, patch)

	if got["title"] != "stored" {
		t.Errorf("expected null patch field to preserve base value, got %v", got["title"])
	}
}

func TestMergeNestedObjects(t *testing.T) {
	base := map[string]any{
		"procuringEntity": map[string]any{
			"name":    "City Hall",
			"address": map[string]any{"locality": "Chisinau"},
		},
	}
	patch := map[string]any{
		"procuringEntity": map[string]any{
			"name": "Regional Council",
		},
	}

	got := Merge(base, patch)

	entity := got["procuringEntity"].(map[string]any)
	if entity["name"] != "Regional Council" {
		t.Errorf("expected nested overwrite, got %v", entity["name"])
	}
	address := entity["address"].(map[string]any)
	if address["locality"] != "Chisinau" {
		t.Errorf("expected untouched nested field preserved, got %v", address["locality"])
	}
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	base := map[string]any{"submissionLanguages": []any{"ro", "ru"}}
	patch := map[string]any{"submissionLanguages": []any{"en"}}

	got := Merge(base, patch)

	langs := got["submissionLanguages"].([]any)
	if len(langs) != 1 || langs[0] != "en" {
		t.Errorf("expected array replaced wholesale, got %v", langs)
	}
}

func TestMergeEmptyPatchIsNoOp(t *testing.T) {
	base := map[string]any{
		"title": "unchanged",
		"lots":  []any{map[string]any{"id": "lot-1"}},
	}

	got := Merge(base, map[string]any{})

	if !reflect.DeepEqual(got, base) {
		t.Errorf("expected empty patch to be a no-op, got %v", got)
	}
}

func TestMergeIdempotent(t *testing.T) {
	base := map[string]any{
		"title": "stored",
		"classification": map[string]any{
			"scheme": "CPV",
			"id":     "45233142-6",
		},
		"lots": []any{map[string]any{"id": "lot-1"}},
	}
	patch := map[string]any{
		"title":          "patched",
		"classification": map[string]any{"id": "45233141-9"},
		"lots":           []any{map[string]any{"id": "lot-2"}},
		"missing":        nil,
	}

	once := Merge(base, patch)
	twice := Merge(once, patch)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected merge to be idempotent:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	base := map[string]any{"nested": map[string]any{"k": "v"}}
	patch := map[string]any{"arr": []any{map[string]any{"id": "a"}}}

	got := Merge(base, patch)

	got["nested"].(map[string]any)["k"] = "mutated"
	got["arr"].([]any)[0].(map[string]any)["id"] = "mutated"

	if base["nested"].(map[string]any)["k"] != "v" {
		t.Errorf("merge result aliases base")
	}
	if patch["arr"].([]any)[0].(map[string]any)["id"] != "a" {
		t.Errorf("merge result aliases patch")
	}
}
