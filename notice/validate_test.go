package notice

import "testing"

func tenderWithLots(lotIDs ...string) Tender {
	lots := make([]any, len(lotIDs))
	for i, id := range lotIDs {
		lots[i] = map[string]any{"id": id}
	}
	return Tender{"lots": lots}
}

func TestValidateLotReferences_DocumentReferencesDeclaredLots(t *testing.T) {
	tender := tenderWithLots("lot-1", "lot-2")
	tender["documents"] = []any{
		map[string]any{"id": "doc-1", "relatedLots": []any{"lot-1", "lot-2"}},
	}

	if err := ValidateLotReferences(tender); err != nil {
		t.Errorf("expected valid references, got %v", err)
	}
}

func TestValidateLotReferences_UnknownDocumentReference(t *testing.T) {
	tender := tenderWithLots("lot-1")
	tender["documents"] = []any{
		map[string]any{"id": "doc-1", "relatedLots": []any{"lot-9"}},
	}

	if err := ValidateLotReferences(tender); err != ErrInvalidLotsRelatedLots {
		t.Errorf("expected ErrInvalidLotsRelatedLots, got %v", err)
	}
}

func TestValidateLotReferences_DocumentsWithoutReferencesIgnored(t *testing.T) {
	tender := Tender{
		"documents": []any{
			map[string]any{"id": "doc-1"},
			map[string]any{"id": "doc-2", "relatedLots": []any{}},
		},
	}

	if err := ValidateLotReferences(tender); err != nil {
		t.Errorf("expected documents without references to pass, got %v", err)
	}
}

func TestValidateLotReferences_ItemDanglingReference(t *testing.T) {
	tender := tenderWithLots("lot-1")
	tender["items"] = []any{
		map[string]any{"id": "item-1", "relatedLot": "lot-2"},
	}

	if err := ValidateLotReferences(tender); err != ErrInvalidLotsRelatedLots {
		t.Errorf("expected ErrInvalidLotsRelatedLots, got %v", err)
	}
}

func TestValidateLotReferences_NeverMutates(t *testing.T) {
	tender := tenderWithLots("lot-1")
	tender["documents"] = []any{
		map[string]any{"id": "doc-1", "relatedLots": []any{"lot-1"}},
	}
	before := CloneTree(tender)

	if err := ValidateLotReferences(tender); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := CloneTree(tender)
	if len(before) != len(after) {
		t.Errorf("validator mutated the tender")
	}
	if before["documents"].([]any)[0].(map[string]any)["id"] != after["documents"].([]any)[0].(map[string]any)["id"] {
		t.Errorf("validator mutated document ids")
	}
}
