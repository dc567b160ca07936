package notice

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"noticeflow/record"
)

// spyStore records Put calls so tests can assert nothing was written on a
// failed transition.
type spyStore struct {
	recs map[string]record.ProcessRecord
	puts int
}

func newSpyStore() *spyStore {
	return &spyStore{recs: make(map[string]record.ProcessRecord)}
}

func (s *spyStore) Get(ctx context.Context, processID, stage string) (record.ProcessRecord, error) {
	rec, ok := s.recs[processID+"/"+stage]
	if !ok {
		return record.ProcessRecord{}, record.ErrNotFound
	}
	return rec, nil
}

func (s *spyStore) Put(ctx context.Context, rec record.ProcessRecord) error {
	s.puts++
	s.recs[rec.ProcessID+"/"+rec.Stage] = rec
	return nil
}

func (s *spyStore) seed(t *testing.T, rec record.ProcessRecord, tender Tender) record.ProcessRecord {
	t.Helper()
	payload, err := json.Marshal(tender)
	if err != nil {
		t.Fatalf("marshal seed payload: %v", err)
	}
	rec.Payload = payload
	s.recs[rec.ProcessID+"/"+rec.Stage] = rec
	return rec
}

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func newTestService(store record.Store) *Service {
	svc := NewService(store, NewAllocator("ocds-t1s2t5"))
	svc.now = func() time.Time { return testNow }
	return svc
}

// testSubmission is a fresh initial-stage payload with placeholder ids.
func testSubmission() Tender {
	return Tender{
		"title":       "Road maintenance 2026",
		"description": "Resurfacing of regional roads",
		"classification": map[string]any{
			"scheme": "CPV",
			"id":     "45233142-6",
		},
		"procurementMethod":       "open",
		"mainProcurementCategory": "works",
		"procuringEntity": map[string]any{
			"name": "City Hall",
		},
		"tenderPeriod": map[string]any{
			"startDate": "2026-03-01T00:00:00Z",
		},
		"lots": []any{
			map[string]any{"id": "lot-1", "title": "Northern district"},
			map[string]any{"id": "lot-2", "title": "Southern district"},
		},
		"items": []any{
			map[string]any{"id": "item-1", "relatedLot": "lot-1"},
			map[string]any{"id": "item-2", "relatedLot": "lot-2"},
		},
		"documents": []any{
			map[string]any{"id": "doc-1", "relatedLots": []any{"lot-1"}},
			map[string]any{"id": "doc-2", "relatedLots": []any{"lot-1", "lot-2"}},
		},
	}
}
