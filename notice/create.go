package notice

import (
	"context"
	"encoding/json"
	"fmt"

	"noticeflow/record"
)

// CreateParams opens a process at its initial stage. The payload is the
// caller's tender; lifecycle fields must not be pre-assigned.
type CreateParams struct {
	Country string
	Stage   Stage
	Owner   string
	Tender  Tender
}

// Create opens a new process: it allocates the process id, assigns the
// stage's initial lifecycle pair to the tender and every lot, re-issues
// lot and item ids, and rewires item/document references from the caller's
// placeholder lot ids to the allocated ones.
func (s *Service) Create(ctx context.Context, params CreateParams) (Result, error) {
	initial, ok := InitialState(params.Stage)
	if !ok {
		return Result{}, fmt.Errorf("notice: unknown stage %q", params.Stage)
	}

	if err := rejectAssignedLifecycle(params.Tender); err != nil {
		return Result{}, err
	}

	tender := Tender(CloneTree(params.Tender))

	now := s.now()
	processID := s.alloc.NewProcessID(params.Country, now)
	tender.SetID(processID)
	tender.SetState(initial)

	for _, item := range tender.Items() {
		item.SetID(s.alloc.NewEntityID())
	}

	// One lot at a time: allocate the new id and rewrite every reference
	// to the old id before touching the next lot, so the old and new
	// identifier spaces cannot collide mid-pass.
	for _, lot := range tender.Lots() {
		oldID, ok := lot.ID()
		if !ok {
			return Result{}, ErrIdentifierIsNull
		}
		newID := s.alloc.NewEntityID()
		lot.SetID(newID)
		lot.SetState(initial)
		rewriteLotReferences(tender, oldID, newID)
	}

	if err := ValidateLotReferences(tender); err != nil {
		return Result{}, err
	}

	payload, err := json.Marshal(tender)
	if err != nil {
		return Result{}, fmt.Errorf("notice: marshal payload: %w", err)
	}

	rec := record.ProcessRecord{
		ProcessID: processID,
		Stage:     string(params.Stage),
		Token:     s.alloc.NewToken(),
		Owner:     params.Owner,
		CreatedAt: now,
		Payload:   payload,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Result{}, err
	}

	return Result{
		ProcessID: processID,
		Stage:     params.Stage,
		Token:     rec.Token,
		Tender:    tender,
	}, nil
}

// rejectAssignedLifecycle fails a fresh submission that pre-assigns any
// lifecycle field. Any non-null value counts, empty strings included.
// These checks run before any identifier is allocated.
func rejectAssignedLifecycle(t Tender) error {
	if hasNonNull(t, "id") {
		return ErrTenderIDNotNull
	}
	if hasNonNull(t, "status") {
		return ErrTenderStatusNotNull
	}
	if hasNonNull(t, "statusDetails") {
		return ErrTenderStatusDetailsNotNull
	}
	for _, lot := range t.Lots() {
		if hasNonNull(lot, "status") {
			return ErrLotStatusNotNull
		}
		if hasNonNull(lot, "statusDetails") {
			return ErrLotStatusDetailsNotNull
		}
	}
	return nil
}

// rewriteLotReferences repoints every item relatedLot and document
// relatedLots entry from oldID to newID.
func rewriteLotReferences(t Tender, oldID, newID string) {
	for _, item := range t.Items() {
		if ref, ok := item.RelatedLot(); ok && ref == oldID {
			item.SetRelatedLot(newID)
		}
	}
	for _, doc := range t.Documents() {
		ids := doc.RelatedLots()
		if len(ids) == 0 {
			continue
		}
		changed := false
		for i, id := range ids {
			if id == oldID {
				ids[i] = newID
				changed = true
			}
		}
		if changed {
			doc.SetRelatedLots(ids)
		}
	}
}
