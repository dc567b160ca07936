package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"noticeflow/record"
)

// Fields a derived stage carries forward from its predecessor verbatim.
// Everything else comes from the caller's payload when present.
var carriedFields = []string{
	"title",
	"description",
	"classification",
	"mainProcurementCategory",
	"procurementMethod",
	"procurementMethodDetails",
	"procuringEntity",
	"legalBasis",
	"tenderPeriod",
	"lots",
	"items",
}

// DeriveParams derives a new stage from a stored predecessor stage of the
// same process.
type DeriveParams struct {
	ProcessID string
	FromStage Stage
	NewStage  Stage
	Owner     string
	Token     string
	// StartDate must match the predecessor tender's pinned
	// tenderPeriod.startDate; a stale payload is rejected.
	StartDate time.Time
	Tender    Tender
}

// Derive builds the next stage's tender from the predecessor plus the
// caller's stage-specific overlays, resets lifecycle statuses to the new
// stage's initial pair, validates lot references and persists under a
// freshly minted token.
func (s *Service) Derive(ctx context.Context, params DeriveParams) (Result, error) {
	initial, ok := InitialState(params.NewStage)
	if !ok {
		return Result{}, fmt.Errorf("notice: unknown stage %q", params.NewStage)
	}
	if from, ok := DerivesFrom(params.NewStage); !ok || from != params.FromStage {
		return Result{}, fmt.Errorf("notice: stage %s is not derived from %s", params.NewStage, params.FromStage)
	}

	prev, err := s.loadAuthorized(ctx, params.ProcessID, params.FromStage, params.Owner, params.Token)
	if err != nil {
		return Result{}, err
	}

	prevTender, err := decodeTender(prev.Payload)
	if err != nil {
		return Result{}, err
	}

	declaredID, ok := params.Tender.ID()
	if !ok {
		return Result{}, ErrIdentifierIsNull
	}
	prevID, _ := prevTender.ID()
	if declaredID != prevID {
		return Result{}, ErrInvalidCpIDFromDto
	}

	if err := checkStartDate(prevTender, params.StartDate); err != nil {
		return Result{}, err
	}

	// The predecessor is authoritative for the carried fields; the
	// caller's payload supplies the stage-specific rest. Carried keys are
	// stripped from the caller's side first, so a caller cannot supply a
	// carried field the predecessor happens to lack.
	base := CloneTree(params.Tender)
	overlay := make(map[string]any, len(carriedFields))
	for _, k := range carriedFields {
		delete(base, k)
		if v, ok := prevTender[k]; ok {
			overlay[k] = v
		}
	}
	tender := Tender(Merge(base, overlay))

	tender.SetID(params.ProcessID)
	tender.SetState(initial)
	for _, lot := range tender.Lots() {
		lot.SetState(initial)
	}

	if err := ValidateLotReferences(tender); err != nil {
		return Result{}, err
	}

	payload, err := json.Marshal(tender)
	if err != nil {
		return Result{}, fmt.Errorf("notice: marshal payload: %w", err)
	}

	rec := record.ProcessRecord{
		ProcessID: params.ProcessID,
		Stage:     string(params.NewStage),
		Token:     s.alloc.NewToken(),
		Owner:     params.Owner,
		CreatedAt: s.now(),
		Payload:   payload,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Result{}, err
	}

	return Result{
		ProcessID: params.ProcessID,
		Stage:     params.NewStage,
		Token:     rec.Token,
		Tender:    tender,
	}, nil
}

func (s *Service) loadAuthorized(ctx context.Context, processID string, stage Stage, owner, token string) (record.ProcessRecord, error) {
	rec, err := s.store.Get(ctx, processID, string(stage))
	if err != nil {
		if errors.Is(err, record.ErrNotFound) {
			return record.ProcessRecord{}, ErrDataNotFound
		}
		return record.ProcessRecord{}, err
	}
	if err := Authorize(rec, owner, token); err != nil {
		return record.ProcessRecord{}, err
	}
	return rec, nil
}

func checkStartDate(prev Tender, asserted time.Time) error {
	pinned, ok := prev.StartDate()
	if !ok {
		return ErrInvalidStartDate
	}
	pinnedTime, err := time.Parse(time.RFC3339, pinned)
	if err != nil {
		return ErrInvalidStartDate
	}
	if !pinnedTime.Equal(asserted) {
		return ErrInvalidStartDate
	}
	return nil
}

func decodeTender(payload []byte) (Tender, error) {
	var t Tender
	if err := json.Unmarshal(payload, &t); err != nil {
		return nil, fmt.Errorf("notice: decode stored payload: %w", err)
	}
	return t, nil
}
