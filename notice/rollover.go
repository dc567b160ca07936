package notice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"noticeflow/record"
)

// RolloverParams rolls an active stage over into a new working stage of
// the same family, e.g. re-opening a contract notice after a partial
// cancellation.
type RolloverParams struct {
	ProcessID string
	FromStage Stage
	// NewStage is the working-stage name the filtered tender is persisted
	// under; it stays within the predecessor's stage family.
	NewStage string
	Owner    string
	Token    string
}

// Rollover filters the predecessor tender down to its active lots and the
// items and documents still attached to them, then persists the result
// under the new working stage. Unlike Create and Derive it carries the
// predecessor's access token over: a rollover continues the same stage
// family rather than opening a new one.
func (s *Service) Rollover(ctx context.Context, params RolloverParams) (Result, error) {
	if params.NewStage == "" || params.NewStage == string(params.FromStage) {
		return Result{}, fmt.Errorf("notice: invalid working stage %q", params.NewStage)
	}
	// Base stage names are reserved: their records may only be written by
	// Create and Derive, under their own tokens.
	if _, base := ParseStage(params.NewStage); base {
		return Result{}, fmt.Errorf("notice: working stage %q collides with a base stage", params.NewStage)
	}

	prev, err := s.loadAuthorized(ctx, params.ProcessID, params.FromStage, params.Owner, params.Token)
	if err != nil {
		return Result{}, err
	}

	// A working record in this stage family carries the predecessor's
	// token by construction, so a re-run may overwrite it. A record with
	// any other token is not ours to touch.
	existing, err := s.store.Get(ctx, params.ProcessID, params.NewStage)
	if err == nil {
		if existing.Token != prev.Token {
			return Result{}, ErrInvalidToken
		}
	} else if !errors.Is(err, record.ErrNotFound) {
		return Result{}, err
	}

	tender, err := decodeTender(prev.Payload)
	if err != nil {
		return Result{}, err
	}

	if err := RequireActive(tender); err != nil {
		return Result{}, err
	}

	surviving := filterActiveLots(tender)
	if len(surviving) == 0 {
		return Result{}, ErrNoActiveLots
	}
	survivors := make(map[string]struct{}, len(surviving))
	for _, lot := range surviving {
		if id, ok := lot.ID(); ok {
			survivors[id] = struct{}{}
		}
	}

	tender.SetLots(surviving)
	filterItems(tender, survivors)
	filterDocuments(tender, survivors)

	tender.SetState(ActiveEmpty)
	for _, lot := range tender.Lots() {
		lot.SetState(ActiveEmpty)
	}

	payload, err := json.Marshal(tender)
	if err != nil {
		return Result{}, fmt.Errorf("notice: marshal payload: %w", err)
	}

	rec := record.ProcessRecord{
		ProcessID: params.ProcessID,
		Stage:     params.NewStage,
		Token:     prev.Token,
		Owner:     params.Owner,
		CreatedAt: s.now(),
		Payload:   payload,
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return Result{}, err
	}

	return Result{
		ProcessID: params.ProcessID,
		Stage:     Stage(params.NewStage),
		Token:     rec.Token,
		Tender:    tender,
	}, nil
}

func filterActiveLots(t Tender) []Lot {
	var out []Lot
	for _, lot := range t.Lots() {
		if lot.InState(ActiveEmpty) {
			out = append(out, lot)
		}
	}
	return out
}

// filterItems drops items whose relatedLot is not among the survivors.
func filterItems(t Tender, survivors map[string]struct{}) {
	items := t.Items()
	if len(items) == 0 {
		return
	}
	kept := items[:0]
	for _, item := range items {
		ref, ok := item.RelatedLot()
		if !ok {
			continue
		}
		if _, live := survivors[ref]; live {
			kept = append(kept, item)
		}
	}
	t.SetItems(kept)
}

// filterDocuments keeps documents with no lot references at all and
// documents still attached to at least one surviving lot, reducing their
// relatedLots to the surviving ids so nothing dangles.
func filterDocuments(t Tender, survivors map[string]struct{}) {
	docs := t.Documents()
	if len(docs) == 0 {
		return
	}
	kept := docs[:0]
	for _, doc := range docs {
		refs := doc.RelatedLots()
		if len(refs) == 0 {
			kept = append(kept, doc)
			continue
		}
		var live []string
		for _, id := range refs {
			if _, ok := survivors[id]; ok {
				live = append(live, id)
			}
		}
		if len(live) == 0 {
			continue
		}
		doc.SetRelatedLots(live)
		kept = append(kept, doc)
	}
	t.SetDocuments(kept)
}
