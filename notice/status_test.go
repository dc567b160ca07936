package notice

import "testing"

func TestInitialStatePerStage(t *testing.T) {
	cases := []struct {
		stage Stage
		want  StatePair
	}{
		{StagePN, StatePair{StatusPlanning, DetailsEmpty}},
		{StagePIN, StatePair{StatusPlanned, DetailsEmpty}},
		{StageCN, StatePair{StatusActive, DetailsEmpty}},
	}
	for _, tc := range cases {
		got, ok := InitialState(tc.stage)
		if !ok {
			t.Fatalf("expected initial state for %s", tc.stage)
		}
		if got != tc.want {
			t.Errorf("stage %s: expected %v, got %v", tc.stage, tc.want, got)
		}
	}

	if _, ok := InitialState(Stage("EV")); ok {
		t.Errorf("expected unknown stage to have no initial state")
	}
}

func TestDerivesFrom(t *testing.T) {
	if from, ok := DerivesFrom(StagePIN); !ok || from != StagePN {
		t.Errorf("expected PIN to derive from PN, got %v %v", from, ok)
	}
	if from, ok := DerivesFrom(StageCN); !ok || from != StagePIN {
		t.Errorf("expected CN to derive from PIN, got %v %v", from, ok)
	}
	if _, ok := DerivesFrom(StagePN); ok {
		t.Errorf("expected PN to have no predecessor")
	}
}

func TestRequireActive(t *testing.T) {
	tender := Tender{"status": "active", "statusDetails": "empty"}
	if err := RequireActive(tender); err != nil {
		t.Errorf("expected active/empty tender to pass, got %v", err)
	}

	tender = Tender{"status": "planning", "statusDetails": "empty"}
	if err := RequireActive(tender); err != ErrNotActive {
		t.Errorf("expected ErrNotActive, got %v", err)
	}

	tender = Tender{"status": "active", "statusDetails": "suspended"}
	if err := RequireActive(tender); err != ErrNotIntermediate {
		t.Errorf("expected ErrNotIntermediate, got %v", err)
	}
}
