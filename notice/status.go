package notice

// Status is the coarse lifecycle state of a tender or lot.
type Status string

const (
	StatusPlanning     Status = "planning"
	StatusPlanned      Status = "planned"
	StatusActive       Status = "active"
	StatusCancelled    Status = "cancelled"
	StatusUnsuccessful Status = "unsuccessful"
	StatusComplete     Status = "complete"
	StatusWithdrawn    Status = "withdrawn"
)

// StatusDetails refines Status; "empty" means no pending sub-state.
type StatusDetails string

const (
	DetailsEmpty StatusDetails = "empty"
)

// StatePair is the (status, statusDetails) pair the engine treats as one
// lifecycle state.
type StatePair struct {
	Status  Status
	Details StatusDetails
}

// ActiveEmpty is the only pair a stage may be rolled over from, and the
// pair every lot must carry to survive a rollover.
var ActiveEmpty = StatePair{StatusActive, DetailsEmpty}

// Stage names a disclosure phase of a procurement process.
type Stage string

const (
	// StagePN is the early planning notice.
	StagePN Stage = "PN"
	// StagePIN is the prior information notice.
	StagePIN Stage = "PIN"
	// StageCN is the contract notice.
	StageCN Stage = "CN"
)

var stageInitial = map[Stage]StatePair{
	StagePN:  {StatusPlanning, DetailsEmpty},
	StagePIN: {StatusPlanned, DetailsEmpty},
	StageCN:  {StatusActive, DetailsEmpty},
}

// Predecessor of each derivable stage. PN opens a process and has none.
var derivesFrom = map[Stage]Stage{
	StagePIN: StagePN,
	StageCN:  StagePIN,
}

// InitialState returns the lifecycle pair a tender enters the stage with.
func InitialState(stage Stage) (StatePair, bool) {
	p, ok := stageInitial[stage]
	return p, ok
}

// DerivesFrom reports the stage a given stage is derived from.
func DerivesFrom(stage Stage) (Stage, bool) {
	from, ok := derivesFrom[stage]
	return from, ok
}

// ParseStage validates a stage name supplied by a caller.
func ParseStage(s string) (Stage, bool) {
	stage := Stage(s)
	_, ok := stageInitial[stage]
	return stage, ok
}

// RequireActive gates stage rollover: the tender must be exactly in the
// active/empty pair.
func RequireActive(t Tender) error {
	status, _ := t.Status()
	if status != string(StatusActive) {
		return ErrNotActive
	}
	details, _ := t.StatusDetails()
	if details != string(DetailsEmpty) {
		return ErrNotIntermediate
	}
	return nil
}
