package notice

// Error is a request-input or state-precondition rejection. The set below
// is closed: every failure a transition can produce is one of these, each
// with a stable code callers can match on. No partial write accompanies
// any of them.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return "notice: " + e.Code + ": " + e.Message
}

var (
	ErrDataNotFound = &Error{"data.notFound", "record not found for the requested process and stage"}
	ErrInvalidOwner = &Error{"auth.invalidOwner", "owner claim does not match the stored record"}
	ErrInvalidToken = &Error{"auth.invalidToken", "access token does not match the stored record"}

	ErrInvalidCpIDFromDto = &Error{"request.invalidCpid", "payload tender id does not match the predecessor record"}
	ErrInvalidStartDate   = &Error{"request.invalidStartDate", "asserted start date does not match the predecessor"}

	ErrTenderIDNotNull            = &Error{"create.tenderIdNotNull", "tender id must be empty on initial submission"}
	ErrTenderStatusNotNull        = &Error{"create.tenderStatusNotNull", "tender status must be empty on initial submission"}
	ErrTenderStatusDetailsNotNull = &Error{"create.tenderStatusDetailsNotNull", "tender statusDetails must be empty on initial submission"}
	ErrLotStatusNotNull           = &Error{"create.lotStatusNotNull", "lot status must be empty on initial submission"}
	ErrLotStatusDetailsNotNull    = &Error{"create.lotStatusDetailsNotNull", "lot statusDetails must be empty on initial submission"}

	ErrNotActive       = &Error{"state.notActive", "tender is not in the active status"}
	ErrNotIntermediate = &Error{"state.notIntermediate", "tender has a pending sub-state"}
	ErrNoActiveLots    = &Error{"state.noActiveLots", "tender has no active lots"}

	ErrInvalidLotsRelatedLots = &Error{"lots.invalidRelatedLots", "a related lot reference does not match any declared lot"}
	ErrIdentifierIsNull       = &Error{"request.identifierIsNull", "a required identifier is missing"}
)
