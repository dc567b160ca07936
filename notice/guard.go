package notice

import "noticeflow/record"

// Authorize validates the caller's owner and token claims against a stored
// record. The checks run in a fixed order: not-found first, so no
// ownership or token information leaks for keys that do not exist, then
// owner, then token.
func Authorize(rec record.ProcessRecord, owner, token string) error {
	if rec.ProcessID == "" {
		return ErrDataNotFound
	}
	if rec.Owner != owner {
		return ErrInvalidOwner
	}
	if rec.Token != token {
		return ErrInvalidToken
	}
	return nil
}
