package commands

import (
	"errors"

	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/domain/verification"
	"meetup-capture/internal/infra"
	"meetup-capture/internal/pkg/errs"
)

var (
	ErrMeetupNotFound          = errs.New("meetup not found")
	ErrNotParticipant          = errs.New("user is not a participant of the meetup")
	ErrNotCodeHolder           = errs.New("user cannot show the code for this meetup")
	ErrMeetupAlreadyTerminal   = errs.New("meetup already terminal")
	ErrInvalidMeetupState      = errs.New("meetup does not accept this operation in its current state")
	ErrPickupNotInProgress     = errs.New("paired pickup is not in progress")
	ErrInvalidMeetup           = errs.New("invalid meetup")
	ErrDuplicateMeetup         = errs.New("meetup already exists for transaction")
	ErrInvalidCodeType         = errs.New("invalid code type")
	ErrInvalidCodeFormat       = errs.New("invalid code format")
	ErrCodeExpired             = errs.New("verification code expired")
	ErrCodeMismatch            = errs.New("verification code mismatch")
	ErrSelfVerification        = errs.New("self verification")
	ErrAlreadyConsumed         = errs.New("verification code already consumed")
	ErrRateLimited             = errs.New("too many failed attempts")
	ErrInvalidPaymentStatus    = errs.New("invalid payment status")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

var domainErrors = []struct {
	domain error
	mark   error
}{
	{meetup.ErrNotParticipant, ErrNotParticipant},
	{meetup.ErrNotCodeHolder, ErrNotCodeHolder},
	{meetup.ErrAlreadyTerminal, ErrMeetupAlreadyTerminal},
	{meetup.ErrInvalidState, ErrInvalidMeetupState},
	{meetup.ErrInvalidTransition, ErrInvalidMeetupState},
	{meetup.ErrInvalidKind, ErrInvalidMeetup},
	{meetup.ErrSameParty, ErrInvalidMeetup},
	{meetup.ErrNotPaired, ErrPickupNotInProgress},
	{verification.ErrInvalidCodeType, ErrInvalidCodeType},
	{verification.ErrInvalidCodeFormat, ErrInvalidCodeFormat},
	{verification.ErrCodeExpired, ErrCodeExpired},
	{verification.ErrCodeMismatch, ErrCodeMismatch},
	{verification.ErrSelfVerification, ErrSelfVerification},
	{verification.ErrAlreadyConsumed, ErrAlreadyConsumed},
	{verification.ErrRateLimited, ErrRateLimited},
	{payment.ErrInvalidStatus, ErrInvalidPaymentStatus},
}

// translate marks domain and repository failures with the command-level sentinel
// handlers switch on. Errors that are already marked pass through.
func translate(err error) error {
	if err == nil {
		return nil
	}
	for _, e := range domainErrors {
		if errors.Is(err, e.domain) {
			return errs.Mark(err, e.mark)
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrMeetupNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrDuplicateMeetup)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return err
}
