package converter

import (
	"meetup-capture/internal/domain/meetup"
	"meetup-capture/internal/domain/verification"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/pkg/pgconv"
	"meetup-capture/internal/usecase/shared"
)

func MeetupToCreateParams(m *meetup.Meetup) sqlc.CreateMeetupParams {
	return sqlc.CreateMeetupParams{
		ID:             m.ID(),
		Kind:           m.Kind().String(),
		SellerID:       m.SellerID(),
		BuyerID:        m.BuyerID(),
		TransactionID:  pgconv.UUIDPtrToPgtype(m.TransactionID()),
		Status:         m.Status().String(),
		FailedAttempts: pgconv.IntToInt32(m.FailedAttempts()),
		LastFailedAt:   pgconv.TimePtrToPgtype(m.LastFailedAt()),
		CreatedAt:      pgconv.TimeToPgtype(m.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

func MeetupToStateParams(m *meetup.Meetup) sqlc.UpdateMeetupStateParams {
	return sqlc.UpdateMeetupStateParams{
		ID:             m.ID(),
		Status:         m.Status().String(),
		FailedAttempts: pgconv.IntToInt32(m.FailedAttempts()),
		LastFailedAt:   pgconv.TimePtrToPgtype(m.LastFailedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(m.UpdatedAt()),
	}
}

// MeetupFromRow trusts the table's CHECK constraints for kind and status.
func MeetupFromRow(row sqlc.Meetups) *meetup.Meetup {
	return meetup.ReconstructMeetup(
		row.ID,
		meetup.Kind(row.Kind),
		row.SellerID,
		row.BuyerID,
		pgconv.UUIDPtrFromPgtype(row.TransactionID),
		meetup.Status(row.Status),
		int(row.FailedAttempts),
		pgconv.TimePtrFromPgtype(row.LastFailedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MeetupSnapshotFromRow(row sqlc.Meetups) shared.MeetupSnapshot {
	return shared.MeetupSnapshot{
		ID:             row.ID,
		Kind:           row.Kind,
		SellerID:       row.SellerID,
		BuyerID:        row.BuyerID,
		TransactionID:  pgconv.UUIDPtrFromPgtype(row.TransactionID),
		Status:         row.Status,
		FailedAttempts: int(row.FailedAttempts),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func CodeToInsertParams(c *verification.Code) sqlc.InsertVerificationCodeParams {
	return sqlc.InsertVerificationCodeParams{
		ID:         c.ID(),
		MeetupID:   c.MeetupID(),
		CodeType:   c.Type().String(),
		CodeDigest: c.Digest(),
		CreatedBy:  c.CreatedBy(),
		CreatedAt:  pgconv.TimeToPgtype(c.CreatedAt()),
		ExpiresAt:  pgconv.TimeToPgtype(c.ExpiresAt()),
	}
}

func CodeFromRow(row sqlc.VerificationCodes) *verification.Code {
	return verification.ReconstructCode(
		row.ID,
		row.MeetupID,
		verification.CodeType(row.CodeType),
		row.CodeDigest,
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.ExpiresAt),
		pgconv.TimePtrFromPgtype(row.ConsumedAt),
		pgconv.UUIDPtrFromPgtype(row.ConsumedBy),
		pgconv.TimePtrFromPgtype(row.SupersededAt),
	)
}

func CaptureRequestFromRow(row sqlc.CaptureRequests) shared.CaptureRequest {
	return shared.CaptureRequest{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		MeetupID:      row.MeetupID,
		Status:        shared.CaptureRequestStatus(row.Status),
		Attempts:      int(row.Attempts),
		LastError:     pgconv.StringPtrFromPgtype(row.LastError),
		RunAt:         pgconv.TimeFromPgtype(row.RunAt),
	}
}
