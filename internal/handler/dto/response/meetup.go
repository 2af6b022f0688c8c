package response

import (
	"time"

	"meetup-capture/internal/domain/payment"
	"meetup-capture/internal/usecase/commands"
	"meetup-capture/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MeetupResponse struct {
	ID             uuid.UUID  `json:"id"`
	Kind           string     `json:"kind"`
	SellerID       uuid.UUID  `json:"sellerId"`
	BuyerID        uuid.UUID  `json:"buyerId"`
	TransactionID  *uuid.UUID `json:"transactionId,omitempty"`
	Status         string     `json:"status"`
	FailedAttempts int32      `json:"failedAttempts"`
	CodeType       *string    `json:"codeType,omitempty"`
	CodeCreatedBy  *uuid.UUID `json:"codeCreatedBy,omitempty"`
	CodeExpiresAt  *time.Time `json:"codeExpiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromMeetupView(v *queries.MeetupView) (*MeetupResponse, error) {
	var out MeetupResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	return &out, nil
}

type GeneratedCodeResponse struct {
	CodeValue    string    `json:"codeValue"`
	CodeType     string    `json:"codeType"`
	ExpiresAt    time.Time `json:"expiresAt"`
	MeetupStatus string    `json:"meetupStatus"`
}

func FromGeneratedCode(g *commands.GeneratedCode) *GeneratedCodeResponse {
	return &GeneratedCodeResponse{
		CodeValue:    g.CodeValue,
		CodeType:     g.CodeType.String(),
		ExpiresAt:    g.ExpiresAt,
		MeetupStatus: g.MeetupStatus.String(),
	}
}

type VerificationResultResponse struct {
	Verified          bool       `json:"verified"`
	MeetupID          uuid.UUID  `json:"meetupId"`
	MeetupStatus      string     `json:"meetupStatus"`
	TransactionID     *uuid.UUID `json:"transactionId,omitempty"`
	TransactionStatus *string    `json:"transactionStatus"`
	PaymentCaptured   bool       `json:"paymentCaptured"`
	IsPurchase        bool       `json:"isPurchase"`
	IsTransaction     bool       `json:"isTransaction"`
	CaptureRequested  bool       `json:"captureRequested"`
}

func FromVerificationResult(r *commands.VerificationResult) *VerificationResultResponse {
	out := &VerificationResultResponse{
		Verified:         r.Verified,
		MeetupID:         r.MeetupID,
		MeetupStatus:     r.MeetupStatus.String(),
		TransactionID:    r.TransactionID,
		PaymentCaptured:  r.PaymentCaptured,
		IsPurchase:       r.IsPurchase,
		IsTransaction:    r.IsTransaction,
		CaptureRequested: r.CaptureRequested,
	}
	if r.TransactionStatus != nil {
		s := r.TransactionStatus.String()
		out.TransactionStatus = &s
	}
	return out
}

type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	PaymentStatus string    `json:"paymentStatus"`
}

func FromTransaction(t *payment.Transaction) *TransactionResponse {
	return &TransactionResponse{ID: t.ID, PaymentStatus: t.PaymentStatus.String()}
}

// CaptureEvent is the payload of every capture-events SSE message.
type CaptureEvent struct {
	TransactionID uuid.UUID `json:"transactionId"`
	PaymentStatus string    `json:"paymentStatus,omitempty"`
	Outcome       string    `json:"outcome,omitempty"`
}
