package request

import (
	"meetup-capture/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateMeetupRequest struct {
	Kind          string     `json:"kind" binding:"required,oneof=sale pickup return"`
	SellerID      uuid.UUID  `json:"sellerId" binding:"required"`
	BuyerID       uuid.UUID  `json:"buyerId" binding:"required"`
	TransactionID *uuid.UUID `json:"transactionId,omitempty"`
}

func (r CreateMeetupRequest) ToCommand() commands.CreateMeetupRequest {
	return commands.CreateMeetupRequest{
		Kind:          r.Kind,
		SellerID:      r.SellerID,
		BuyerID:       r.BuyerID,
		TransactionID: r.TransactionID,
	}
}

type GenerateCodeRequest struct {
	CodeType string `json:"codeType" binding:"required,oneof=pin qr"`
}

type VerifyCodeRequest struct {
	CodeValue string `json:"codeValue" binding:"required,max=64"`
}

type PaymentWebhookRequest struct {
	TransactionID uuid.UUID `json:"transactionId" binding:"required"`
	PaymentStatus string    `json:"paymentStatus" binding:"required,oneof=pending authorized captured failed"`
}
