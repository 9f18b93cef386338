package dto

import (
	"time"

	"github.com/google/uuid"
)

type UnlockAssessmentRequest struct {
	PositionId uuid.UUID `json:"positionId" validate:"required"`
}

type WalletBalanceResponse struct {
	Balance int `json:"balance"`
}

type CoinEntryResponse struct {
	Amount    int       `json:"amount"`
	Direction string    `json:"direction"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

type WalletHistoryResponse struct {
	Balance int                 `json:"balance"`
	History []CoinEntryResponse `json:"history"`
}
