package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CoinAccount struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Balance   int            `gorm:"not null;default:0"`
	History   datatypes.JSON `gorm:"type:jsonb"` // coinHistory ledger array
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (CoinAccount) TableName() string {
	return "coin_accounts"
}
