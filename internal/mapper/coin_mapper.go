package mapper

import (
	"encoding/json"
	"time"

	"hireflow-be/internal/entity"
	"hireflow-be/internal/model"
)

type CoinMapper struct{}

func NewCoinMapper() *CoinMapper {
	return &CoinMapper{}
}

func (m *CoinMapper) ToEntity(a *model.CoinAccount) *entity.CoinAccount {
	if a == nil {
		return nil
	}

	var history []entity.CoinEntry
	if len(a.History) > 0 {
		_ = json.Unmarshal(a.History, &history)
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.CoinAccount{
		Id:        a.Id,
		Balance:   a.Balance,
		History:   history,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *CoinMapper) ToModel(a *entity.CoinAccount) *model.CoinAccount {
	if a == nil {
		return nil
	}

	var history []byte
	if len(a.History) > 0 {
		history, _ = json.Marshal(a.History)
	}

	out := &model.CoinAccount{
		Id:        a.Id,
		Balance:   a.Balance,
		History:   history,
		CreatedAt: a.CreatedAt,
	}
	if a.UpdatedAt != nil {
		out.UpdatedAt = *a.UpdatedAt
	}
	return out
}
