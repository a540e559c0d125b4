package dto

import (
	"tavolo/internal/domains/table/model"
	"tavolo/shared"
	gDto "tavolo/shared/dto"
	gModel "tavolo/shared/model"
	"tavolo/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateTableRequest struct {
	TableNumber int     `json:"table_number" validate:"required,gte=1"`
	Capacity    int     `json:"capacity"     validate:"required,gte=1"`
	Status      string  `json:"status"       validate:"omitempty,oneof=available unavailable"`
	Pairing     []int64 `json:"pairing"      validate:"omitempty,dive,gte=1"`
}

func (c *CreateTableRequest) ToModel(actor string) model.Table {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Table{
		ID:          uuid.NewString(),
		TableNumber: c.TableNumber,
		Capacity:    c.Capacity,
		Status:      status,
		Pairing:     pq.Int64Array(c.Pairing),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateTableRequest struct {
	Capacity int           `db:"capacity" json:"capacity" validate:"omitempty,gte=1"`
	Status   string        `db:"status"   json:"status"   validate:"omitempty,oneof=available unavailable"`
	Pairing  pq.Int64Array `db:"pairing"  json:"pairing"  validate:"omitempty,dive,gte=1"`
}

type TableResponse struct {
	ID          string  `json:"id"`
	TableNumber int     `json:"table_number"`
	Capacity    int     `json:"capacity"`
	Status      string  `json:"status"`
	Pairing     []int64 `json:"pairing"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(model model.Table) {
	r.ID = model.ID
	r.TableNumber = model.TableNumber
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Pairing = model.Pairing
	r.Metadata.FromModel(model.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(models []model.Table, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(models))
	for i, mod := range models {
		r.Tables[i].FromModel(mod)
	}
}
