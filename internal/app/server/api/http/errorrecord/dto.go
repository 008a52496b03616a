package errorrecord

import (
	"encoding/json"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"nceerrors/internal/domain/errorrecord"
)

type listInput struct {
	Page  int `query:"page" default:"1" doc:"Номер страницы, приводится к [1, последняя]"`
	Limit int `query:"limit" doc:"Размер страницы, по умолчанию DEFAULT_PAGE_LIMIT"`
}

type listOutput struct {
	Body errorrecord.Page
}

type findInput struct {
	ID int64 `path:"id" example:"1" doc:"ID записи"`
}

type findOutput struct {
	Body errorrecord.Item
}

type createInput struct {
	Body request
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"ID записи"`
	Body request
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"ID записи"`
}

type createOutput struct {
	Body createResponse
}

type output struct {
	Body response
}

// Поля необязательны на уровне схемы: отсутствие проверяет сервис
// и отвечает 400 "Missing required fields"
type request struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Description          string     `json:"error_description,omitempty" required:"false" doc:"Описание ошибки"`
	Category             string     `json:"category,omitempty" required:"false" doc:"Категория"`
	CustomerOverviewType string     `json:"customer_overview_type,omitempty" required:"false" doc:"Тип обзора клиента"`
	Date                 string     `json:"error_date,omitempty" required:"false" doc:"YYYY-MM-DD, DD-MM-YYYY или DD/MM/YYYY"`
	Count                countValue `json:"error_count,omitempty" required:"false" doc:"Целое число или строка с целым числом"`
}

func (r request) toInput() errorrecord.Input {
	return errorrecord.Input{
		Description:          r.Description,
		Category:             r.Category,
		CustomerOverviewType: r.CustomerOverviewType,
		Date:                 r.Date,
		Count:                string(r.Count),
	}
}

type createResponse struct {
	Message string `json:"message" example:"Created"`
	ID      int64  `json:"error_id" example:"1"`
}

type response struct {
	Message string `json:"message" example:"Updated"`
}

// countValue принимает error_count и числом, и строкой
type countValue string

func (c *countValue) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*c = ""
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = countValue(s)
		return nil
	}

	*c = countValue(raw)
	return nil
}

func (countValue) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Количество ошибок",
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
	}
}
