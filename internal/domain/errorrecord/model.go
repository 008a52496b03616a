package errorrecord

import (
	"time"
)

// DateLayout - формат, в котором дата уходит клиенту
const DateLayout = "2006-01-02"

// Record - запись об ошибке в хранилище
type Record struct {
	ID                   int64
	Description          string
	Category             string
	CustomerOverviewType string
	Date                 time.Time
	Count                int64
}

// Item - запись в том виде, в котором она отдается по API
type Item struct {
	ID                   int64  `json:"error_id" example:"1" doc:"ID записи"`
	Description          string `json:"error_description" doc:"Описание ошибки"`
	Category             string `json:"category" doc:"Категория"`
	CustomerOverviewType string `json:"customer_overview_type" doc:"Тип обзора клиента"`
	Date                 string `json:"error_date" example:"2024-03-15" doc:"Дата ошибки (YYYY-MM-DD)"`
	Count                int64  `json:"error_count" doc:"Количество ошибок"`
}

// Page - страница записей, посчитанная сервером
type Page struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// Input - поля записи так, как их прислал клиент (строками)
type Input struct {
	Description          string
	Category             string
	CustomerOverviewType string
	Date                 string
	Count                string
}

func (r Record) ToItem() Item {
	return Item{
		ID:                   r.ID,
		Description:          r.Description,
		Category:             r.Category,
		CustomerOverviewType: r.CustomerOverviewType,
		Date:                 r.Date.Format(DateLayout),
		Count:                r.Count,
	}
}
