package client

import (
	"strconv"
	"strings"
)

// ErrorRecord запись об ошибке в том виде, в котором ее отдает сервер
type ErrorRecord struct {
	ID                   *int64 `json:"error_id"`
	Description          string `json:"error_description"`
	Category             string `json:"category"`
	CustomerOverviewType string `json:"customer_overview_type"`
	Date                 string `json:"error_date"`
	Count                *int64 `json:"error_count"`
}

// RecordID идентификатор записи, 0 если сервер его не прислал
func (r ErrorRecord) RecordID() int64 {
	if r.ID == nil {
		return 0
	}
	return *r.ID
}

// DateOnly дата в формате YYYY-MM-DD без времени
func (r ErrorRecord) DateOnly() string {
	if len(r.Date) > 10 {
		return r.Date[:10]
	}
	return r.Date
}

// CountText количество строкой, пусто если не задано
func (r ErrorRecord) CountText() string {
	if r.Count == nil {
		return ""
	}
	return strconv.FormatInt(*r.Count, 10)
}

// Имена полей черновика совпадают с именами на проводе
const (
	FieldDescription          = "error_description"
	FieldCategory             = "category"
	FieldCustomerOverviewType = "customer_overview_type"
	FieldDate                 = "error_date"
	FieldCount                = "error_count"
)

// DraftFields порядок полей формы
var DraftFields = []string{
	FieldDescription,
	FieldCategory,
	FieldCustomerOverviewType,
	FieldDate,
	FieldCount,
}

// Draft редактируемые поля записи
type Draft struct {
	Description          string `json:"error_description"`
	Category             string `json:"category"`
	CustomerOverviewType string `json:"customer_overview_type"`
	Date                 string `json:"error_date"`
	Count                string `json:"error_count"`
}

// Get значение поля по имени
func (d Draft) Get(name string) (string, bool) {
	switch name {
	case FieldDescription:
		return d.Description, true
	case FieldCategory:
		return d.Category, true
	case FieldCustomerOverviewType:
		return d.CustomerOverviewType, true
	case FieldDate:
		return d.Date, true
	case FieldCount:
		return d.Count, true
	}
	return "", false
}

func (d *Draft) set(name, value string) bool {
	switch name {
	case FieldDescription:
		d.Description = value
	case FieldCategory:
		d.Category = value
	case FieldCustomerOverviewType:
		d.CustomerOverviewType = value
	case FieldDate:
		d.Date = value
	case FieldCount:
		d.Count = value
	default:
		return false
	}
	return true
}

// Missing имена пустых обязательных полей
func (d Draft) Missing() []string {
	var missing []string
	for _, name := range DraftFields {
		v, _ := d.Get(name)
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// DraftFromRecord заполняет черновик из записи для редактирования
func DraftFromRecord(r ErrorRecord) Draft {
	return Draft{
		Description:          r.Description,
		Category:             r.Category,
		CustomerOverviewType: r.CustomerOverviewType,
		Date:                 r.DateOnly(),
		Count:                r.CountText(),
	}
}

// PageState снимок состояния контроллера для отрисовки
type PageState struct {
	Items   []ErrorRecord
	Total   int
	Page    int
	Limit   int
	Loading bool
	ErrMsg  string
}

func (s PageState) LastPage() int {
	return LastPage(s.Total, s.Limit)
}

func (s PageState) HasPrev() bool {
	return s.Page > 1
}

func (s PageState) HasNext() bool {
	return s.Page < s.LastPage()
}
