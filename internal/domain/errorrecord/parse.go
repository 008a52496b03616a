package errorrecord

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// ParseDate разбирает дату в одном из поддерживаемых форматов.
// Учитываются только первые 10 символов, поэтому время суток отбрасывается.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// ParseCount разбирает количество ошибок
func ParseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidCount
	}
	if n < 0 {
		return 0, ErrNegativeCount
	}
	return n, nil
}

// ToRecord проверяет обязательные поля и приводит ввод к записи
func (in Input) ToRecord() (*Record, error) {
	for _, v := range []string{in.Description, in.Category, in.CustomerOverviewType, in.Date, in.Count} {
		if strings.TrimSpace(v) == "" {
			return nil, ErrMissingFields
		}
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	count, err := ParseCount(in.Count)
	if err != nil {
		return nil, err
	}

	return &Record{
		Description:          in.Description,
		Category:             in.Category,
		CustomerOverviewType: in.CustomerOverviewType,
		Date:                 date,
		Count:                count,
	}, nil
}
