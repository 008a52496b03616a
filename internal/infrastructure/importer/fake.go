package importer

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"nceerrors/internal/domain/errorrecord"
)

var (
	fakeCategories = []string{"Integration", "Billing", "Network", "Authentication", "Data Quality", "UI"}
	fakeOverviews  = []string{"Retail", "Enterprise", "SMB", "Government", "Partner"}
)

// Fake генерирует n правдоподобных записей. Одинаковый seed дает одинаковые записи.
func Fake(n int, seed int64, now time.Time) []errorrecord.Input {
	f := gofakeit.New(seed)

	rows := make([]errorrecord.Input, n)
	for i := range rows {
		date := f.DateRange(now.AddDate(-1, 0, 0), now)
		rows[i] = errorrecord.Input{
			Description:          f.HackerPhrase(),
			Category:             f.RandomString(fakeCategories),
			CustomerOverviewType: f.RandomString(fakeOverviews),
			Date:                 date.Format(errorrecord.DateLayout),
			Count:                strconv.Itoa(f.Number(0, 500)),
		}
	}
	return rows
}
