package view

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"nceerrors/internal/app/client"
)

var (
	errColor   = color.New(color.FgRed, color.Bold)
	titleColor = color.New(color.FgCyan, color.Bold)
	dimColor   = color.New(color.Faint)
)

// Banner сообщение об ошибке над таблицей
func Banner(w io.Writer, msg string) {
	if msg == "" {
		return
	}
	errColor.Fprintln(w, msg)
}

// Page баннер ошибки и таблица текущей страницы
func Page(w io.Writer, s client.PageState) {
	Banner(w, s.ErrMsg)

	if s.Loading {
		dimColor.Fprintln(w, "Loading...")
	}

	titleColor.Fprintf(w, "Errors: page %d of %d (total %d)\n", s.Page, s.LastPage(), s.Total)

	if len(s.Items) == 0 {
		fmt.Fprintln(w, "No records")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "ID\tDescription\tCategory\tCustomer Overview\tDate\tCount\t\n")
		fmt.Fprintf(tw, "---\t---\t---\t---\t---\t---\t\n")
		for _, rec := range s.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
				rec.RecordID(),
				truncate(rec.Description, 40),
				truncate(rec.Category, 20),
				truncate(rec.CustomerOverviewType, 20),
				rec.DateOnly(),
				rec.CountText(),
			)
		}
		tw.Flush()
	}

	fmt.Fprintln(w, pager(s))
}

func pager(s client.PageState) string {
	prev, next := "[p] prev", "[n] next"
	if !s.HasPrev() {
		prev = dimColor.Sprint(prev)
	}
	if !s.HasNext() {
		next = dimColor.Sprint(next)
	}
	return prev + "  " + next
}

// Draft черновик формы и ее режим
func Draft(w io.Writer, d client.Draft, editingID int64, editing bool) {
	if editing {
		titleColor.Fprintf(w, "Editing record %d\n", editingID)
	} else {
		titleColor.Fprintln(w, "New record")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range client.DraftFields {
		v, _ := d.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t\n", name, v)
	}
	tw.Flush()
}

// Missing сообщение о незаполненных обязательных полях
func Missing(w io.Writer, fields []string) {
	errColor.Fprintf(w, "Please fill in: %s\n", strings.Join(fields, ", "))
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}
