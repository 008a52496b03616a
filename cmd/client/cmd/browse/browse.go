package browse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/prompt"
	"nceerrors/cmd/client/cmd/types"
	"nceerrors/cmd/client/cmd/view"
	"nceerrors/internal/app/client"
)

const help = `Commands:
  n        next page          p      previous page
  g N      go to page N       r      reload
  a        add record         e ID   edit record
  s        resume draft       c      cancel edit
  d ID     delete record      h      help
  q        quit`

var BrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Интерактивный просмотр записей",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromCommand(cmd)
		if err != nil {
			return err
		}

		return NewSession(env.App, env.Term).Run(cmd.Context())
	},
}

// Session цикл команд поверх контроллера и формы
type Session struct {
	app  *client.App
	term *prompt.Terminal
	out  io.Writer
}

func NewSession(app *client.App, term *prompt.Terminal) *Session {
	return &Session{app: app, term: term, out: term.Out()}
}

func (s *Session) Run(ctx context.Context) error {
	_ = s.app.Start(ctx)
	s.render()
	fmt.Fprintln(s.out, help)

	for {
		line, err := s.term.ReadLine("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.handle(ctx, strings.Fields(line))
		if quit {
			return nil
		}
		if err != nil && !isReported(err) {
			fmt.Fprintln(s.out, err)
		}
	}
}

// ошибки контроллера уже показаны в баннере
func isReported(err error) bool {
	var se *client.ServerError
	return errors.Is(err, client.ErrNetwork) || errors.As(err, &se)
}

func (s *Session) handle(ctx context.Context, fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	ctrl := s.app.Controller
	state := ctrl.State()

	switch fields[0] {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprintln(s.out, help)
		return false, nil
	case "n":
		if !state.HasNext() {
			return false, nil
		}
		defer s.render()
		return false, ctrl.NavigateTo(ctx, state.Page+1)
	case "p":
		if !state.HasPrev() {
			return false, nil
		}
		defer s.render()
		return false, ctrl.NavigateTo(ctx, state.Page-1)
	case "g":
		page, err := intArg(fields)
		if err != nil {
			return false, err
		}
		defer s.render()
		return false, ctrl.NavigateTo(ctx, page)
	case "r":
		defer s.render()
		return false, ctrl.Reload(ctx)
	case "a":
		s.app.Form.Cancel()
		return false, s.fillAndSubmit(ctx)
	case "e":
		id, err := intArg(fields)
		if err != nil {
			return false, err
		}
		if err := s.app.EditByID(ctx, int64(id)); err != nil {
			s.render()
			return false, err
		}
		return false, s.fillAndSubmit(ctx)
	case "s":
		return false, s.fillAndSubmit(ctx)
	case "c":
		s.app.Form.Cancel()
		fmt.Fprintln(s.out, "Edit cancelled")
		return false, nil
	case "d":
		id, err := intArg(fields)
		if err != nil {
			return false, err
		}
		deleted, err := ctrl.Delete(ctx, int64(id))
		if !deleted && err == nil {
			fmt.Fprintln(s.out, "Deletion cancelled")
			return false, nil
		}
		s.render()
		return false, err
	}

	return false, fmt.Errorf("unknown command %q, type h for help", fields[0])
}

// fillAndSubmit спрашивает поля формы (Enter оставляет значение) и отправляет
func (s *Session) fillAndSubmit(ctx context.Context) error {
	form := s.app.Form
	editingID, editing := form.EditingID()
	view.Draft(s.out, form.Draft(), editingID, editing)

	for _, name := range client.DraftFields {
		current, _ := form.Draft().Get(name)
		label := name
		if current != "" {
			label += " [" + current + "]"
		}

		value, err := s.term.ReadLine(label + ": ")
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}
		if err := form.SetField(name, strings.TrimSpace(value)); err != nil {
			return err
		}
	}

	if missing := form.Missing(); len(missing) > 0 {
		view.Missing(s.out, missing)
		fmt.Fprintln(s.out, "Draft kept, type s to continue or c to cancel")
		return nil
	}

	err := form.Submit(ctx)
	s.render()
	return err
}

func (s *Session) render() {
	view.Page(s.out, s.app.Controller.State())
}

func intArg(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%s requires a number", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", fields[1])
	}
	return n, nil
}
