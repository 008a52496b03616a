package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive подтверждение нельзя спросить: stdin не терминал
var ErrNotInteractive = errors.New("stdin is not a terminal, pass --yes to confirm")

// Terminal построчный ввод с подтверждениями
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool

	// AssumeYes отвечает "да" на любое подтверждение
	AssumeYes bool
}

// New создает Terminal. Интерактивность определяется по файлу ввода.
func New(in io.Reader, out io.Writer) *Terminal {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return NewWith(in, out, interactive)
}

func NewWith(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Interactive можно ли спрашивать пользователя
func (t *Terminal) Interactive() bool {
	return t.interactive
}

func (t *Terminal) Out() io.Writer {
	return t.out
}

// ReadLine печатает приглашение и читает строку без перевода строки
func (t *Terminal) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(t.out, prompt)
	}

	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm спрашивает y/N
func (t *Terminal) Confirm(_ context.Context, prompt string) (bool, error) {
	if t.AssumeYes {
		return true, nil
	}
	if !t.interactive {
		return false, ErrNotInteractive
	}

	answer, err := t.ReadLine(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}
