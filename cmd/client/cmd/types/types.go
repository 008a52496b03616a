package types

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nceerrors/cmd/client/cmd/prompt"
	"nceerrors/internal/app/client"
)

// Env то, что root передает подкомандам через контекст
type Env struct {
	App  *client.App
	Term *prompt.Terminal
	Out  io.Writer
}

type ctxKey struct{}

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

// FromCommand достает Env из контекста команды
func FromCommand(cmd *cobra.Command) (*Env, error) {
	env, ok := cmd.Context().Value(ctxKey{}).(*Env)
	if !ok || env == nil || env.App == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return env, nil
}
