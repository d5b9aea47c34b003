// Package cli implements the interactive menu over the standings
// service. It only reads lines, trims them, and dispatches; every
// behavior lives behind the Service interface.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/placarhq/placar/internal/domain/model"
	"github.com/placarhq/placar/internal/query"
	"github.com/placarhq/placar/pkg/logger"
	"github.com/placarhq/placar/pkg/textutil"
)

// Service is the slice of the application facade the menu needs.
type Service interface {
	RenderStandings(ctx context.Context, w io.Writer) error
	SearchTeams(ctx context.Context, prefix string) ([]*model.Team, int)
	WriteTeams(ctx context.Context, w io.Writer, teams []*model.Team) error
	WriteMatches(ctx context.Context, w io.Writer, prefix string, mode query.Mode) (int, error)
	ExportPath() string
}

// CLI runs the interactive menu loop.
type CLI struct {
	svc Service
	in  *bufio.Scanner
	out io.Writer
	log logger.Logger
}

// Option applies a configuration option to the CLI.
type Option func(*CLI)

// WithInput sets the reader the menu consumes lines from.
func WithInput(r io.Reader) Option {
	return func(c *CLI) {
		if r != nil {
			c.in = bufio.NewScanner(r)
		}
	}
}

// WithOutput sets the writer the menu prints to.
func WithOutput(w io.Writer) Option {
	return func(c *CLI) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets a custom logger for the menu.
func WithLogger(log logger.Logger) Option {
	return func(c *CLI) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a menu bound to svc, defaulting to stdin/stdout.
func New(svc Service, opts ...Option) *CLI {
	c := &CLI{
		svc: svc,
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
		log: logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// readLine prompts and reads one trimmed line. The second result is
// false on EOF or read failure.
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return textutil.Trim(c.in.Text()), true
}

func (c *CLI) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Sistema de Gerenciamento de Partidas")
	fmt.Fprintln(c.out, "1 - Consultar time")
	fmt.Fprintln(c.out, "2 - Consultar partidas")
	fmt.Fprintln(c.out, "6 - Imprimir tabela de classificacao")
	fmt.Fprintln(c.out, "Q - Sair")
}

// Run drives the menu until the user quits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		op, ok := c.readLine("Opcao: ")
		if !ok {
			break
		}
		switch op {
		case "1":
			c.consultTeam(ctx)
		case "2":
			c.consultMatches(ctx)
		case "6":
			fmt.Fprintln(c.out, "Imprimindo classificacao.")
			if err := c.svc.RenderStandings(ctx, c.out); err != nil {
				c.log.Error(ctx, "render standings failed", logger.Error(err))
			}
		case "q", "Q":
			fmt.Fprintln(c.out, "Encerrando.")
			return nil
		default:
			fmt.Fprintln(c.out, "Opcao invalida.")
		}
	}
	fmt.Fprintln(c.out, "Encerrando.")
	return nil
}

func (c *CLI) consultTeam(ctx context.Context) {
	prefix, ok := c.readLine("Digite o nome ou prefixo do time: ")
	if !ok {
		return
	}
	if prefix == "" {
		fmt.Fprintln(c.out, "Prefixo vazio.")
		return
	}
	found, total := c.svc.SearchTeams(ctx, prefix)
	if total == 0 {
		fmt.Fprintf(c.out, "Nenhum time encontrado para prefixo: %s\n", prefix)
		return
	}
	fmt.Fprintln(c.out)
	if err := c.svc.WriteTeams(ctx, c.out, found); err != nil {
		c.log.Error(ctx, "write team table failed", logger.Error(err))
		return
	}
	if total > len(found) {
		fmt.Fprintf(c.out, "Mostrando %d de %d times encontrados.\n", len(found), total)
	}
}

func (c *CLI) consultMatches(ctx context.Context) {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "Escolha o modo de consulta:")
		fmt.Fprintln(c.out, "1 - Por time mandante")
		fmt.Fprintln(c.out, "2 - Por time visitante")
		fmt.Fprintln(c.out, "3 - Por time mandante ou visitante")
		fmt.Fprintln(c.out, "4 - Retornar ao menu principal")
		op, ok := c.readLine("Opcao: ")
		if !ok || op == "4" {
			return
		}

		var mode query.Mode
		switch op {
		case "1":
			mode = query.ModeHome
		case "2":
			mode = query.ModeAway
		case "3":
			mode = query.ModeEither
		default:
			fmt.Fprintln(c.out, "Opcao invalida.")
			continue
		}

		prefix, ok := c.readLine("Digite o nome: ")
		if !ok {
			return
		}
		if prefix == "" {
			fmt.Fprintln(c.out, "Prefixo vazio.")
			continue
		}
		if _, err := c.svc.WriteMatches(ctx, c.out, prefix, mode); err != nil {
			c.log.Error(ctx, "list matches failed", logger.Error(err))
		}
	}
}
