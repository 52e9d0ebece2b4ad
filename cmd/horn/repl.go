package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/ichiban/horn"
	"github.com/ichiban/horn/syntax"
)

func runREPL(ctx context.Context, cfg *Config, files []string) error {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		_ = terminal.Restore(0, oldState)
	}()

	t := terminal.NewTerminal(os.Stdin, "?- ")
	defer fmt.Printf("\r\n")

	logrus.SetOutput(t)

	i, err := New(cfg, files)
	if err != nil {
		return err
	}

	var buf strings.Builder
	keys := bufio.NewReader(os.Stdin)
	for {
		if err := handleLine(ctx, &buf, i, t, keys); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func handleLine(ctx context.Context, buf *strings.Builder, i *horn.Interpreter, t *terminal.Terminal, keys *bufio.Reader) error {
	if buf.Len() == 0 {
		t.SetPrompt("?- ")
	} else {
		t.SetPrompt("|  ")
	}

	line, err := t.ReadLine()
	if err != nil {
		if err == io.EOF {
			return err
		}
		logrus.Errorf("failed to read line: %v", err)
		buf.Reset()
		return nil
	}
	if _, err := buf.WriteString(line); err != nil {
		logrus.Errorf("failed to buffer: %v", err)
		buf.Reset()
		return nil
	}

	if strings.TrimSpace(buf.String()) == "" {
		buf.Reset()
		return nil
	}

	sols, err := i.QueryContext(ctx, buf.String())
	var pe *syntax.ParseError
	switch {
	case err == nil:
		break
	case errors.As(err, &pe) && pe.Found.Kind == syntax.TokenEOS:
		if _, err := buf.WriteRune('\n'); err != nil {
			logrus.Errorf("failed to buffer: %v", err)
			buf.Reset()
		}

		// Returns without resetting buf.
		return nil
	default:
		logrus.Errorf("failed to query: %v", err)
		buf.Reset()
		return nil
	}
	buf.Reset()

	c := 0
	for sols.Next() {
		c++

		sol := sols.Current()
		a, ok := answer(&sol)
		if !ok {
			if _, err := fmt.Fprintf(t, "%t.\n", true); err != nil {
				return err
			}
			break
		}

		if _, err := fmt.Fprintf(t, "%s ", a); err != nil {
			return err
		}

		r, _, err := keys.ReadRune()
		if err != nil {
			logrus.Errorf("failed to read rune: %v", err)
			break
		}
		if r != ';' {
			r = '.'
		}

		if _, err := fmt.Fprintf(t, "%s\n", string(r)); err != nil {
			return err
		}

		if r == '.' {
			break
		}
	}
	if err := sols.Close(); err != nil {
		return err
	}

	if err := sols.Err(); err != nil {
		logrus.Errorf("failed: %v", err)
		return nil
	}

	if c == 0 {
		if _, err := fmt.Fprintf(t, "%t.\n", false); err != nil {
			return err
		}
	}
	return nil
}
