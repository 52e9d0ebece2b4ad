package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ichiban/horn"
	"github.com/ichiban/horn/syntax"
	"github.com/ichiban/horn/term"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCmd(t *testing.T) {
	dir := t.TempDir()
	colors := writeFile(t, dir, "colors.pl", `
color(red).
color(blue).
`)
	likes := writeFile(t, dir, "likes.pl", `
likes(alice, X) :- color(X).
`)
	cyclic := writeFile(t, dir, "eq.pl", `eq(X, X).`)
	broken := writeFile(t, dir, "broken.pl", `color(green`)
	config := writeFile(t, dir, "horn.yaml", `
occurs_check: true
consult:
  - eq.pl
`)

	tests := []struct {
		title string
		args  []string
		out   string
		err   bool
	}{
		{title: "all", args: []string{"query", "-e", "color(C).", colors}, out: "C = red.\nC = blue.\n"},
		{title: "limit", args: []string{"query", "-e", "color(C).", "-n", "1", colors}, out: "C = red.\n"},
		{title: "files in order", args: []string{"query", "-e", "likes(alice, C).", colors, likes}, out: "C = red.\nC = blue.\n"},
		{title: "ground", args: []string{"query", "-e", "color(red).", colors}, out: "true.\n"},
		{title: "none", args: []string{"query", "-e", "color(green).", colors}, out: "false.\n"},
		{title: "unknown", args: []string{"query", "--unknown", "warning", "-e", "ghost(X).", colors}, out: "false.\n"},
		{title: "cyclic", args: []string{"query", "-e", "eq(Y, f(Y)).", cyclic}, out: "Y = f(Y).\n"},
		{title: "config", args: []string{"query", "--config", config, "-e", "eq(Y, f(Y))."}, out: "false.\n"},
		{title: "flags override config", args: []string{"query", "--config", config, "--occurs-check=false", "-e", "eq(Y, f(Y))."}, out: "Y = f(Y).\n"},
		{title: "no goal", args: []string{"query", colors}, err: true},
		{title: "bad goal", args: []string{"query", "-e", "color(C)", colors}, err: true},
		{title: "bad unknown", args: []string{"query", "--unknown", "error", "-e", "color(C).", colors}, err: true},
		{title: "missing file", args: []string{"query", "-e", "color(C).", filepath.Join(dir, "missing.pl")}, err: true},
		{title: "broken file", args: []string{"query", "-e", "color(C).", broken}, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out, err := execute(tt.args...)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.pl", "color(red).\ncolor(green")

	t.Run("source name", func(t *testing.T) {
		_, err := New(&Config{}, []string{broken})
		var pe *syntax.ParseError
		assert.True(t, errors.As(err, &pe))
		assert.Contains(t, err.Error(), broken)
	})

	t.Run("settings", func(t *testing.T) {
		i, err := New(&Config{OccursCheck: true, Unknown: "warning", Verbose: true}, nil)
		assert.NoError(t, err)
		assert.True(t, i.OccursCheck)
		assert.Equal(t, horn.UnknownWarning, i.Unknown)
		assert.NotNil(t, i.OnCall)
		assert.NotNil(t, i.OnExit)
		assert.NotNil(t, i.OnFail)
		assert.NotNil(t, i.OnRedo)
	})
}

func TestAnswer(t *testing.T) {
	tests := []struct {
		title string
		sol   horn.Solution
		out   string
		ok    bool
	}{
		{title: "empty", sol: horn.Solution{}},
		{title: "unbound", sol: horn.Solution{Bindings: []horn.Binding{
			{Name: "X", Value: term.Variable("X")},
		}}},
		{title: "bound to true", sol: horn.Solution{Bindings: []horn.Binding{
			{Name: "X", Value: term.Atom("true")},
		}}, out: "X = true", ok: true},
		{title: "bindings", sol: horn.Solution{Bindings: []horn.Binding{
			{Name: "X", Value: term.Variable("X")},
			{Name: "Y", Value: term.Variable("X")},
			{Name: "Z", Value: term.Atom("a")},
		}}, out: "Y = X, Z = a", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out, ok := answer(&tt.sol)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.out, out)
		})
	}
}
