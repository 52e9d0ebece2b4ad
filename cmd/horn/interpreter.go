package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ichiban/horn"
	"github.com/ichiban/horn/term"
)

// New creates a horn.Interpreter configured by cfg and consults the files in cfg and files in order.
func New(cfg *Config, files []string) (*horn.Interpreter, error) {
	i := horn.New()
	i.OccursCheck = cfg.OccursCheck
	if cfg.Unknown != "" {
		if err := i.Unknown.Set(cfg.Unknown); err != nil {
			return nil, err
		}
	}
	if cfg.Verbose {
		trace(&i.Engine)
	}

	for _, name := range append(cfg.Consult[:len(cfg.Consult):len(cfg.Consult)], files...) {
		if err := consult(i, name); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func consult(i *horn.Interpreter, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := i.Consult(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func trace(e *horn.Engine) {
	port := func(name string) func(term.Term, *term.Substitution) {
		return func(goal term.Term, s *term.Substitution) {
			logrus.Infof("%s %s", name, s.Apply(goal))
		}
	}
	e.OnCall = port("CALL")
	e.OnExit = port("EXIT")
	e.OnFail = port("FAIL")
	e.OnRedo = port("REDO")
}
