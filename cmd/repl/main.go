package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/garciat/negcoh/check"
	"github.com/garciat/negcoh/compile"
	"github.com/garciat/negcoh/parse"
	"github.com/garciat/negcoh/report"
	"github.com/garciat/negcoh/tree"
)

const (
	historyFile = ".negcoh_history"
	promptMain  = "negcoh> "
	promptCont  = "   ...> "
)

const help = `Enter struct, trait and impl declarations. Each new impl is checked
against the impls entered before it.

  :check    check every pair again
  :list     print the declarations so far
  :explain  toggle reasons in the output
  :reset    forget all declarations
  :quit     exit
`

func main() {
	flag.Parse()

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Print(help)

	s := newSession(os.Stdout)
	for {
		code, ok := readDecls(ln)
		if !ok {
			fmt.Println()
			return
		}
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(code, ":") {
			if !s.command(code) {
				return
			}
			continue
		}
		if err := s.add(code); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// readDecls keeps prompting while the input so far is a valid prefix of a
// declaration list.
func readDecls(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := parse.ParseProgram(src); parse.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

type session struct {
	out     io.Writer
	unit    *compile.CompilationUnit
	entries int
	explain bool
}

func newSession(out io.Writer) *session {
	return &session{out: out, unit: compile.NewCompilationUnit("repl")}
}

// add appends the declarations in code and reports every pair that involves
// one of its impls. Code that makes the program invalid is rolled back.
func (s *session) add(code string) error {
	s.entries++
	name := fmt.Sprintf("<repl:%d>", s.entries)
	if err := s.unit.AddSource(name, []byte(code)); err != nil {
		return err
	}

	results, err := s.unit.Compile(context.Background())
	if err != nil {
		s.unit.Package.Files = s.unit.Package.Files[:len(s.unit.Package.Files)-1]
		return err
	}

	var fresh []check.Result
	for _, r := range results {
		if r.Left.Pos.File == name || r.Right.Pos.File == name {
			fresh = append(fresh, r)
		}
	}
	return report.WriteText(s.out, fresh, report.Options{Explain: s.explain})
}

func (s *session) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(s.out, help)
	case ":explain":
		s.explain = !s.explain
		fmt.Fprintf(s.out, "explain: %v\n", s.explain)
	case ":reset":
		s.unit = compile.NewCompilationUnit("repl")
	case ":list":
		fmt.Fprintln(s.out, s.program())
	case ":check":
		results, err := s.unit.Compile(context.Background())
		if err != nil {
			fmt.Fprintln(s.out, err)
			break
		}
		_ = report.WriteText(s.out, results, report.Options{Explain: s.explain, Summary: true})
	default:
		fmt.Fprintf(s.out, "unknown command %v. Type :help for a list.\n", cmd)
	}
	return true
}

func (s *session) program() *tree.Program {
	return s.unit.Package.Program()
}
