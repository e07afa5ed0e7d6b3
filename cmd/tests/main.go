package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/garciat/negcoh/check"
	. "github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/compile"
	"github.com/garciat/negcoh/report"
)

var (
	testsPath    = flag.String("tests", "tests", "directory of pass_ and fail_ fixtures")
	examplesPath = flag.String("examples", "examples", "directory of example programs that must check")
	workers      = flag.Int("workers", 1, "pairs checked in parallel")
)

func main() {
	flag.Parse()

	entries, err := os.ReadDir(*testsPath)
	if err != nil {
		panic(err)
	}

	failed := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") {
			continue
		}
		if !testFixture(*testsPath, name) {
			failed++
		}
	}

	examples, err := os.ReadDir(*examplesPath)
	if err != nil {
		panic(err)
	}
	for _, entry := range examples {
		if _, err, stack := compilePath(filepath.Join(*examplesPath, entry.Name())); err != nil {
			failExpectedPass(entry.Name(), err, stack)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("FAIL: %d fixtures\n", failed)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func compilePath(path string) ([]check.Result, error, string) {
	return Try(func() ([]check.Result, error) {
		unit := compile.NewCompilationUnit("tests")
		unit.Workers = *workers
		if err := unit.AddPath(path); err != nil {
			return nil, err
		}
		return unit.Compile(context.Background())
	})
}

func testFixture(parent, name string) bool {
	path := filepath.Join(parent, name)
	results, err, stack := compilePath(path)

	switch {
	case strings.HasPrefix(name, "fail_"):
		if err == nil {
			fmt.Printf("FAIL %s: expected error\n", name)
			return false
		}
	case strings.HasPrefix(name, "pass_"):
		if err != nil {
			failExpectedPass(name, err, stack)
			return false
		}
		return matchExpectations(name, strings.TrimSuffix(path, ".trait")+".yaml", results)
	default:
		fmt.Printf("FAIL %s: unexpected file\n", name)
		return false
	}
	fmt.Printf("PASS %s\n", name)
	return true
}

func matchExpectations(name, path string, results []check.Result) bool {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", name, err)
		return false
	}
	defer f.Close()

	want, err := report.ReadDocument(f)
	if err != nil {
		fmt.Printf("FAIL %s: %v\n", name, err)
		return false
	}
	diffs := report.Diff(want.Results, results)
	if len(diffs) > 0 {
		fmt.Printf("FAIL %s:\n  %s\n", name, strings.Join(diffs, "\n  "))
		return false
	}
	fmt.Printf("PASS %s\n", name)
	return true
}

func failExpectedPass(name string, err error, stack string) {
	fmt.Printf("FAIL %s: unexpected error:\n%v\n", name, err)
	if stack != "" {
		fmt.Printf("%s\n", dropStacks(stack, 3))
	}
}

func dropStacks(stack string, n int) string {
	lines := strings.Split(stack, "\n")
	if len(lines) <= 1+n*2 {
		return stack
	}
	return strings.Join(lines[1+n*2:], "\n")
}
