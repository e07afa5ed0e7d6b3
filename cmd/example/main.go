package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/garciat/negcoh/compile"
	"github.com/garciat/negcoh/report"
)

func main() {
	flag.Parse()

	path := "examples/sample6.trait"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	unit := compile.NewCompilationUnit("example")
	if err := unit.AddFile(path); err != nil {
		log.Fatal(err)
	}
	results, err := unit.Compile(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	if err := report.WriteText(os.Stdout, results, report.Options{Explain: true, Summary: true}); err != nil {
		log.Fatal(err)
	}
}
