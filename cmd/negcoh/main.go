package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/garciat/negcoh/compile"
	"github.com/garciat/negcoh/config"
	"github.com/garciat/negcoh/files"
	"github.com/garciat/negcoh/report"
)

const (
	exitOK      = 0
	exitError   = 1
	exitUsage   = 2
	exitOverlap = 3
)

var (
	configPath  = flag.String("config", "", "YAML config file")
	format      = flag.String("format", config.FormatText, "output format: text or yaml")
	explain     = flag.Bool("explain", false, "print positions and the reason for each verdict")
	summary     = flag.Bool("summary", false, "print verdict counts")
	workers     = flag.Int("workers", 1, "pairs checked in parallel")
	denyOverlap = flag.Bool("deny-overlap", false, "exit with status 3 when any pair overlaps")
	watch       = flag.Bool("watch", false, "check again whenever a source file changes")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("negcoh: ")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: negcoh [flags] <file|dir|->...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(negcoh(flag.Args()))
}

func negcoh(paths []string) int {
	if len(paths) == 0 {
		flag.Usage()
		return exitUsage
	}
	if *watch && slices.Contains(paths, "-") {
		log.Println("-watch cannot read from stdin")
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Println(err)
		return exitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*watch {
		return run(ctx, cfg, paths, os.Stdin, os.Stdout)
	}

	w, err := files.NewWatcher(paths...)
	if err != nil {
		log.Println(err)
		return exitError
	}
	defer w.Close()
	w.Debounce = cfg.Debounce

	run(ctx, cfg, paths, nil, os.Stdout)
	err = w.Run(ctx, func(changed []string) {
		log.Printf("changed: %v", changed)
		run(ctx, cfg, paths, nil, os.Stdout)
	})
	if err != nil && ctx.Err() == nil {
		log.Println(err)
		return exitError
	}
	return exitOK
}

// loadConfig reads the config file, if any, and lets explicitly set flags win.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "explain":
			cfg.Explain = *explain
		case "summary":
			cfg.Summary = *summary
		case "workers":
			cfg.Workers = *workers
		case "deny-overlap":
			cfg.DenyOverlap = *denyOverlap
		}
	})
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, paths []string, stdin io.Reader, stdout io.Writer) int {
	unit := compile.NewCompilationUnit("main")
	unit.Workers = cfg.Workers

	for _, path := range paths {
		var err error
		if path == "-" {
			var data []byte
			if data, err = io.ReadAll(stdin); err == nil {
				err = unit.AddSource("<stdin>", data)
			}
		} else {
			err = unit.AddPath(path)
		}
		if err != nil {
			log.Println(err)
			return exitError
		}
	}

	results, err := unit.Compile(ctx)
	if err != nil {
		log.Println(err)
		return exitError
	}

	opts := report.Options{Explain: cfg.Explain, Summary: cfg.Summary}
	switch cfg.Format {
	case config.FormatYAML:
		err = report.WriteYAML(stdout, unit.Package.Name, results, opts)
	default:
		err = report.WriteText(stdout, results, opts)
	}
	if err != nil {
		log.Println(err)
		return exitError
	}

	if cfg.DenyOverlap && report.Summarize(results).Overlap > 0 {
		return exitOverlap
	}
	return exitOK
}
