package check

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
)

var (
	DebugAll     = flag.Bool("debug", false, "debug all")
	DebugUnify   = flag.Bool("debug-unify", false, "debug unify")
	DebugGeneral = flag.Bool("debug-general", false, "debug general")
	DebugChecker = flag.Bool("debug-checker", false, "debug checker")
	DebugDump    = flag.Bool("debug-dump", false, "dump elaborated impls")

	DebugWriter io.Writer = os.Stderr

	// pairs may be checked in parallel
	debugMu sync.Mutex
)

func debugPrintf(enabled bool, format string, args ...interface{}) {
	if !*DebugAll && !enabled {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	_, err := fmt.Fprintf(DebugWriter, format, args...)
	if err != nil {
		panic(err)
	}
}

func UnifyPrintf(format string, args ...interface{}) {
	debugPrintf(*DebugUnify, format, args...)
}

func GeneralPrintf(format string, args ...interface{}) {
	debugPrintf(*DebugGeneral, format, args...)
}

func CheckerPrintf(format string, args ...interface{}) {
	debugPrintf(*DebugChecker, format, args...)
}

func DebugDumpValues(values ...interface{}) {
	if !*DebugDump {
		return
	}
	debugMu.Lock()
	defer debugMu.Unlock()
	spew.Fdump(DebugWriter, values...)
}
