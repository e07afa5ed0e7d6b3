package main

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/garciat/negcoh/check"
	"github.com/garciat/negcoh/common"
	"github.com/garciat/negcoh/compile"
	"github.com/garciat/negcoh/files"
	"github.com/garciat/negcoh/report"
	"github.com/garciat/negcoh/source"
)

//go:embed resources
var resources embed.FS

var (
	defaultContent string
	indexTemplate  *template.Template

	// debug output goes through a package-level writer
	compilerMux sync.Mutex
)

func init() {
	data, err := resources.ReadFile("resources/default.trait")
	if err != nil {
		log.Fatal(err)
	}
	data, err = source.Decode(data)
	if err != nil {
		log.Fatal(err)
	}
	defaultContent = string(data)

	indexTemplate = template.Must(template.ParseFS(resources, "resources/index.html"))
}

func main() {
	log.SetFlags(0)

	port := getPort()
	addr := fmt.Sprintf("0.0.0.0:%s", port)

	log.Println("Listening on " + addr)
	log.Fatal(http.ListenAndServe(addr, logRequest(newMux())))
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", indexHandler)
	mux.HandleFunc("POST /check", checkHandler)
	return mux
}

func getPort() string {
	port, ok := os.LookupEnv("PORT")
	if !ok {
		return "8080"
	}
	return port
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	type Page struct {
		DefaultContent string
	}

	err := indexTemplate.Execute(w, Page{DefaultContent: defaultContent})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func checkHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(500 * 1024)
	if err != nil && err != http.ErrNotMultipart {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename := r.FormValue("filename")
	switch {
	case filename == "":
		fallthrough
	case !files.IsSource(filename):
		fallthrough
	case strings.Contains(filename, "/"):
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	default:
		// OK
	}

	code := r.FormValue("code")
	debug := r.FormValue("debug") != ""

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	var out bytes.Buffer
	compilerMux.Lock()
	{
		*check.DebugAll = debug
		check.DebugWriter = &out

		_, err, _ = common.Try(func() (int, error) {
			return 0, checkSource(r.Context(), &out, filename, []byte(code))
		})

		*check.DebugAll = false
		check.DebugWriter = os.Stderr
	}
	compilerMux.Unlock()

	if err != nil {
		fmt.Fprintf(&out, "ERROR: %v\n", err)
	}
	_, _ = io.Copy(w, &out)
}

func checkSource(ctx context.Context, out io.Writer, filename string, code []byte) error {
	unit := compile.NewCompilationUnit("main")
	if err := unit.AddSource(filename, code); err != nil {
		return err
	}
	results, err := unit.Compile(ctx)
	if err != nil {
		return err
	}
	return report.WriteText(out, results, report.Options{Explain: true, Summary: true})
}

func logRequest(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s\n", r.RemoteAddr, r.Method, r.URL)
		handler.ServeHTTP(w, r)
	})
}
