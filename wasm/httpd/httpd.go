// Command httpd serves the wasm build of the trainer for local testing.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/jetsetilly/updown/logger"
)

type handler struct {
	fileHandler http.Handler
}

func newHandler(dir string) *handler {
	return &handler{
		fileHandler: http.FileServer(http.Dir(dir)),
	}
}

func (hnd *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger.Logf(logger.Allow, "httpd", "%s %s", r.Method, r.RequestURI)
	if strings.HasSuffix(r.URL.Path, ".wasm") {
		w.Header().Set("Content-Type", "application/wasm")
	}
	hnd.fileHandler.ServeHTTP(w, r)
}

func main() {
	var addr string
	var dir string

	flgs := flag.NewFlagSet("httpd", flag.ExitOnError)
	flgs.StringVar(&addr, "addr", "localhost:8008", "address to listen on")
	flgs.StringVar(&dir, "dir", "www", "directory to serve")
	flgs.Parse(os.Args[1:])

	logger.SetEcho(os.Stderr, false)
	logger.Logf(logger.Allow, "httpd", "test server listening on %s", addr)

	err := http.ListenAndServe(addr, newHandler(dir))
	if err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
