package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where PprofMux expects to be mounted. pprof.Index resolves
// named profiles relative to it.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux serving the net/http/pprof handlers under
// PprofPrefix. Mount it on the parent mux at PprofPrefix:
//
//	mux.Handle(controller.PprofPrefix, controller.PprofMux())
//
// Named profiles (heap, goroutine, ...) are served by pprof.Index.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
