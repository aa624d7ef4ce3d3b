package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
)

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip inflates gzip request bodies and compresses responses for clients
// that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaderPool.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaderPool.Put(zr)
				utils.WriteError(w, "invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &pooledReader{Reader: zr, release: func() {
				zr.Close()
				gzipReaderPool.Put(zr)
			}}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriterPool.Get().(*gzip.Writer)
		zw.Reset(w)

		w.Header().Add("Vary", "Accept-Encoding")
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(gw, r)

		// Nothing was written: do not emit an undeclared gzip stream.
		if gw.started {
			zw.Close()
		}
		zw.Reset(io.Discard)
		gzipWriterPool.Put(zw)
	})
}

type pooledReader struct {
	io.Reader
	release func()
	once    sync.Once
}

func (p *pooledReader) Close() error {
	p.once.Do(p.release)
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw      *gzip.Writer
	started bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.started {
		return
	}
	w.started = true
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.started {
		w.WriteHeader(http.StatusOK)
	}
	return w.zw.Write(data)
}
