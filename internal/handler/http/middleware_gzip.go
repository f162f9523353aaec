package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflateBody(r.Body)
			if err != nil {
				writeEnvelope(w, http.StatusBadRequest, true, msgInvalidJSON)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, r)
	})
}

// inflateBody wraps body in a pooled gzip reader. The reader returns to the
// pool when the handler closes the body.
func inflateBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}

	return &inflatedBody{Reader: zr, source: body}, nil
}

type inflatedBody struct {
	*gzip.Reader
	source io.Closer
	closed bool
}

func (b *inflatedBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	b.Reader.Close()
	gzipReaders.Put(b.Reader)
	return b.source.Close()
}

// acceptsGzip reports whether an Accept-Encoding value allows gzip.
// "gzip;q=0" is a refusal.
func acceptsGzip(header string) bool {
	for part := range strings.SplitSeq(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			q, err := strconv.ParseFloat(v, 64)
			return err == nil && q > 0
		}
		return true
	}

	return false
}

func hasToken(header, token string) bool {
	for part := range strings.SplitSeq(header, ",") {
		if strings.EqualFold(strings.TrimSpace(part), token) {
			return true
		}
	}

	return false
}

// gzipResponseWriter holds the status back until the first non-empty
// write, so a handler that writes nothing produces no gzip framing at all.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	status      int
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader || w.status != 0 {
		return
	}
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if !w.wroteHeader {
		w.startBody()
	}

	return w.zw.Write(data)
}

func (w *gzipResponseWriter) startBody() {
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}

	h := w.Header()
	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")

	w.zw = gzipWriters.Get().(*gzip.Writer)
	w.zw.Reset(w.ResponseWriter)
	w.ResponseWriter.WriteHeader(w.status)
}

// finish flushes the gzip stream, or sends the held status when the
// handler wrote no body.
func (w *gzipResponseWriter) finish() {
	if !w.wroteHeader {
		if w.status != 0 {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return
	}

	w.zw.Close()
	w.zw.Reset(io.Discard)
	gzipWriters.Put(w.zw)
	w.zw = nil
}
