// Package apiserver exposes the stop word annotator over HTTP.
package apiserver

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/pepperkit/stopwords/pkg/english"
	"github.com/pepperkit/stopwords/pkg/pipeline"
	"github.com/pepperkit/stopwords/pkg/stopwords"
)

// AnnotateParams is the request body of /api/annotate. Properties override
// the server's default stop word configuration per request.
type AnnotateParams struct {
	Text       string            `json:"text"`
	Properties map[string]string `json:"properties,omitempty"`
}

// AnnotatedToken is a single token of the response. Stopped is omitted when
// the annotator wrote no verdict for the document.
type AnnotatedToken struct {
	Word    string `json:"word"`
	Lemma   string `json:"lemma"`
	Tag     string `json:"tag"`
	Stopped *bool  `json:"stopped,omitempty"`
}

type AnnotateResponse struct {
	Tokens           []AnnotatedToken `json:"tokens"`
	ContentLemmas    []string         `json:"content_lemmas"`
	StoppedPositions []uint32         `json:"stopped_positions"`
}

// Server annotates documents with the demo english pipeline followed by the
// stop word annotator.
type Server struct {
	Defaults stopwords.Properties
	Logger   *zap.Logger
}

func NewServer(defaults stopwords.Properties, logger *zap.Logger) *Server {
	return &Server{
		Defaults: defaults,
		Logger:   logger,
	}
}

// Router returns the configured mux router.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/annotate", s.MakeGzipHandler(s.HandleAnnotate)).Methods("POST")
	return router
}

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// MakeGzipHandler wraps a handler with gzip response compression for clients
// that accept it.
func (s *Server) MakeGzipHandler(fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accepts := r.Header.Get("Accept-Encoding")
		if !strings.Contains(accepts, "gzip") {
			fn(w, r)
			return
		}
		gz, err := gzip.NewWriterLevel(w, gzip.BestCompression)
		if err != nil {
			fn(w, r)
			return
		}
		defer func(gz *gzip.Writer) {
			if err := gz.Close(); err != nil {
				s.Logger.Error("closing gzip writer failed", zap.Error(err))
			}
		}(gz)
		w.Header().Set("Content-Encoding", "gzip")
		fn(gzipResponseWriter{
			Writer:         gz,
			ResponseWriter: w,
		}, r)
	}
}

func (s *Server) HandleAnnotate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var params AnnotateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	props := make(stopwords.Properties, len(s.Defaults)+len(params.Properties))
	for key, value := range s.Defaults {
		props[key] = value
	}
	for key, value := range params.Properties {
		props[key] = value
	}

	annotator, err := stopwords.NewAnnotator(props)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := pipeline.NewPipeline(english.NewTokenizer(), english.NewTagger(), english.NewLemmatizer(), annotator)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	doc := pipeline.NewDocument(params.Text)
	p.Annotate(doc)

	response := AnnotateResponse{
		Tokens:           make([]AnnotatedToken, 0, len(doc.Tokens)),
		ContentLemmas:    annotator.ContentLemmas(doc),
		StoppedPositions: annotator.Mask(doc).ToArray(),
	}
	for _, token := range doc.Tokens {
		annotated := AnnotatedToken{Word: token.Word, Lemma: token.Lemma, Tag: token.Tag}
		if stopped, ok := token.Annotation(stopwords.AnnotatorName); ok {
			value := stopped
			annotated.Stopped = &value
		}
		response.Tokens = append(response.Tokens, annotated)
	}

	s.Logger.Info("annotated document",
		zap.Int("tokens", len(doc.Tokens)),
		zap.Int("stopped", len(response.StoppedPositions)),
	)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.Logger.Error("encoding response failed", zap.Error(err))
	}
}
