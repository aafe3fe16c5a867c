package apiserver

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pepperkit/stopwords/pkg/stopwords"
)

func newTestServer(defaults stopwords.Properties) *Server {
	return NewServer(defaults, zap.NewNop())
}

func postAnnotate(t *testing.T, server *Server, params AnnotateParams, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(params)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, "/api/annotate", bytes.NewReader(body))
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, request)
	return recorder
}

func TestHandleAnnotate(t *testing.T) {
	server := newTestServer(stopwords.Properties{
		stopwords.PropCustomList:    "be,have",
		stopwords.PropPosCategories: "DT,IN,PRP",
	})

	recorder := postAnnotate(t, server, AnnotateParams{Text: "The wolf was in the forest"}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response AnnotateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Len(t, response.Tokens, 6)
	assert.Equal(t, "The", response.Tokens[0].Word)
	require.NotNil(t, response.Tokens[0].Stopped)
	assert.True(t, *response.Tokens[0].Stopped)

	assert.Equal(t, "wolf", response.Tokens[1].Word)
	require.NotNil(t, response.Tokens[1].Stopped)
	assert.False(t, *response.Tokens[1].Stopped)

	assert.Contains(t, response.ContentLemmas, "wolf")
	assert.Contains(t, response.ContentLemmas, "forest")
	assert.NotContains(t, response.ContentLemmas, "the")
}

func TestHandleAnnotatePerRequestOverride(t *testing.T) {
	server := newTestServer(stopwords.Properties{
		stopwords.PropCustomList: "wolf",
	})

	params := AnnotateParams{
		Text:       "wolf forest",
		Properties: map[string]string{stopwords.PropCustomList: "forest"},
	}
	recorder := postAnnotate(t, server, params, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response AnnotateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.Equal(t, []string{"wolf"}, response.ContentLemmas)
	assert.Equal(t, []uint32{1}, response.StoppedPositions)
}

func TestHandleAnnotateNoListNoVerdicts(t *testing.T) {
	server := newTestServer(stopwords.Properties{
		stopwords.PropWordsShorterThan: "100",
	})

	recorder := postAnnotate(t, server, AnnotateParams{Text: "short words only"}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response AnnotateResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	require.Len(t, response.Tokens, 3)
	for _, token := range response.Tokens {
		assert.Nil(t, token.Stopped)
	}
	assert.Empty(t, response.StoppedPositions)
}

func TestHandleAnnotateBadConfig(t *testing.T) {
	server := newTestServer(nil)

	params := AnnotateParams{
		Text:       "anything",
		Properties: map[string]string{stopwords.PropWordsShorterThan: "three"},
	}
	recorder := postAnnotate(t, server, params, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleAnnotateBadJSON(t *testing.T) {
	server := newTestServer(nil)

	request := httptest.NewRequest(http.MethodPost, "/api/annotate", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	server.Router().ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGzipResponse(t *testing.T) {
	server := newTestServer(stopwords.Properties{stopwords.PropCustomList: "the"})

	header := http.Header{}
	header.Set("Accept-Encoding", "gzip")
	recorder := postAnnotate(t, server, AnnotateParams{Text: "the forest"}, header)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(recorder.Body)
	require.NoError(t, err)
	defer reader.Close()

	var response AnnotateResponse
	require.NoError(t, json.NewDecoder(reader).Decode(&response))
	assert.Equal(t, []string{"forest"}, response.ContentLemmas)
}
