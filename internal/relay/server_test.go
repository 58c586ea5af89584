package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// stubGenerator returns canned questions or a canned error.
type stubGenerator struct {
	questions []quizgen.Question
	err       error
	lastInput quizgen.GenerateInput
}

func (g *stubGenerator) Generate(_ context.Context, input quizgen.GenerateInput) ([]quizgen.Question, error) {
	g.lastInput = input
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

func testServer(gen *stubGenerator) *httptest.Server {
	return httptest.NewServer(NewServer(gen, 3001, "test").Handler())
}

func TestGenerateQuiz_OK(t *testing.T) {
	gen := &stubGenerator{questions: []quizgen.Question{{
		Text:         "An inspector finds a chipped cutting board. What hazard type is this?",
		Options:      []string{"Biological", "Chemical", "Physical", "Allergenic"},
		CorrectIndex: 2,
		Explanation:  "Fragments from damaged equipment are physical hazards.",
	}}}
	srv := testServer(gen)
	defer srv.Close()

	body := `{"count": 5, "difficulty": "Beginner", "topic": "Sanitation", "language": "English"}`
	resp, err := http.Post(srv.URL+"/api/generate-quiz", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Questions []quizgen.Question `json:"questions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Questions, 1)
	assert.Equal(t, 2, out.Questions[0].CorrectIndex)

	assert.Equal(t, 5, gen.lastInput.Count)
	assert.Equal(t, "English", gen.lastInput.Language)
	assert.Equal(t, "Sanitation", string(gen.lastInput.Topic))
}

func TestGenerateQuiz_MissingParams(t *testing.T) {
	srv := testServer(&stubGenerator{})
	defer srv.Close()

	body := `{"count": 5, "topic": "Sanitation"}`
	resp, err := http.Post(srv.URL+"/api/generate-quiz", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["error"], "Missing required parameters")
}

func TestGenerateQuiz_UnknownTopic(t *testing.T) {
	srv := testServer(&stubGenerator{})
	defer srv.Close()

	body := `{"count": 5, "difficulty": "Beginner", "topic": "Astrology", "language": "English"}`
	resp, err := http.Post(srv.URL+"/api/generate-quiz", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateQuiz_GeneratorFailure(t *testing.T) {
	srv := testServer(&stubGenerator{err: errors.New("provider down")})
	defer srv.Close()

	body := `{"count": 5, "difficulty": "Expert", "topic": "HACCP", "language": "Hindi"}`
	resp, err := http.Post(srv.URL+"/api/generate-quiz", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Failed to generate quiz questions", out["error"])
	assert.Contains(t, out["details"], "provider down")
}

func TestHealth(t *testing.T) {
	srv := testServer(&stubGenerator{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "test", out["env"])
	assert.NotEmpty(t, out["timestamp"])
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(&stubGenerator{})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/generate-quiz", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
