package recommendations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzarauf/linkora/internal/features/auth"
	"github.com/hamzarauf/linkora/internal/pkg/logger"
)

type fakeCandidateSource struct {
	pool []Candidate
	err  error
}

func (f *fakeCandidateSource) CandidatePool(ctx context.Context, requesterID primitive.ObjectID) ([]Candidate, error) {
	return f.pool, f.err
}

type fakeInsights struct {
	text   string
	err    error
	called bool
}

func (f *fakeInsights) Summarize(ctx context.Context, requester *auth.User, results []MatchResult) (string, error) {
	f.called = true
	return f.text, f.err
}

func setupRecommendRouter(t *testing.T, source CandidateSource, insights InsightGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	scorer := NewScorer(WeightsV1)
	scorer.now = func() time.Time { return testNow }
	handler := NewHandler(source, insights, scorer, time.Second, logger.New(logger.ERROR))

	requester := testUser("650000000000000000000001", nil)

	r := gin.New()
	r.POST("/recommendations", func(c *gin.Context) {
		c.Set("user", requester)
		c.Set("userID", requester.ID.Hex())
	}, handler.Recommend)
	return r
}

func recommendPayload(t *testing.T, w *httptest.ResponseRecorder) RecommendResponse {
	t.Helper()
	var body struct {
		Status string            `json:"status"`
		Data   RecommendResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	return body.Data
}

func richPool() []Candidate {
	return []Candidate{
		{User: testUser("650000000000000000000002", nil), MutualConnections: 4},
		{User: testUser("650000000000000000000003", func(u *auth.User) {
			u.Location = "Berlin, Germany"
			u.Industry = "Finance"
		}), MutualConnections: 1},
		{User: testUser("650000000000000000000004", func(u *auth.User) {
			u.Interests = nil
			u.Goals = nil
			u.Strengths = nil
			u.Industry = ""
			u.Location = ""
			u.LastActiveAt = time.Time{}
		}), MutualConnections: 0},
	}
}

func TestRecommendEmptyBodyUsesDefaults(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", nil))

	require.Equal(t, 200, w.Code)
	payload := recommendPayload(t, w)
	require.NotEmpty(t, payload.Recommendations)
	require.Equal(t, "", payload.AIInsights)
	for _, rec := range payload.Recommendations {
		require.GreaterOrEqual(t, rec.Score, defaultMinScore)
	}
}

func TestRecommendEmptyPoolReturnsEmptyList(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: []Candidate{}}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{}`)))

	require.Equal(t, 200, w.Code)
	payload := recommendPayload(t, w)
	require.Empty(t, payload.Recommendations)
	require.Equal(t, "", payload.AIInsights)
}

func TestRecommendRespectsMaxResultsAndMinScore(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, nil)

	body := `{"preferences":{"maxResults":1,"minScore":0}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))

	require.Equal(t, 200, w.Code)
	payload := recommendPayload(t, w)
	require.Len(t, payload.Recommendations, 1)
}

func TestRecommendCapsReasonsAtThree(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"preferences":{"minScore":0}}`)))

	require.Equal(t, 200, w.Code)
	for _, rec := range recommendPayload(t, w).Recommendations {
		require.LessOrEqual(t, len(rec.Reasons), maxReasons)
	}
}

func TestRecommendRejectsUnknownMatchTypeFilter(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, nil)

	body := `{"filters":{"matchType":"astrology"}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))

	require.Equal(t, 400, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_MATCH_TYPE", resp["code"])
}

func TestRecommendDeterministicAcrossCalls(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, nil)

	body := `{"preferences":{"minScore":0,"dubaiFocus":true}}`

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))

	require.Equal(t, 200, w1.Code)
	require.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestRecommendIdenticalCandidatesOrderedByUserID(t *testing.T) {
	// Two byte-identical profiles except their ids: the tie must resolve to
	// ascending userId.
	clone := func(hexID string) Candidate {
		return Candidate{User: testUser(hexID, nil), MutualConnections: 2}
	}
	pool := []Candidate{clone("650000000000000000000009"), clone("650000000000000000000002")}
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: pool}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"preferences":{"minScore":0}}`)))

	require.Equal(t, 200, w.Code)
	payload := recommendPayload(t, w)
	require.Len(t, payload.Recommendations, 2)
	require.Equal(t, "650000000000000000000002", payload.Recommendations[0].UserID)
	require.Equal(t, "650000000000000000000009", payload.Recommendations[1].UserID)
	require.Equal(t, payload.Recommendations[0].Score, payload.Recommendations[1].Score)
}

func TestRecommendIncludesInsightsWhenRequested(t *testing.T) {
	insights := &fakeInsights{text: "Great matches this week."}
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, insights)

	body := `{"preferences":{"minScore":0},"includeAIInsights":true}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))

	require.Equal(t, 200, w.Code)
	require.True(t, insights.called)
	require.Equal(t, "Great matches this week.", recommendPayload(t, w).AIInsights)
}

func TestRecommendInsightsFailureDegradesToEmpty(t *testing.T) {
	insights := &fakeInsights{err: errors.New("model overloaded")}
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, insights)

	body := `{"preferences":{"minScore":0},"includeAIInsights":true}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(body)))

	require.Equal(t, 200, w.Code)
	payload := recommendPayload(t, w)
	require.NotEmpty(t, payload.Recommendations)
	require.Equal(t, "", payload.AIInsights)
}

func TestRecommendInsightsSkippedWhenNotRequested(t *testing.T) {
	insights := &fakeInsights{text: "should not appear"}
	r := setupRecommendRouter(t, &fakeCandidateSource{pool: richPool()}, insights)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", strings.NewReader(`{"preferences":{"minScore":0}}`)))

	require.Equal(t, 200, w.Code)
	require.False(t, insights.called)
	require.Equal(t, "", recommendPayload(t, w).AIInsights)
}

func TestRecommendCandidateSourceErrorReturns500(t *testing.T) {
	r := setupRecommendRouter(t, &fakeCandidateSource{err: errors.New("mongo down")}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/recommendations", nil))

	require.Equal(t, 500, w.Code)
}
