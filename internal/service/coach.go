package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sipwell/hydrokit-backend/internal/hydration"
)

const (
	defaultCoachAPIURL = "https://api.deepseek.com/v1/chat/completions"
	coachCacheTTL      = 10 * time.Minute
	coachFallback      = "Keep sipping steadily through the day and log what you drink — I'll have a better read once more of today is in."
)

// CoachService turns a gap breakdown into a short piece of coaching text
// via an external chat-completion API. The service is an opaque text
// producer: no domain logic lives here, and any failure degrades to a
// canned message so the recommendation flow never breaks.
type CoachService struct {
	apiKey string
	apiURL string
	client *http.Client
	redis  *redis.Client
}

var _ ICoachService = (*CoachService)(nil)

func NewCoachService(apiURL, apiKey string, redisClient *redis.Client) *CoachService {
	if apiURL == "" {
		apiURL = defaultCoachAPIURL
	}
	return &CoachService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
		redis:  redisClient,
	}
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// CoachMessage answers the user's question in the context of their current
// gap breakdown.
func (s *CoachService) CoachMessage(ctx context.Context, question string, gap *hydration.GapResult) (string, error) {
	if s.apiKey == "" {
		return coachFallback, nil
	}

	cacheKey := fmt.Sprintf("coach:%s:%s", gap.Context, question)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	prompt := fmt.Sprintf(
		"The user's hydration state today: gap %.0f ml (%s), drank %.0f ml of a recommended %.0f ml, water loss estimate %.0f ml. "+
			"Answer their question in 2-3 friendly sentences without medical claims.\n\nQuestion: %s",
		gap.HydrationGapML, gap.Context, gap.TotalWaterInputML, gap.RecommendedML, gap.WaterLossML, question,
	)

	reqBody := chatRequest{
		Model: "deepseek-chat",
		Messages: []Message{
			{Role: "system", Content: "You are a hydration coach for a consumer wellness app."},
			{Role: "user", Content: prompt},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return coachFallback, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(data))
	if err != nil {
		return coachFallback, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("coach: request failed: %v", err)
		return coachFallback, nil
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Printf("coach: bad response (status %d): %v", resp.StatusCode, err)
		return coachFallback, nil
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.Choices) == 0 {
		log.Printf("coach: unparseable response: %v", err)
		return coachFallback, nil
	}

	answer := parsed.Choices[0].Message.Content
	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, answer, coachCacheTTL).Err(); err != nil {
			log.Printf("coach: failed to cache answer: %v", err)
		}
	}
	return answer, nil
}
