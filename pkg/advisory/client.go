// Package advisory calls the external concierge analysis service that
// writes the short Korean consultation shown next to an estimate.
package advisory

// CONCIERGE ADVISORY CLIENT

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FallbackMessage is shown whenever the advisory service cannot answer.
// The visitor sees a graceful apology, never an error.
const FallbackMessage = "문의량이 많아 실시간 분석이 지연되고 있습니다. 전문 상담원에게 직접 문의해 주시면 상세히 안내해 드리겠습니다."

// EmptyResultMessage covers a successful call that carried no text.
const EmptyResultMessage = "현재 컨시어지 연결이 지연되고 있습니다. 잠시 후 다시 시도해 주십시오."

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// ConsultRequest carries the estimator inputs the concierge writes about.
type ConsultRequest struct {
	CarModel string `json:"car_model"`
	CarSize  string `json:"car_size"`
	Coverage string `json:"coverage"`
	Grade    string `json:"grade"`
}

type consultResponse struct {
	Text string `json:"text"`
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Enabled reports whether a service endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Consult requests a concierge analysis. It always returns presentable
// text: failures of any kind degrade to FallbackMessage. No retries,
// a late answer is worse than the apology.
func (c *Client) Consult(ctx context.Context, req ConsultRequest) string {
	if !c.Enabled() {
		return FallbackMessage
	}

	if req.CarModel == "" {
		req.CarModel = "미지정 (럭셔리 차량)"
	}

	body, err := json.Marshal(req)
	if err != nil {
		c.logger.Error("Failed to marshal advisory request", zap.Error(err))
		return FallbackMessage
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		"POST",
		fmt.Sprintf("%s/v1/consult", c.baseURL),
		bytes.NewReader(body),
	)
	if err != nil {
		c.logger.Error("Failed to create advisory request", zap.Error(err))
		return FallbackMessage
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("Advisory request failed", zap.Error(err))
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Advisory returned unexpected status",
			zap.Int("status", resp.StatusCode))
		return FallbackMessage
	}

	var out consultResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Warn("Failed to decode advisory response", zap.Error(err))
		return FallbackMessage
	}

	if strings.TrimSpace(out.Text) == "" {
		return EmptyResultMessage
	}
	return out.Text
}
