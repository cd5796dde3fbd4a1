// Package directory talks to the external client and user directory services.
// Both are plain JSON-over-HTTP lookups authenticated by the caller's access
// token, which is forwarded untouched in the x-access-token header.
package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sectorflow/demand-service/internal/domain"
	"github.com/sectorflow/demand-service/pkg/ctxutil"
)

// TokenHeader carries the caller's access token to the directories.
const TokenHeader = "x-access-token"

const defaultTimeout = 10 * time.Second

// maxBody bounds how much of a directory response is read.
const maxBody = 4 << 20

// errorBody is the failure payload the directories answer with.
type errorBody struct {
	Error   string `json:"error"`
	Err     string `json:"err"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	switch {
	case b.Error != "":
		return b.Error
	case b.Err != "":
		return b.Err
	default:
		return b.Message
	}
}

// httpGetter performs authenticated GETs against one directory.
type httpGetter struct {
	service    string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func newGetter(service, baseURL string, timeout time.Duration, logger *slog.Logger) httpGetter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return httpGetter{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", service+"_directory"),
	}
}

// get fetches path and decodes a 2xx JSON body into out. Every failure the
// directory reports, including an unreachable service, becomes an
// *domain.UpstreamError carrying the message to show the caller.
func (g httpGetter) get(ctx context.Context, path string, out any) error {
	reqURL := g.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", g.service, err)
	}
	req.Header.Set("Accept", "application/json")
	if token, ok := ctxutil.AccessTokenFromCtx(ctx); ok {
		req.Header.Set(TokenHeader, token)
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s: %w", g.service, err)
		}
		g.log.ErrorContext(ctx, "directory request failed",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return upstream(g.service, fmt.Sprintf("%s service unavailable", g.service))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return upstream(g.service, fmt.Sprintf("%s service: read response: %v", g.service, err))
	}

	g.log.DebugContext(ctx, "directory response",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.text() != "" {
			return upstream(g.service, eb.text())
		}
		return upstream(g.service, fmt.Sprintf("%s service answered %d", g.service, resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return upstream(g.service, fmt.Sprintf("%s service: decode response: %v", g.service, err))
	}
	return nil
}

func upstream(service, message string) error {
	return domain.NewUpstreamError(service, message)
}
