package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var ErrNotFound = fmt.Errorf("scene not found")
var ErrUnauthorized = fmt.Errorf("request not authorized")
var ErrBusy = fmt.Errorf("export channel busy")
var ErrInternal = fmt.Errorf("internal error")

var tracer = otel.Tracer("paragen-client")

const TraceAttributeSceneName string = "scene-name"

type SceneClient interface {
	RetrieveScene(ctx context.Context, name string) ([]byte, error)
}

func New(serverURL string, options ...func(*sceneClient)) SceneClient {
	c := &sceneClient{
		baseURL: serverURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func AuthToken(token string) func(*sceneClient) {
	return func(c *sceneClient) {
		c.authToken = token
	}
}

type sceneClient struct {
	baseURL    string
	authToken  string
	httpClient http.Client
}

func (c *sceneClient) RetrieveScene(ctx context.Context, name string) ([]byte, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-scene",
		trace.WithAttributes(attribute.String(TraceAttributeSceneName, name)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	endpoint := c.baseURL + "/api/scenes/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = fmt.Errorf("failed to create request: %w", err)
		return nil, err
	}

	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve scene: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		err = errorFromResponse(resp.StatusCode, resp.Header.Get("Content-Type"), body)
		return nil, err
	}

	return body, nil
}

func errorFromResponse(code int, contentType string, body []byte) error {
	target := ErrInternal

	switch code {
	case http.StatusNotFound:
		target = ErrNotFound
	case http.StatusUnauthorized:
		target = ErrUnauthorized
	case http.StatusServiceUnavailable:
		target = ErrBusy
	}

	if contentType == "application/problem+json" {
		problem := struct {
			Title  string `json:"title"`
			Detail string `json:"detail"`
		}{}

		if json.Unmarshal(body, &problem) == nil && problem.Detail != "" {
			return fmt.Errorf("%s: %s (%w)", problem.Title, problem.Detail, target)
		}
	}

	return fmt.Errorf("unexpected response code %d (%w)", code, target)
}
