package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/multicart-cli/internal/domain"
	"github.com/bnema/multicart-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

const (
	cartsPath        = "api/storefront/carts"
	cartInclude      = "lineItems.digitalItems.options,lineItems.physicalItems.options"
	maxResponseBytes = 1 << 20
)

type Config struct {
	BaseURL           string
	RequestTimeout    time.Duration
	UserAgent         string
	SessionCookieName string
	SessionToken      string
}

type Client struct {
	baseURL           *url.URL
	httpClient        *http.Client
	requestTimeout    time.Duration
	userAgent         string
	sessionCookieName string
	logger            *zap.Logger
}

var _ ports.CartTransport = (*Client)(nil)

// NewClient builds a transport bound to one storefront origin. Requests share
// a cookie jar so the session cookie, and any cookie the storefront sets in
// return, travel with every call the way same-origin browser credentials do.
func NewClient(cfg Config, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	baseURL, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	client := &http.Client{}
	if httpClient != nil {
		copied := *httpClient
		client = &copied
	}
	if client.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("create cookie jar: %w", err)
		}
		client.Jar = jar
	}

	if token := strings.TrimSpace(cfg.SessionToken); token != "" {
		name := strings.TrimSpace(cfg.SessionCookieName)
		if name == "" {
			return nil, errors.New("session cookie name is required when a session token is set")
		}
		client.Jar.SetCookies(baseURL, []*http.Cookie{{Name: name, Value: token}})
	}

	return &Client{
		baseURL:           baseURL,
		httpClient:        client,
		requestTimeout:    cfg.RequestTimeout,
		userAgent:         cfg.UserAgent,
		sessionCookieName: strings.TrimSpace(cfg.SessionCookieName),
		logger:            logger.Named("storefront"),
	}, nil
}

// SessionToken returns the current value of the session cookie for the
// storefront origin, including one the storefront issued during this run.
func (c *Client) SessionToken() string {
	if c.sessionCookieName == "" {
		return ""
	}

	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == c.sessionCookieName {
			return cookie.Value
		}
	}

	return ""
}

func (c *Client) ReadCart(ctx context.Context) (domain.CartSnapshot, error) {
	query := url.Values{}
	query.Set("include", cartInclude)
	return c.readCarts(ctx, "read cart", query)
}

func (c *Client) ReadCartSummary(ctx context.Context) (domain.CartSnapshot, error) {
	return c.readCarts(ctx, "read cart summary", nil)
}

func (c *Client) CreateCart(ctx context.Context, items []domain.LineItemRequest) (domain.CartSnapshot, error) {
	endpoint := c.endpoint(nil, cartsPath)
	body, err := c.do(ctx, "create cart", http.MethodPost, endpoint, lineItemsRequest{LineItems: nonNilItems(items)})
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	return decodeCart("create cart", http.MethodPost, endpoint, body)
}

func (c *Client) AppendItems(ctx context.Context, cartID string, items []domain.LineItemRequest) (domain.CartSnapshot, error) {
	if strings.TrimSpace(cartID) == "" {
		return domain.CartSnapshot{}, &domain.TransportError{Op: "append items", Err: errors.New("cart id is required")}
	}

	endpoint := c.endpoint(nil, cartsPath, cartID, "items")
	body, err := c.do(ctx, "append items", http.MethodPost, endpoint, lineItemsRequest{LineItems: nonNilItems(items)})
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	return decodeCart("append items", http.MethodPost, endpoint, body)
}

func (c *Client) DeleteItem(ctx context.Context, cartID string, itemID string) error {
	if strings.TrimSpace(cartID) == "" {
		return &domain.TransportError{Op: "delete item", Err: errors.New("cart id is required")}
	}
	if strings.TrimSpace(itemID) == "" {
		return &domain.TransportError{Op: "delete item", Err: errors.New("item id is required")}
	}

	endpoint := c.endpoint(nil, cartsPath, cartID, "items", itemID)
	if _, err := c.do(ctx, "delete item", http.MethodDelete, endpoint, nil); err != nil {
		return err
	}

	return nil
}

func (c *Client) readCarts(ctx context.Context, op string, query url.Values) (domain.CartSnapshot, error) {
	endpoint := c.endpoint(query, cartsPath)
	body, err := c.do(ctx, op, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.CartSnapshot{}, err
	}

	var carts []cartPayload
	if err := json.Unmarshal(body, &carts); err != nil {
		return domain.CartSnapshot{}, &domain.TransportError{
			Op:     op,
			Method: http.MethodGet,
			URL:    endpoint.String(),
			Err:    fmt.Errorf("decode carts: %w", err),
		}
	}
	if len(carts) == 0 {
		return domain.CartSnapshot{}, nil
	}

	cart := carts[0].toDomain()
	return domain.CartSnapshot{Cart: &cart}, nil
}

func decodeCart(op string, method string, endpoint *url.URL, body []byte) (domain.CartSnapshot, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.CartSnapshot{}, nil
	}

	var payload cartPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.CartSnapshot{}, &domain.TransportError{
			Op:     op,
			Method: method,
			URL:    endpoint.String(),
			Err:    fmt.Errorf("decode cart: %w", err),
		}
	}

	cart := payload.toDomain()
	return domain.CartSnapshot{Cart: &cart}, nil
}

func (c *Client) do(ctx context.Context, op string, method string, endpoint *url.URL, payload any) ([]byte, error) {
	newError := func(statusCode int, body []byte, err error) error {
		return &domain.TransportError{
			Op:         op,
			Method:     method,
			URL:        endpoint.String(),
			StatusCode: statusCode,
			Body:       string(body),
			Err:        err,
		}
	}

	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, newError(0, nil, fmt.Errorf("encode request: %w", err))
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint.String(), reader)
	if err != nil {
		return nil, newError(0, nil, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("request", zap.String("op", op), zap.String("method", method), zap.String("url", endpoint.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newError(0, nil, fmt.Errorf("perform request: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, newError(resp.StatusCode, nil, fmt.Errorf("read response: %w", err))
	}

	c.logger.Debug("response", zap.String("op", op), zap.Int("status", resp.StatusCode), zap.Int("bytes", len(body)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newError(resp.StatusCode, body, nil)
	}

	return body, nil
}

// requestContext applies the configured timeout on top of the caller's
// deadline; the earlier of the two wins. With no timeout configured a hung
// request blocks until the caller's context is done.
func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.requestTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}

func (c *Client) endpoint(query url.Values, segments ...string) *url.URL {
	endpoint := c.baseURL.JoinPath(segments...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint
}

func nonNilItems(items []domain.LineItemRequest) []domain.LineItemRequest {
	if items == nil {
		return []domain.LineItemRequest{}
	}
	return items
}

func parseBaseURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("storefront base url is required")
	}

	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse storefront base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("storefront base url must use http or https")
	}
	if parsed.Host == "" {
		return nil, errors.New("storefront base url host is required")
	}

	if parsed.Path == "" {
		parsed.Path = "/"
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed, nil
}
