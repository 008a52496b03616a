package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"nceerrors/internal/app/client/config"
)

const requestIDHeader = "X-Request-ID"

// RemoteService REST контракт сервиса записей
type RemoteService interface {
	List(ctx context.Context, page, limit int) (*ListResult, error)
	Get(ctx context.Context, id int64) (*ErrorRecord, error)
	Create(ctx context.Context, draft Draft) (int64, error)
	Update(ctx context.Context, id int64, draft Draft) error
	Delete(ctx context.Context, id int64) error
}

// ListResult проверенная страница, присланная сервером
type ListResult struct {
	Items []ErrorRecord
	Total int
	Page  int
	Limit int
}

// Health ответ проверки доступности сервиса
type Health struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*HTTPClient, error) {
	base, err := url.Parse(cfg.APIBase)
	if err != nil {
		return nil, fmt.Errorf("некорректный адрес сервера: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &HTTPClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   strings.TrimRight(base.String(), "/"),
		userAgent: "NCEErrors-Client/1.0",
	}, nil
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) (*Health, error) {
	resp, reqID, err := h.doRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	body, err := h.readBody(resp, reqID)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, malformed("health", "%v", err)
	}
	return &health, nil
}

// List запрашивает страницу и строго проверяет ответ
func (h *HTTPClient) List(ctx context.Context, page, limit int) (*ListResult, error) {
	path := "/api/errors?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)

	resp, reqID, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	body, err := h.readBody(resp, reqID)
	if err != nil {
		return nil, err
	}

	return decodeList(body, limit)
}

// Get получает одну запись
func (h *HTTPClient) Get(ctx context.Context, id int64) (*ErrorRecord, error) {
	resp, reqID, err := h.doRequest(ctx, http.MethodGet, "/api/errors/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	body, err := h.readBody(resp, reqID)
	if err != nil {
		return nil, err
	}

	var rec ErrorRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, malformed("get", "%v", err)
	}
	if rec.ID == nil {
		return nil, malformed("get", "record without error_id")
	}
	return &rec, nil
}

// Create создает запись и возвращает ее ID (0, если сервер его не прислал)
func (h *HTTPClient) Create(ctx context.Context, draft Draft) (int64, error) {
	resp, reqID, err := h.doRequest(ctx, http.MethodPost, "/api/errors", draft)
	if err != nil {
		return 0, err
	}

	body, err := h.readBody(resp, reqID)
	if err != nil {
		return 0, err
	}

	var created struct {
		ID int64 `json:"error_id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		h.log.Debug("create response without id", "request_id", reqID, "error", err)
	}
	return created.ID, nil
}

// Update перезаписывает запись
func (h *HTTPClient) Update(ctx context.Context, id int64, draft Draft) error {
	resp, reqID, err := h.doRequest(ctx, http.MethodPut, "/api/errors/"+strconv.FormatInt(id, 10), draft)
	if err != nil {
		return err
	}

	_, err = h.readBody(resp, reqID)
	return err
}

// Delete удаляет запись
func (h *HTTPClient) Delete(ctx context.Context, id int64) error {
	resp, reqID, err := h.doRequest(ctx, http.MethodDelete, "/api/errors/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	_, err = h.readBody(resp, reqID)
	return err
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, string, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, "", &NetworkError{Op: method, Err: err}
	}

	reqID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
		"request_id", reqID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Warn("request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, reqID, &NetworkError{Op: method, Err: err}
	}

	return resp, reqID, nil
}

// readBody читает тело и превращает не-2xx ответ в *ServerError
func (h *HTTPClient) readBody(resp *http.Response, reqID string) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: "read", Err: fmt.Errorf("ошибка чтения ответа: %w", err)}
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"request_id", reqID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &ServerError{Status: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			se.Message = errResp.Error
		}
		h.log.Warn("server error", "status", se.Status, "reason", se.Reason(), "request_id", reqID)
		return nil, se
	}

	return body, nil
}

type listResponse struct {
	Items json.RawMessage `json:"items"`
	Total *int            `json:"total"`
	Page  *int            `json:"page"`
	Limit *int            `json:"limit"`
}

func decodeList(body []byte, limit int) (*ListResult, error) {
	var raw listResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, malformed("list", "%v", err)
	}

	trimmed := bytes.TrimSpace(raw.Items)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, malformed("list", "items must be an array")
	}

	var items []ErrorRecord
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, malformed("list", "items: %v", err)
	}

	if raw.Total == nil || *raw.Total < 0 {
		return nil, malformed("list", "total must be a non-negative integer")
	}
	if raw.Page == nil || *raw.Page < 1 {
		return nil, malformed("list", "page must be a positive integer")
	}
	// страницы считаются по нашему limit, чужой limit сдвигает нумерацию
	if raw.Limit != nil && *raw.Limit != limit {
		return nil, malformed("list", "server applied limit %d instead of requested %d, lower PAGE_LIMIT", *raw.Limit, limit)
	}
	if len(items) > limit {
		return nil, malformed("list", "%d items exceed limit %d", len(items), limit)
	}
	if last := LastPage(*raw.Total, limit); *raw.Page > last {
		return nil, malformed("list", "page %d beyond last page %d", *raw.Page, last)
	}
	for i, it := range items {
		if it.ID == nil {
			return nil, malformed("list", "item %d without error_id", i)
		}
	}

	return &ListResult{
		Items: items,
		Total: *raw.Total,
		Page:  *raw.Page,
		Limit: limit,
	}, nil
}
