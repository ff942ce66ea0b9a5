package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meal-order-client/configs"
	"meal-order-client/internal/domain"
	"meal-order-client/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MealClientAdapter implements RemoteStore interface
var _ output.RemoteStore = (*MealClientAdapter)(nil)

// Meal backend endpoints
const (
	pathListExclusions  = "/meicanAccount/listAllCheck"
	pathUpsertExclusion = "/meicanAccount/addAccountDishCheck"
	pathListAccounts    = "/meicanAccount/listAll"
	pathAddAccount      = "/meicanAccount/addAccount"
	pathPageTasks       = "/meicanTask/pageTask"
	pathAddTask         = "/meicanTask/addTask"
	pathRemoveTask      = "/meicanTask/removeTask"
	pathDishList        = "/meicanTask/dishList"

	// HeaderRequestID carries a per-call correlation id to the backend
	HeaderRequestID = "X-Request-ID"

	envelopeCodeOK   = 200
	orderPageSize    = 100
	maxErrorBodySize = 4096
)

// MealClientAdapter struct - Output adapter for the meal backend's HTTP API.
// Calls are never retried: a timeout or failure surfaces to the caller.
type MealClientAdapter struct {
	httpClient     *http.Client
	baseURL        string
	timeout        time.Duration
	location       *time.Location
	onUnauthorized func(ctx context.Context)
}

// NewMealClientAdapter func - Creates new meal backend client adapter.
// onUnauthorized is invoked whenever the backend answers 401; it may be nil.
func NewMealClientAdapter(config configs.Remote, location *time.Location, onUnauthorized func(ctx context.Context)) (*MealClientAdapter, error) {
	baseURL := strings.TrimSuffix(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = "http://localhost:8080/backend/api"
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid meal backend base URL %q: %w", baseURL, err)
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 5 * time.Second
	}

	if location == nil {
		location = time.Local
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &MealClientAdapter{
		httpClient:     httpClient,
		baseURL:        baseURL,
		timeout:        timeout,
		location:       location,
		onUnauthorized: onUnauthorized,
	}

	logrus.Infof("Meal backend client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// ListExclusionRecords fetches every user's exclusion record
func (a *MealClientAdapter) ListExclusionRecords(ctx context.Context) ([]domain.ExclusionRecord, error) {
	var raw []exclusionRecordAPI
	if err := a.do(ctx, http.MethodGet, pathListExclusions, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list exclusion records: %w", err)
	}

	records := make([]domain.ExclusionRecord, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.toDomain(a.location))
	}
	return records, nil
}

// UpsertExclusionRecord writes the full record for its owner
func (a *MealClientAdapter) UpsertExclusionRecord(ctx context.Context, record domain.ExclusionRecord) error {
	body := exclusionUpsertAPI{
		AccountName:   record.Owner,
		ExpireDate:    a.encodeExpireDate(record),
		NoOrderDishes: encodeDishList(record.ExcludedDishes),
	}
	if err := a.do(ctx, http.MethodPost, pathUpsertExclusion, nil, body, nil); err != nil {
		return fmt.Errorf("failed to upsert exclusion record: %w", err)
	}
	return nil
}

// encodeExpireDate returns the stored expire value untouched when the record
// still carries it, so a datetime or zoned value is not cut to a calendar date
func (a *MealClientAdapter) encodeExpireDate(record domain.ExclusionRecord) string {
	if record.ExpireText != "" {
		stored, err := domain.ParseDate(record.ExpireText, a.location)
		if err == nil && stored.Equal(record.ExpireAt) {
			return record.ExpireText
		}
	}
	return domain.FormatDate(record.ExpireAt, a.location)
}

// ListOrderTasks fetches the first page of order tasks
func (a *MealClientAdapter) ListOrderTasks(ctx context.Context) ([]domain.OrderRequest, error) {
	query := url.Values{}
	query.Set("pageNo", "1")
	query.Set("pageSize", fmt.Sprint(orderPageSize))

	var page orderTaskPageAPI
	if err := a.do(ctx, http.MethodGet, pathPageTasks, query, nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list order tasks: %w", err)
	}

	orders := make([]domain.OrderRequest, 0, len(page.Records))
	for _, r := range page.Records {
		orders = append(orders, r.toDomain(a.location))
	}
	return orders, nil
}

// CreateOrderTask submits an order of dishName for accountName on date
func (a *MealClientAdapter) CreateOrderTask(ctx context.Context, accountName, dishName string, date time.Time) error {
	body := orderTaskCreateAPI{
		AccountName: accountName,
		OrderDish:   dishName,
		OrderDate:   domain.FormatDate(date, a.location),
	}
	if err := a.do(ctx, http.MethodPost, pathAddTask, nil, body, nil); err != nil {
		return fmt.Errorf("failed to create order task: %w", err)
	}
	return nil
}

// DeleteOrderTask removes an order task by ID
func (a *MealClientAdapter) DeleteOrderTask(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("taskId", id)
	if err := a.do(ctx, http.MethodDelete, pathRemoveTask, query, nil, nil); err != nil {
		return fmt.Errorf("failed to delete order task %s: %w", id, err)
	}
	return nil
}

// ListDishes fetches the dishes on offer to accountName on date
func (a *MealClientAdapter) ListDishes(ctx context.Context, accountName string, date time.Time) ([]string, error) {
	query := url.Values{}
	query.Set("accountName", accountName)
	query.Set("date", domain.FormatDate(date, a.location))

	var dishes []string
	if err := a.do(ctx, http.MethodGet, pathDishList, query, nil, &dishes); err != nil {
		return nil, fmt.Errorf("failed to list dishes: %w", err)
	}
	return domain.NormalizeDishes(dishes), nil
}

// ListAccounts fetches the registered auto-order accounts
func (a *MealClientAdapter) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var raw []accountAPI
	if err := a.do(ctx, http.MethodGet, pathListAccounts, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(raw))
	for _, r := range raw {
		accounts = append(accounts, domain.Account{Name: r.AccountName, Cookie: r.AccountCookie})
	}
	return accounts, nil
}

// AddAccount registers a meal platform account
func (a *MealClientAdapter) AddAccount(ctx context.Context, account domain.Account) error {
	body := accountAPI{
		AccountName:     account.Name,
		AccountPassword: account.Password,
		AccountCookie:   account.Cookie,
	}
	if err := a.do(ctx, http.MethodPost, pathAddAccount, nil, body, nil); err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}
	return nil
}

// do sends one request and unwraps the {code, msg, data} envelope into out.
// A 401 fires the unauthorized hook before returning domain.ErrUnauthorized.
func (a *MealClientAdapter) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := a.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		logrus.Errorf("Meal backend %s %s (request %s) failed: %v", method, path, requestID, err)
		return fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		logrus.Warnf("Meal backend %s %s (request %s) answered 401", method, path, requestID)
		if a.onUnauthorized != nil {
			a.onUnauthorized(context.WithoutCancel(ctx))
		}
		return fmt.Errorf("%w: status %d", domain.ErrUnauthorized, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		logrus.Errorf("Meal backend %s %s (request %s) answered %d", method, path, requestID, resp.StatusCode)
		return fmt.Errorf("%w: status %d - %s", domain.ErrTransport, resp.StatusCode, strings.TrimSpace(string(errBody)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to parse response: %w", domain.ErrTransport, err)
	}
	if env.Code != envelopeCodeOK {
		msg := env.Msg
		if msg == "" {
			msg = "request failed"
		}
		logrus.Errorf("Meal backend %s %s (request %s) rejected: code %d, %s", method, path, requestID, env.Code, msg)
		return fmt.Errorf("%w: %s", domain.ErrTransport, msg)
	}

	logrus.Debugf("Meal backend %s %s (request %s) ok", method, path, requestID)

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to parse response data: %w", domain.ErrTransport, err)
	}
	return nil
}
