package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/zabbix-tools/problem-report/internal/types"
	"github.com/zabbix-tools/problem-report/pkg/jsonedit"
)

const (
	jsonrpcVersion = "2.0"
	contentType    = "application/json-rpc"
	requestTimeout = 30 * time.Second
	// one report window is the trailing seven days ending at the start of
	// the current day
	reportWindow = 7 * 24 * time.Hour
)

//go:generate mockgen -source=client.go -package=zabbix -destination=mock_client.go

type EventSourceInterface interface {
	GetEvents(ctx context.Context, from, till int64) ([]types.RawEvent, error)
}

type Config struct {
	URL      string `envconfig:"ZABBIX_URL" required:"true"`
	Username string `envconfig:"ZABBIX_USERNAME" required:"true"`
	Password string `envconfig:"ZABBIX_PASSWORD" required:"true"`
	GroupID  string `envconfig:"ZABBIX_GROUP_ID" default:""`
}

// Client talks JSON-RPC 2.0 to a Zabbix frontend. A session token is
// obtained lazily with user.login and, when a session cache is attached,
// shared across report runs.
type Client struct {
	logger     *logrus.Logger
	httpClient *http.Client
	sessions   SessionCacheInterface
	config     *Config
	token      string
}

func NewClientFromEnv(logger *logrus.Logger, sessions SessionCacheInterface) (*Client, error) {
	config := &Config{}
	err := envconfig.Process("", config)
	if err != nil {
		return nil, err
	}
	return NewClient(logger, config, sessions), nil
}

func NewClient(logger *logrus.Logger, config *Config, sessions SessionCacheInterface) *Client {
	return &Client{
		logger: logger,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		sessions: sessions,
		config:   config,
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int         `json:"id"`
}

type eventGetParams struct {
	TimeFrom    int64    `json:"time_from"`
	TimeTill    int64    `json:"time_till"`
	GroupIDs    []string `json:"groupids,omitempty"`
	SelectHosts []string `json:"selectHosts"`
	Output      string   `json:"output"`
	SortField   []string `json:"sortfield"`
	SortOrder   string   `json:"sortorder"`
}

// GetEvents fetches all events in [from, till], restricted to the configured
// host group, sorted by (clock, eventid) ascending, with the host display
// name attached to each event.
func (c *Client) GetEvents(ctx context.Context, from, till int64) ([]types.RawEvent, error) {
	params := eventGetParams{
		TimeFrom:    from,
		TimeTill:    till,
		SelectHosts: []string{"host"},
		Output:      "extend",
		SortField:   []string{"clock", "eventid"},
		SortOrder:   "ASC",
	}
	if c.config.GroupID != "" {
		params.GroupIDs = []string{c.config.GroupID}
	}
	result, err := c.call(ctx, "event.get", params, true)
	if err != nil {
		return nil, err
	}
	events := []types.RawEvent{}
	if err := json.Unmarshal([]byte(result.Raw), &events); err != nil {
		return nil, fmt.Errorf("could not decode event.get result: %w", err)
	}
	c.logger.WithFields(logrus.Fields{
		"time_from": from,
		"time_till": till,
		"count":     len(events),
	}).Info("fetched events")
	return events, nil
}

func (c *Client) call(ctx context.Context, method string, params interface{}, authed bool) (gjson.Result, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: jsonrpcVersion,
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return gjson.Result{}, err
	}
	if authed {
		token, err := c.session(ctx)
		if err != nil {
			return gjson.Result{}, err
		}
		body, err = sjson.SetBytes(body, "auth", token)
		if err != nil {
			return gjson.Result{}, err
		}
	}
	c.logRequest(method, body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	if apiError := gjson.GetBytes(raw, "error"); apiError.Exists() {
		return gjson.Result{}, fmt.Errorf("zabbix api call %s failed: %s %s", method, apiError.Get("message").String(), apiError.Get("data").String())
	}
	result := gjson.GetBytes(raw, "result")
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("zabbix api call %s returned no result", method)
	}
	return result, nil
}

// logRequest logs the outgoing request body with credentials scrubbed.
func (c *Client) logRequest(method string, body []byte) {
	scrubbed, err := jsonedit.Redact(body, []string{"params.password"})
	if err != nil {
		return
	}
	scrubbed, err = jsonedit.Delete(scrubbed, []string{"auth"})
	if err != nil {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"method":  method,
		"request": string(scrubbed),
	}).Debug("calling zabbix api")
}

func (c *Client) session(ctx context.Context) (string, error) {
	if c.token != "" {
		return c.token, nil
	}
	if c.sessions != nil {
		token, err := c.sessions.Get(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("could not read cached session token")
		}
		if token != "" {
			c.token = token
			return c.token, nil
		}
	}
	result, err := c.call(ctx, "user.login", map[string]string{
		"username": c.config.Username,
		"password": c.config.Password,
	}, false)
	if err != nil {
		return "", err
	}
	c.token = result.String()
	if c.sessions != nil {
		if err := c.sessions.Set(ctx, c.token); err != nil {
			c.logger.WithError(err).Warn("could not cache session token")
		}
	}
	return c.token, nil
}

// ReportWindow returns the report bounds for a run happening at `now`: the
// trailing seven days ending at the start of the current day.
func ReportWindow(now time.Time) (int64, int64) {
	year, month, day := now.Date()
	till := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).Unix()
	from := till - int64(reportWindow.Seconds())
	return from, till
}
