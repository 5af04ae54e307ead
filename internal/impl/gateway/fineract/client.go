package impl_fineract

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
	"time"

	impl_rest "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/rest"
	port_ledger "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/ledger"
	"go.uber.org/zap"
)

const (
	routeSearch          = "search"
	routeSavingsAccounts = "savingsaccounts"
	routeClients         = "clients"
	routeCharges         = "charges"

	headerTenant = "fineract-platform-tenantId"
)

type Config struct {
	BaseURL  string
	TenantID string
	Username string
	Password string
	Timeout  time.Duration
	Breaker  impl_rest.BreakerConfig
}

// Client talks to the Apache Fineract REST API.
type Client struct {
	rest *impl_rest.Client
	log  *zap.Logger
}

var _ port_ledger.Client = (*Client)(nil)

func New(cfg Config, doer impl_rest.HTTPDoer, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	rest, err := impl_rest.New(impl_rest.Options{
		Name:    "fineract",
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Headers: map[string]string{
			headerTenant:    cfg.TenantID,
			"Authorization": basicAuth(cfg.Username, cfg.Password),
		},
		Breaker: cfg.Breaker,
		Doer:    doer,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	return &Client{rest: rest, log: log.Named("fineract")}, nil
}

func basicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func (c *Client) Healthy() bool {
	return c.rest.Healthy()
}

func (c *Client) Search(ctx context.Context, accountNo string) (port_ledger.SearchResponse, error) {
	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodGet,
		Path:   routeSearch,
		Query: url.Values{
			"query":      {accountNo},
			"resource":   {"savingsaccount"},
			"exactMatch": {"true"},
		},
	})
	if err != nil {
		return port_ledger.SearchResponse{}, err
	}

	out := port_ledger.SearchResponse{StatusCode: res.StatusCode}
	if res.StatusCode != http.StatusOK {
		return out, nil
	}

	if err := impl_rest.DecodeJSON(res, &out.Entities); err != nil {
		return port_ledger.SearchResponse{}, err
	}
	return out, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID int64) (port_ledger.AccountResponse, error) {
	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodGet,
		Path:   routeSavingsAccounts + "/" + strconv.FormatInt(accountID, 10),
	})
	if err != nil {
		return port_ledger.AccountResponse{}, err
	}

	out := port_ledger.AccountResponse{StatusCode: res.StatusCode}
	if res.StatusCode != http.StatusOK {
		c.log.Warn("savings account lookup rejected", zap.Int64("account_id", accountID), zap.Int("status", res.StatusCode))
		return out, nil
	}

	if err := impl_rest.DecodeJSON(res, &out.Account); err != nil {
		return port_ledger.AccountResponse{}, err
	}
	return out, nil
}

func (c *Client) GetClient(ctx context.Context, clientID int64) (port_ledger.ClientResponse, error) {
	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodGet,
		Path:   routeClients + "/" + strconv.FormatInt(clientID, 10),
	})
	if err != nil {
		return port_ledger.ClientResponse{}, err
	}

	out := port_ledger.ClientResponse{StatusCode: res.StatusCode}
	if res.StatusCode != http.StatusOK {
		return out, nil
	}

	if err := impl_rest.DecodeJSON(res, &out.Client); err != nil {
		return port_ledger.ClientResponse{}, err
	}
	out.Raw = res.Body
	return out, nil
}

func (c *Client) Deposit(ctx context.Context, accountID int64, tx port_ledger.TransactionInstruction) (port_ledger.TransactionResult, error) {
	return c.transact(ctx, "deposit", accountID, tx)
}

func (c *Client) Withdraw(ctx context.Context, accountID int64, tx port_ledger.TransactionInstruction) (port_ledger.TransactionResult, error) {
	return c.transact(ctx, "withdrawal", accountID, tx)
}

func (c *Client) transact(ctx context.Context, command string, accountID int64, tx port_ledger.TransactionInstruction) (port_ledger.TransactionResult, error) {
	c.log.Info("posting savings transaction",
		zap.String("command", command),
		zap.Int64("account_id", accountID),
		zap.String("account_no", tx.AccountNumber),
		zap.Stringer("amount", tx.TransactionAmount),
	)

	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodPost,
		Path:   routeSavingsAccounts + "/" + strconv.FormatInt(accountID, 10) + "/transactions",
		Query:  url.Values{"command": {command}},
		Body:   tx,
	})
	if err != nil {
		return port_ledger.TransactionResult{}, err
	}

	if res.StatusCode != http.StatusOK {
		c.log.Warn("savings transaction rejected",
			zap.String("command", command),
			zap.Int("status", res.StatusCode),
			zap.ByteString("body", res.Body),
		)
		return port_ledger.TransactionResult{StatusCode: res.StatusCode}, nil
	}

	var out port_ledger.TransactionResult
	if err := impl_rest.DecodeJSON(res, &out); err != nil {
		return port_ledger.TransactionResult{}, err
	}
	out.StatusCode = res.StatusCode
	return out, nil
}

func (c *Client) GetCharges(ctx context.Context) (port_ledger.ChargesResponse, error) {
	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodGet,
		Path:   routeCharges,
	})
	if err != nil {
		return port_ledger.ChargesResponse{}, err
	}

	out := port_ledger.ChargesResponse{StatusCode: res.StatusCode}
	if res.StatusCode != http.StatusOK {
		return out, nil
	}

	if err := impl_rest.DecodeJSON(res, &out.Charges); err != nil {
		return port_ledger.ChargesResponse{}, err
	}
	return out, nil
}
