package impl_sdkclient

import (
	"context"
	"net/http"
	"net/url"
	"time"

	impl_rest "github.com/PedroCamargo-dev/fineract-core-connector/internal/impl/gateway/rest"
	port_sdk "github.com/PedroCamargo-dev/fineract-core-connector/internal/ports/gateway/sdk"
	"go.uber.org/zap"
)

const routeTransfers = "transfers"

type Config struct {
	BaseURL string
	Timeout time.Duration
	Breaker impl_rest.BreakerConfig
}

// Client calls the outbound API of the Mojaloop SDK scheme adapter.
type Client struct {
	rest *impl_rest.Client
	log  *zap.Logger
}

var _ port_sdk.Client = (*Client)(nil)

func New(cfg Config, doer impl_rest.HTTPDoer, log *zap.Logger) (*Client, error) {
	if log == nil {
		log = zap.NewNop()
	}

	rest, err := impl_rest.New(impl_rest.Options{
		Name:    "sdk",
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Breaker: cfg.Breaker,
		Doer:    doer,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	return &Client{rest: rest, log: log.Named("sdk")}, nil
}

func (c *Client) Healthy() bool {
	return c.rest.Healthy()
}

func (c *Client) InitiateTransfer(ctx context.Context, req port_sdk.TransferRequest) (port_sdk.TransferResponse, error) {
	c.log.Info("initiating transfer",
		zap.String("home_transaction_id", req.HomeTransactionID),
		zap.Stringer("amount", req.Amount),
		zap.String("currency", req.Currency),
	)

	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodPost,
		Path:   routeTransfers,
		Body:   req,
	})
	if err != nil {
		return port_sdk.TransferResponse{}, err
	}

	if res.StatusCode != http.StatusOK {
		c.log.Warn("initiate transfer rejected", zap.Int("status", res.StatusCode), zap.ByteString("body", res.Body))
		return port_sdk.TransferResponse{StatusCode: res.StatusCode}, nil
	}

	var out port_sdk.TransferResponse
	if err := impl_rest.DecodeJSON(res, &out); err != nil {
		return port_sdk.TransferResponse{}, err
	}
	out.StatusCode = res.StatusCode
	out.Raw = res.Body

	return out, nil
}

func (c *Client) ConfirmTransfer(ctx context.Context, transferID string, accept port_sdk.TransferContinuation) (port_sdk.ContinuationResponse, error) {
	c.log.Info("continuing transfer", zap.String("transfer_id", transferID), zap.Bool("accept_quote", accept.AcceptQuote))

	res, err := c.rest.Do(ctx, impl_rest.Request{
		Method: http.MethodPut,
		Path:   routeTransfers + "/" + url.PathEscape(transferID),
		Body:   accept,
	})
	if err != nil {
		return port_sdk.ContinuationResponse{}, err
	}

	if res.StatusCode != http.StatusOK {
		c.log.Warn("continue transfer rejected", zap.Int("status", res.StatusCode), zap.ByteString("body", res.Body))
	}

	return port_sdk.ContinuationResponse{StatusCode: res.StatusCode, Body: res.Body}, nil
}
