package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/model"
)

func (c *Client) ListUsers(ctx context.Context) ([]model.ReferenceItem, error) {
	return c.listReference(ctx, constants.PathUsers)
}

func (c *Client) ListCategories(ctx context.Context) ([]model.ReferenceItem, error) {
	return c.listReference(ctx, constants.PathCategories)
}

func (c *Client) ListPaymentMethods(ctx context.Context) ([]model.ReferenceItem, error) {
	return c.listReference(ctx, constants.PathPaymentMethods)
}

func (c *Client) listReference(ctx context.Context, path string) ([]model.ReferenceItem, error) {
	var items []model.ReferenceItem
	if err := c.FetchJSON(ctx, path, RequestOptions{}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.FetchJSON(ctx, constants.PathTransactions, RequestOptions{}, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction posts draft. The created record in the response is not used.
func (c *Client) CreateTransaction(ctx context.Context, draft model.TransactionDraft) error {
	return c.FetchJSON(ctx, constants.PathTransactions, RequestOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    draft,
	}, nil)
}

func (c *Client) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.FetchJSON(ctx, transactionPath(id), RequestOptions{}, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// UpdateTransaction replaces transaction id with draft.
func (c *Client) UpdateTransaction(ctx context.Context, id int64, draft model.TransactionDraft) error {
	return c.FetchJSON(ctx, transactionPath(id), RequestOptions{
		Method:  http.MethodPut,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    draft,
	}, nil)
}

func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.FetchJSON(ctx, transactionPath(id), RequestOptions{Method: http.MethodDelete}, nil)
}

func transactionPath(id int64) string {
	return constants.PathTransactions + strconv.FormatInt(id, 10)
}
