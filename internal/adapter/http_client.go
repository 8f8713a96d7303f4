// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/agchain/agwallet/internal/config"
	"github.com/agchain/agwallet/internal/logger"
	"github.com/agchain/agwallet/models"
)

type httpNodeAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPNodeAdapter constructs a [NodeAdapter] over the node's HTTP API.
func NewHTTPNodeAdapter(cfg config.ClientNode, log *logger.Logger) NodeAdapter {
	baseURL := cfg.URL
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &httpNodeAdapter{client: cli, logger: log}
}

func (h *httpNodeAdapter) WalletInfo(ctx context.Context, address string) (models.WalletInfo, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("address", address).
		Get("/wallet/info/{address}")
	if err != nil {
		return models.WalletInfo{}, fmt.Errorf("%w: %v", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletInfo{}, err
	}

	var info models.WalletInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.WalletInfo{}, fmt.Errorf("decode wallet info response: %w", err)
	}

	return info, nil
}

func (h *httpNodeAdapter) FeeRate(ctx context.Context) (models.FeeRate, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/blockchain/fee-rate")
	if err != nil {
		return models.FeeRate{}, fmt.Errorf("%w: %v", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeeRate{}, err
	}

	var rate models.FeeRate
	if err = json.Unmarshal(resp.Body(), &rate); err != nil {
		return models.FeeRate{}, fmt.Errorf("decode fee rate response: %w", err)
	}

	return rate, nil
}

func (h *httpNodeAdapter) SubmitTransaction(ctx context.Context, req models.TransactRequest) (models.TransactResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/wallet/transact")
	if err != nil {
		return models.TransactResponse{}, fmt.Errorf("%w: %v", ErrNodeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransactResponse{}, err
	}

	var out models.TransactResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.TransactResponse{}, fmt.Errorf("decode transact response: %w", err)
	}

	return out, nil
}

// mapHTTPError converts a non-2xx node reply into one of the adapter
// sentinels, attaching the node's "detail" message when present.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	detail := extractDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrNodeUnavailable, code, detail)
	}
	return fmt.Errorf("%w: %s", ErrRejected, detail)
}

// extractDetail pulls the "detail" field out of the node's JSON error body.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	return payload.Detail
}
