// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 15 * time.Second

	// listPageSize is the API maximum per page; fewer pages, fewer calls.
	listPageSize = 100

	acceptHeader = "application/vnd.github.v3+json"
	userAgent    = "gh-secret-sync"
)

// HTTPClientConfig carries everything the HTTP implementation needs to
// address one repository's secrets store.
type HTTPClientConfig struct {
	BaseURL      string
	Organization string
	Repository   string
	Token        string
	Timeout      time.Duration
	RetryCount   int
}

type httpRepoSecretsAdapter struct {
	client       *resty.Client
	organization string
	repository   string
}

// NewHTTPRepoSecretsAdapter constructs an HTTP/REST implementation of
// [RepoSecretsAdapter] against the GitHub Actions-secrets endpoints.
//
// The bearer credential is attached to every request at the client level.
// Transport-level retries (with resty's backoff) cover connection errors
// and 5xx responses; no retry logic exists above this layer.
func NewHTTPRepoSecretsAdapter(cfg HTTPClientConfig) RepoSecretsAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", acceptHeader).
		SetHeader("User-Agent", userAgent).
		SetHeader("Authorization", "Bearer "+cfg.Token)

	if cfg.RetryCount > 0 {
		cli.SetRetryCount(cfg.RetryCount).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
	}

	return &httpRepoSecretsAdapter{
		client:       cli,
		organization: cfg.Organization,
		repository:   cfg.Repository,
	}
}

// GetPublicKey implements [RepoSecretsAdapter]. It GETs the repository
// public-key endpoint and decodes {key_id, key}. Returns [ErrUnauthorized],
// [ErrNotFound] (wrapped) or a transport error.
func (h *httpRepoSecretsAdapter) GetPublicKey(ctx context.Context) (models.RepoPublicKey, error) {
	var key models.RepoPublicKey

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&key).
		Get(h.secretsPath("public-key"))
	if err != nil {
		return models.RepoPublicKey{}, fmt.Errorf("get public key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RepoPublicKey{}, err
	}

	return key, nil
}

// ListSecretNames implements [RepoSecretsAdapter]. It walks the paginated
// listing until the reported total is collected and returns the unioned
// name set.
func (h *httpRepoSecretsAdapter) ListSecretNames(ctx context.Context) ([]string, error) {
	var names []string

	for page := 1; ; page++ {
		resp, err := h.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"per_page": strconv.Itoa(listPageSize),
				"page":     strconv.Itoa(page),
			}).
			Get(h.secretsPath(""))
		if err != nil {
			return nil, fmt.Errorf("list secrets request (page %d): %w", page, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		var list models.SecretListResponse
		if err = json.Unmarshal(resp.Body(), &list); err != nil {
			return nil, fmt.Errorf("decode secret list response (page %d): %w", page, err)
		}

		for _, ref := range list.Secrets {
			names = append(names, ref.Name)
		}

		if len(list.Secrets) < listPageSize || len(names) >= list.TotalCount {
			return names, nil
		}
	}
}

// UpsertSecret implements [RepoSecretsAdapter]. It PUTs the sealed value
// with the key id that produced it. The 201/204 distinction the API makes
// for create vs update is deliberately ignored.
func (h *httpRepoSecretsAdapter) UpsertSecret(ctx context.Context, name, encryptedValue, keyID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpsertSecretRequest{EncryptedValue: encryptedValue, KeyID: keyID}).
		Put(h.secretsPath(name))
	if err != nil {
		return fmt.Errorf("upsert secret %s request: %w", name, err)
	}

	return mapHTTPError(resp)
}

// DeleteSecret implements [RepoSecretsAdapter]. A 404 response is treated
// as success: the name is already absent, which is the desired end state.
func (h *httpRepoSecretsAdapter) DeleteSecret(ctx context.Context, name string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(h.secretsPath(name))
	if err != nil {
		return fmt.Errorf("delete secret %s request: %w", name, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}

	return mapHTTPError(resp)
}

func (h *httpRepoSecretsAdapter) secretsPath(suffix string) string {
	base := fmt.Sprintf("/repos/%s/%s/actions/secrets", h.organization, h.repository)
	if suffix == "" {
		return base
	}
	return base + "/" + suffix
}
