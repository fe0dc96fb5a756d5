package icontact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/LifePosts/icontact-go/internal/api"
)

// Client performs operations against the iContact API.
//
// Folder-scoped operations need an account id and a client-folder id.
// Both are resolved lazily through the discovery endpoints on first use
// and cached for the client's lifetime; WithAccountID and
// WithClientFolderID pre-seed the cache. The cache and the retry counter
// are unsynchronized: a Client must not be shared across goroutines
// without external locking.
type Client struct {
	api   *api.Client
	store CredentialStore
	creds Credentials

	accountID      string
	clientFolderID string
}

// New creates a client authenticated with an application key, the
// iContact username, and the API application password.
func New(appID, username, password string, opts ...Option) (*Client, error) {
	if appID == "" {
		return nil, ErrMissingAppID
	}
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	cfg := &clientConfig{
		maxRetries: -1,
		logger:     zerolog.Nop(),
		store:      NoopCredentialStore{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		AppID:      appID,
		Username:   username,
		Password:   password,
		APIVersion: cfg.apiVersion,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.maxRetries,
		Debug:      cfg.debug,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	creds, err := cfg.store.Credentials()
	if err != nil {
		return nil, fmt.Errorf("read credential store: %w", err)
	}

	return &Client{
		api:            apiClient,
		store:          cfg.store,
		creds:          creds,
		accountID:      cfg.accountID,
		clientFolderID: cfg.clientFolderID,
	}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// AccountID returns the cached account id, or "" before resolution.
func (c *Client) AccountID() string {
	return c.accountID
}

// ClientFolderID returns the cached client-folder id, or "" before
// resolution.
func (c *Client) ClientFolderID() string {
	return c.clientFolderID
}

// Credentials returns the credentials read from the store at
// construction, or the last pair passed to StoreCredentials.
func (c *Client) Credentials() Credentials {
	return c.creds
}

// StoreCredentials records newly issued credentials on the client and
// forwards them to the credential store.
func (c *Client) StoreCredentials(creds Credentials) error {
	c.creds = creds
	return c.store.SetCredentials(creds)
}

// ResolveIDs returns the account id and client-folder id, performing
// discovery for whichever is not yet cached. Discovery runs at most once
// per client; later calls reuse the cached ids.
func (c *Client) ResolveIDs(ctx context.Context) (accountID, clientFolderID string, err error) {
	if c.accountID == "" {
		account, err := c.FirstAccount(ctx)
		if err != nil {
			return "", "", err
		}
		c.accountID = account.String("accountId")
	}
	if c.clientFolderID == "" {
		folder, err := c.FirstClientFolder(ctx, c.accountID)
		if err != nil {
			return "", "", err
		}
		c.clientFolderID = folder.String("clientFolderId")
	}
	return c.accountID, c.clientFolderID, nil
}

// folderPath composes a folder-scoped resource path, resolving ids first.
func (c *Client) folderPath(ctx context.Context, resource string) (string, error) {
	accountID, clientFolderID, err := c.ResolveIDs(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("a/%s/c/%s/%s", accountID, clientFolderID, resource), nil
}

// Get performs a GET against a relative resource path with optional
// query parameters. It is the raw escape hatch used by every resource
// helper; paths are relative to the API root, e.g. "a/12345/c/67890/lists".
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (*Result, error) {
	return c.do(ctx, api.Request{Path: path, Params: params})
}

// Post performs a POST with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, body any) (*Result, error) {
	return c.do(ctx, api.Request{Method: "POST", Path: path, Body: body})
}

// PostForm performs a POST with form-encoded fields.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string) (*Result, error) {
	return c.do(ctx, api.Request{Method: "POST", Path: path, Params: fields, Form: true})
}

// Put performs a PUT with a JSON payload. PUT always carries structured
// data; there is no form-encoded variant.
func (c *Client) Put(ctx context.Context, path string, body any) (*Result, error) {
	return c.do(ctx, api.Request{Method: "PUT", Path: path, Body: body})
}

// Delete performs a DELETE with optional query parameters.
func (c *Client) Delete(ctx context.Context, path string, params map[string]string) (*Result, error) {
	return c.do(ctx, api.Request{Method: "DELETE", Path: path, Params: params})
}

// GetXML performs a GET negotiating a markup response and returns the
// raw body for the caller's parser.
func (c *Client) GetXML(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	resp, err := c.api.Do(ctx, api.Request{Path: path, Params: params, Format: api.FormatXML})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) do(ctx context.Context, req api.Request) (*Result, error) {
	resp, err := c.api.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return DecodeResult(resp.Body)
}
