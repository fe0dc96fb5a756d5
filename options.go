package icontact

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/LifePosts/icontact-go/internal/api"
)

// Production and sandbox API roots.
const (
	ProductionURL = api.DefaultBaseURL
	SandboxURL    = api.SandboxBaseURL
)

// DefaultAPIVersion is the Api-Version header value sent when no other
// version is configured.
const DefaultAPIVersion = api.DefaultAPIVersion

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	apiVersion     string
	httpClient     *http.Client
	timeout        time.Duration
	maxRetries     int
	debug          bool
	logger         zerolog.Logger
	store          CredentialStore
	accountID      string
	clientFolderID string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithSandbox targets the sandbox environment instead of production.
func WithSandbox() Option {
	return func(c *clientConfig) {
		c.baseURL = SandboxURL
	}
}

// WithAPIVersion sets the Api-Version header value.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) {
		c.apiVersion = version
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. Ignored when a custom HTTP
// client is supplied; timeouts are otherwise a transport concern.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries caps the consecutive-failure counter. Once the cap is
// reached, calls fail locally with *ExcessiveRetriesError until a success
// resets the counter. Zero disables the gate. Default: 5.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithDebugLogging enables request/response logging. Logging never
// affects control flow or call outcomes.
func WithDebugLogging() Option {
	return func(c *clientConfig) {
		c.debug = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithCredentialStore injects a credential-sharing collaborator. The
// client reads stored credentials once at construction.
func WithCredentialStore(store CredentialStore) Option {
	return func(c *clientConfig) {
		c.store = store
	}
}

// WithAccountID pre-seeds the cached account id, skipping discovery.
func WithAccountID(accountID string) Option {
	return func(c *clientConfig) {
		c.accountID = accountID
	}
}

// WithClientFolderID pre-seeds the cached client-folder id, skipping
// discovery.
func WithClientFolderID(clientFolderID string) Option {
	return func(c *clientConfig) {
		c.clientFolderID = clientFolderID
	}
}
