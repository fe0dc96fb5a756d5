package icontact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newFolderServer serves account/folder discovery plus a lists resource,
// counting requests per path.
func newFolderServer(t *testing.T, counts map[string]int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/a/", func(w http.ResponseWriter, r *http.Request) {
		counts[r.URL.Path]++
		switch r.URL.Path {
		case "/a/":
			w.Write([]byte(`{"accounts":[{"accountId":"111","enabled":1}]}`))
		case "/a/111/c/":
			w.Write([]byte(`{"clientfolders":[{"clientFolderId":"222"}]}`))
		case "/a/111/c/222/lists":
			w.Write([]byte(`{"lists":[{"listId":"7","name":"Weekly"}],"total":1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":["Resource not found"]}`))
		}
	})
	return httptest.NewServer(mux)
}

func TestNew_RequiresAppID(t *testing.T) {
	_, err := New("", "user", "pass")
	if !errors.Is(err, ErrMissingAppID) {
		t.Errorf("error = %v, want ErrMissingAppID", err)
	}
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New("app", "user", "")
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("error = %v, want ErrMissingCredentials", err)
	}
}

func TestNew_DefaultsToProduction(t *testing.T) {
	client, err := New("app", "user", "pass")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.BaseURL() != ProductionURL {
		t.Errorf("BaseURL() = %s, want %s", client.BaseURL(), ProductionURL)
	}
}

func TestFirstList_ResolvesAndCachesIDs(t *testing.T) {
	counts := make(map[string]int)
	server := newFolderServer(t, counts)
	defer server.Close()

	client, err := New("app", "user", "pass", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	list, err := client.FirstList(context.Background())
	if err != nil {
		t.Fatalf("FirstList() error = %v", err)
	}
	if got := list.String("listId"); got != "7" {
		t.Errorf("listId = %q, want 7", got)
	}

	// Exactly two discovery calls before the list request.
	if counts["/a/"] != 1 {
		t.Errorf("account discovery calls = %d, want 1", counts["/a/"])
	}
	if counts["/a/111/c/"] != 1 {
		t.Errorf("folder discovery calls = %d, want 1", counts["/a/111/c/"])
	}
	if counts["/a/111/c/222/lists"] != 1 {
		t.Errorf("list calls = %d, want 1", counts["/a/111/c/222/lists"])
	}
	if client.AccountID() != "111" {
		t.Errorf("AccountID() = %q, want 111", client.AccountID())
	}
	if client.ClientFolderID() != "222" {
		t.Errorf("ClientFolderID() = %q, want 222", client.ClientFolderID())
	}

	// Subsequent calls reuse the cached ids without repeating discovery.
	if _, err := client.FirstList(context.Background()); err != nil {
		t.Fatalf("second FirstList() error = %v", err)
	}
	if counts["/a/"] != 1 || counts["/a/111/c/"] != 1 {
		t.Errorf("discovery repeated: /a/ = %d, /a/111/c/ = %d", counts["/a/"], counts["/a/111/c/"])
	}
	if counts["/a/111/c/222/lists"] != 2 {
		t.Errorf("list calls = %d, want 2", counts["/a/111/c/222/lists"])
	}
}

func TestPreSeededIDsSkipDiscovery(t *testing.T) {
	counts := make(map[string]int)
	server := newFolderServer(t, counts)
	defer server.Close()

	client, err := New("app", "user", "pass",
		WithBaseURL(server.URL),
		WithAccountID("111"),
		WithClientFolderID("222"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := client.Lists(context.Background(), nil); err != nil {
		t.Fatalf("Lists() error = %v", err)
	}
	if counts["/a/"] != 0 || counts["/a/111/c/"] != 0 {
		t.Errorf("discovery ran despite pre-seeded ids: %v", counts)
	}
}

func TestResolveIDs_NoAccounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accounts":[]}`))
	}))
	defer server.Close()

	client, _ := New("app", "user", "pass", WithBaseURL(server.URL))
	_, _, err := client.ResolveIDs(context.Background())
	if !errors.Is(err, ErrNoAccount) {
		t.Errorf("error = %v, want ErrNoAccount", err)
	}
}

func TestClient_ErrorsPropagateWithStatusAndMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":["No contact found with id 99"]}`))
	}))
	defer server.Close()

	client, _ := New("app", "user", "pass",
		WithBaseURL(server.URL),
		WithAccountID("1"),
		WithClientFolderID("2"),
	)

	_, err := client.Contact(context.Background(), "99")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if len(apiErr.Messages) != 1 || apiErr.Messages[0] != "No contact found with id 99" {
		t.Errorf("Messages = %v", apiErr.Messages)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false")
	}
}

func TestClient_GetEmptyParamsNoQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, _ := New("app", "user", "pass", WithBaseURL(server.URL))
	if _, err := client.Get(context.Background(), "a/1/c/2/lists", map[string]string{}); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}
