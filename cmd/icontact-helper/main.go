package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	icontact "github.com/LifePosts/icontact-go"
)

type settings struct {
	AppID          string `envconfig:"API_KEY" required:"true"`
	Username       string `envconfig:"USERNAME" required:"true"`
	Password       string `envconfig:"PASSWORD" required:"true"`
	AccountID      string `envconfig:"ACCOUNT_ID"`
	ClientFolderID string `envconfig:"CLIENT_FOLDER_ID"`
	Sandbox        bool   `envconfig:"SANDBOX"`
	Debug          bool   `envconfig:"DEBUG"`
}

func main() {
	if len(os.Args) < 2 {
		fatal("usage: icontact-helper <command> [args]\n\ncommands: account, folders, lists, contacts, create-contact, subscribe, message-stats")
	}

	_ = godotenv.Load()

	var cfg settings
	if err := envconfig.Process("ICONTACT", &cfg); err != nil {
		fatal("read environment: %v", err)
	}

	opts := []icontact.Option{}
	if cfg.Sandbox {
		opts = append(opts, icontact.WithSandbox())
	}
	if cfg.AccountID != "" {
		opts = append(opts, icontact.WithAccountID(cfg.AccountID))
	}
	if cfg.ClientFolderID != "" {
		opts = append(opts, icontact.WithClientFolderID(cfg.ClientFolderID))
	}
	if cfg.Debug {
		opts = append(opts, icontact.WithDebugLogging())
	}

	client, err := icontact.New(cfg.AppID, cfg.Username, cfg.Password, opts...)
	if err != nil {
		fatal("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "account":
		account(ctx, client)
	case "folders":
		folders(ctx, client)
	case "lists":
		lists(ctx, client)
	case "contacts":
		contacts(ctx, client)
	case "create-contact":
		if len(os.Args) < 3 {
			fatal("usage: icontact-helper create-contact <email>")
		}
		createContact(ctx, client, os.Args[2])
	case "subscribe":
		if len(os.Args) < 4 {
			fatal("usage: icontact-helper subscribe <listId> <contactId>")
		}
		subscribe(ctx, client, os.Args[2], os.Args[3])
	case "message-stats":
		if len(os.Args) < 3 {
			fatal("usage: icontact-helper message-stats <messageId>")
		}
		messageStats(ctx, client, os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func account(ctx context.Context, client *icontact.Client) {
	res, err := client.FirstAccount(ctx)
	if err != nil {
		fatal("fetch account: %v", err)
	}
	emit(res.ToMap())
}

func folders(ctx context.Context, client *icontact.Client) {
	accountID, _, err := client.ResolveIDs(ctx)
	if err != nil {
		fatal("resolve ids: %v", err)
	}
	results, err := client.ClientFolders(ctx, accountID)
	if err != nil {
		fatal("list folders: %v", err)
	}
	emitAll(results)
}

func lists(ctx context.Context, client *icontact.Client) {
	results, err := client.Lists(ctx, nil)
	if err != nil {
		fatal("list lists: %v", err)
	}
	emitAll(results)
}

func contacts(ctx context.Context, client *icontact.Client) {
	res, err := client.SearchContacts(ctx, map[string]string{"limit": "20"})
	if err != nil {
		fatal("search contacts: %v", err)
	}
	emitAll(res.Objects("contacts"))
}

func createContact(ctx context.Context, client *icontact.Client, email string) {
	results, err := client.CreateOrUpdateContacts(ctx, []map[string]any{
		{"email": email},
	})
	if err != nil {
		fatal("create contact: %v", err)
	}
	emitAll(results)
}

func subscribe(ctx context.Context, client *icontact.Client, listID, contactID string) {
	results, err := client.CreateOrUpdateSubscriptions(ctx, []map[string]any{
		{"listId": listID, "contactId": contactID, "status": icontact.StatusNormal},
	})
	if err != nil {
		fatal("subscribe: %v", err)
	}
	emitAll(results)
}

func messageStats(ctx context.Context, client *icontact.Client, messageID string) {
	res, err := client.MessageStats(ctx, messageID)
	if err != nil {
		fatal("fetch stats: %v", err)
	}
	emit(res.Summaries)
}

func emit(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func emitAll(results []*icontact.Result) {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		out = append(out, r.ToMap())
	}
	emit(out)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
