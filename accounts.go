package icontact

import (
	"context"
	"fmt"
	"net/url"
)

// Accounts returns the accounts visible to the authenticated user.
func (c *Client) Accounts(ctx context.Context) ([]*Result, error) {
	res, err := c.Get(ctx, "a/", nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("accounts"), nil
}

// FirstAccount returns the first account visible to the authenticated
// user. Most credentials map to exactly one account; this is the lookup
// used by lazy id resolution.
func (c *Client) FirstAccount(ctx context.Context) (*Result, error) {
	accounts, err := c.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccount
	}
	return accounts[0], nil
}

// ClientFolders returns the client folders under an account.
func (c *Client) ClientFolders(ctx context.Context, accountID string) ([]*Result, error) {
	path := fmt.Sprintf("a/%s/c/", url.PathEscape(accountID))
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("clientfolders"), nil
}

// FirstClientFolder returns the first client folder under an account.
func (c *Client) FirstClientFolder(ctx context.Context, accountID string) (*Result, error) {
	folders, err := c.ClientFolders(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(folders) == 0 {
		return nil, ErrNoClientFolder
	}
	return folders[0], nil
}
