package icontact

import (
	"context"
	"errors"
	"net/url"
)

// ErrNoLists is returned by FirstList when the folder has no lists.
var ErrNoLists = errors.New("no lists in this client folder")

// Lists returns the mailing lists in the client folder. Optional filter
// parameters (e.g. "name") narrow the result.
func (c *Client) Lists(ctx context.Context, params map[string]string) ([]*Result, error) {
	path, err := c.folderPath(ctx, "lists")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	return res.Objects("lists"), nil
}

// List returns a single mailing list by id.
func (c *Client) List(ctx context.Context, listID string) (*Result, error) {
	path, err := c.folderPath(ctx, "lists/"+url.PathEscape(listID))
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Object("list"), nil
}

// FirstList returns the first mailing list in the client folder.
func (c *Client) FirstList(ctx context.Context) (*Result, error) {
	lists, err := c.Lists(ctx, nil)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, ErrNoLists
	}
	return lists[0], nil
}

// CreateList creates a mailing list. The list mapping must include
// "name" and "emailOwnerOnChange"-style fields per the API reference.
func (c *Client) CreateList(ctx context.Context, list map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "lists")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, []map[string]any{list})
	if err != nil {
		return nil, err
	}
	return res.Objects("lists"), nil
}

// UpdateList replaces a mailing list's details.
func (c *Client) UpdateList(ctx context.Context, listID string, list map[string]any) (*Result, error) {
	path, err := c.folderPath(ctx, "lists/"+url.PathEscape(listID))
	if err != nil {
		return nil, err
	}
	res, err := c.Put(ctx, path, list)
	if err != nil {
		return nil, err
	}
	return res.Object("list"), nil
}

// DeleteList deletes a mailing list.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	path, err := c.folderPath(ctx, "lists/"+url.PathEscape(listID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}
