package icontact

import (
	"context"
	"net/url"
)

// CustomObjects returns the custom-object definitions in the client
// folder.
func (c *Client) CustomObjects(ctx context.Context) ([]*Result, error) {
	path, err := c.folderPath(ctx, "customobjects")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("customobjects"), nil
}

// CustomObjectData returns the data rows of one custom object,
// optionally filtered by field values.
func (c *Client) CustomObjectData(ctx context.Context, objectID string, filters map[string]string) (*Result, error) {
	path, err := c.folderPath(ctx, "customobjects/"+url.PathEscape(objectID)+"/data")
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, path, filters)
}

// CreateCustomObjectData appends data rows to a custom object.
func (c *Client) CreateCustomObjectData(ctx context.Context, objectID string, rows []map[string]any) (*Result, error) {
	path, err := c.folderPath(ctx, "customobjects/"+url.PathEscape(objectID)+"/data")
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, path, rows)
}

// DeleteCustomObjectData deletes a data row from a custom object.
func (c *Client) DeleteCustomObjectData(ctx context.Context, objectID, rowID string) error {
	path, err := c.folderPath(ctx, "customobjects/"+url.PathEscape(objectID)+"/data/"+url.PathEscape(rowID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}
