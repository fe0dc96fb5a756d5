package icontact

import (
	"context"
	"net/url"
)

// Sends returns the scheduled and completed sends in the client folder.
func (c *Client) Sends(ctx context.Context, filters map[string]string) ([]*Result, error) {
	path, err := c.folderPath(ctx, "sends")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, filters)
	if err != nil {
		return nil, err
	}
	return res.Objects("sends"), nil
}

// Send returns a single send by id.
func (c *Client) Send(ctx context.Context, sendID string) (*Result, error) {
	path, err := c.folderPath(ctx, "sends/"+url.PathEscape(sendID))
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Object("send"), nil
}

// CreateSend schedules a message for delivery. The mapping needs
// "messageId" and the target lists ("includedLists"); "scheduledTime"
// defaults to immediate delivery when absent. Times must be given in the
// API's RFC 3339 form.
func (c *Client) CreateSend(ctx context.Context, send map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "sends")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, []map[string]any{send})
	if err != nil {
		return nil, err
	}
	return res.Objects("sends"), nil
}

// DeleteSend cancels a scheduled send.
func (c *Client) DeleteSend(ctx context.Context, sendID string) error {
	path, err := c.folderPath(ctx, "sends/"+url.PathEscape(sendID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}
