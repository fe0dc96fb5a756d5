package icontact

import (
	"context"
	"net/url"

	"github.com/LifePosts/icontact-go/stats"
)

// Message types accepted by the API.
const (
	MessageTypeNormal        = "normal"
	MessageTypeAutoResponder = "autoresponder"
	MessageTypeWelcome       = "welcome"
	MessageTypeConfirmation  = "confirmation"
)

// Messages returns the messages in the client folder, optionally
// filtered, e.g. {"campaignId": "9", "messageType": "normal"}.
func (c *Client) Messages(ctx context.Context, filters map[string]string) ([]*Result, error) {
	path, err := c.folderPath(ctx, "messages")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, filters)
	if err != nil {
		return nil, err
	}
	return res.Objects("messages"), nil
}

// Message returns a single message by id.
func (c *Client) Message(ctx context.Context, messageID string) (*Result, error) {
	path, err := c.folderPath(ctx, "messages/"+url.PathEscape(messageID))
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Object("message"), nil
}

// CreateMessage creates a message. The mapping needs "campaignId",
// "messageType", "subject" and an htmlBody or textBody. Creating a
// message does not send it; use CreateSend for that.
func (c *Client) CreateMessage(ctx context.Context, message map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "messages")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, []map[string]any{message})
	if err != nil {
		return nil, err
	}
	return res.Objects("messages"), nil
}

// DeleteMessage deletes a message.
func (c *Client) DeleteMessage(ctx context.Context, messageID string) error {
	path, err := c.folderPath(ctx, "messages/"+url.PathEscape(messageID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}

// MessageBounces returns the bounce records for a sent message.
func (c *Client) MessageBounces(ctx context.Context, messageID string) ([]*Result, error) {
	path, err := c.folderPath(ctx, "messages/"+url.PathEscape(messageID)+"/bounces")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("bounces"), nil
}

// MessageStats returns the delivery statistics for a sent message. The
// statistics endpoint answers in markup; the response is run through the
// stats parser, which keeps only the metrics the API actually reported.
func (c *Client) MessageStats(ctx context.Context, messageID string) (*stats.MessageStats, error) {
	path, err := c.folderPath(ctx, "messages/"+url.PathEscape(messageID)+"/stats")
	if err != nil {
		return nil, err
	}
	body, err := c.GetXML(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return stats.Parse(body)
}

// MessageActivity returns the statistics for one metric kind ("opens",
// "clicks", "bounces", "unsubscribes" or "forwards") including the
// contacts who performed that action and when.
func (c *Client) MessageActivity(ctx context.Context, messageID, kind string) (*stats.MessageStats, error) {
	path, err := c.folderPath(ctx, "messages/"+url.PathEscape(messageID)+"/stats/"+url.PathEscape(kind))
	if err != nil {
		return nil, err
	}
	body, err := c.GetXML(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return stats.Parse(body)
}
