package icontact

import (
	"context"
	"fmt"
	"net/url"
)

// Subscription statuses accepted by the API.
const (
	StatusNormal       = "normal"
	StatusPending      = "pending"
	StatusUnsubscribed = "unsubscribed"
)

// Subscriptions returns list subscriptions, optionally filtered, e.g.
// {"contactId": "42"} or {"listId": "7", "status": "normal"}.
func (c *Client) Subscriptions(ctx context.Context, filters map[string]string) (*Result, error) {
	path, err := c.folderPath(ctx, "subscriptions")
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, path, filters)
}

// CreateOrUpdateSubscriptions subscribes contacts to lists. Each mapping
// needs "contactId", "listId" and "status".
func (c *Client) CreateOrUpdateSubscriptions(ctx context.Context, subscriptions []map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "subscriptions")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, subscriptions)
	if err != nil {
		return nil, err
	}
	return res.Objects("subscriptions"), nil
}

// UpdateSubscription changes the status of one subscription. The
// subscription id has the form "{listId}_{contactId}".
func (c *Client) UpdateSubscription(ctx context.Context, listID, contactID, status string) (*Result, error) {
	subscriptionID := fmt.Sprintf("%s_%s", listID, contactID)
	path, err := c.folderPath(ctx, "subscriptions/"+url.PathEscape(subscriptionID))
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, map[string]any{"status": status})
	if err != nil {
		return nil, err
	}
	return res.Object("subscription"), nil
}

// MoveSubscriber moves a contact from one list to another by rewriting
// the subscription's listId.
func (c *Client) MoveSubscriber(ctx context.Context, fromListID, contactID, toListID string) (*Result, error) {
	subscriptionID := fmt.Sprintf("%s_%s", fromListID, contactID)
	path, err := c.folderPath(ctx, "subscriptions/"+url.PathEscape(subscriptionID))
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, map[string]any{"listId": toListID})
	if err != nil {
		return nil, err
	}
	return res.Object("subscription"), nil
}

// Unsubscribe sets a contact's subscription on a list to unsubscribed.
func (c *Client) Unsubscribe(ctx context.Context, listID, contactID string) (*Result, error) {
	return c.UpdateSubscription(ctx, listID, contactID, StatusUnsubscribed)
}
