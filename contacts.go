package icontact

import (
	"context"
	"net/url"
)

// SearchContacts returns contacts matching the given constraints.
// Constraints use contact field names and accept "*" wildcards, e.g.
// {"email": "*@example.com"}. An empty constraint map returns all
// contacts.
func (c *Client) SearchContacts(ctx context.Context, constraints map[string]string) (*Result, error) {
	path, err := c.folderPath(ctx, "contacts")
	if err != nil {
		return nil, err
	}
	return c.Get(ctx, path, constraints)
}

// Contact returns a single contact by id.
func (c *Client) Contact(ctx context.Context, contactID string) (*Result, error) {
	path, err := c.folderPath(ctx, "contacts/"+url.PathEscape(contactID))
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Object("contact"), nil
}

// CreateOrUpdateContacts creates new contacts or updates existing ones.
// Each mapping must include "email"; mappings that match an existing
// contact update it in place. Returns the resulting contact objects.
func (c *Client) CreateOrUpdateContacts(ctx context.Context, contacts []map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "contacts")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, contacts)
	if err != nil {
		return nil, err
	}
	return res.Objects("contacts"), nil
}

// UpdateContact updates selected fields of an existing contact without
// clearing the fields left out of the mapping.
func (c *Client) UpdateContact(ctx context.Context, contactID string, fields map[string]any) (*Result, error) {
	path, err := c.folderPath(ctx, "contacts/"+url.PathEscape(contactID))
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, fields)
	if err != nil {
		return nil, err
	}
	return res.Object("contact"), nil
}

// ReplaceContact replaces every field of an existing contact. Fields
// missing from the mapping are reset by the API.
func (c *Client) ReplaceContact(ctx context.Context, contactID string, contact map[string]any) (*Result, error) {
	path, err := c.folderPath(ctx, "contacts/"+url.PathEscape(contactID))
	if err != nil {
		return nil, err
	}
	res, err := c.Put(ctx, path, contact)
	if err != nil {
		return nil, err
	}
	return res.Object("contact"), nil
}

// DeleteContact deletes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	path, err := c.folderPath(ctx, "contacts/"+url.PathEscape(contactID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}

// ContactHistory returns the recorded history events for a contact.
func (c *Client) ContactHistory(ctx context.Context, contactID string) ([]*Result, error) {
	path, err := c.folderPath(ctx, "contacts/"+url.PathEscape(contactID)+"/actions")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("actions"), nil
}
