package icontact

import (
	"context"
	"net/url"
)

// Segments returns the segments in the client folder.
func (c *Client) Segments(ctx context.Context) ([]*Result, error) {
	path, err := c.folderPath(ctx, "segments")
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Objects("segments"), nil
}

// Segment returns a single segment by id.
func (c *Client) Segment(ctx context.Context, segmentID string) (*Result, error) {
	path, err := c.folderPath(ctx, "segments/"+url.PathEscape(segmentID))
	if err != nil {
		return nil, err
	}
	res, err := c.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Object("segment"), nil
}

// CreateSegment creates a segment. The mapping needs "name" and
// "listId".
func (c *Client) CreateSegment(ctx context.Context, segment map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "segments")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, []map[string]any{segment})
	if err != nil {
		return nil, err
	}
	return res.Objects("segments"), nil
}

// AddSegmentCriteria appends match criteria to a segment. Each mapping
// needs "fieldName", "operator" and "values".
func (c *Client) AddSegmentCriteria(ctx context.Context, segmentID string, criteria []map[string]any) ([]*Result, error) {
	path, err := c.folderPath(ctx, "segments/"+url.PathEscape(segmentID)+"/criteria")
	if err != nil {
		return nil, err
	}
	res, err := c.Post(ctx, path, criteria)
	if err != nil {
		return nil, err
	}
	return res.Objects("criteria"), nil
}

// DeleteSegment deletes a segment.
func (c *Client) DeleteSegment(ctx context.Context, segmentID string) error {
	path, err := c.folderPath(ctx, "segments/"+url.PathEscape(segmentID))
	if err != nil {
		return err
	}
	_, err = c.Delete(ctx, path, nil)
	return err
}
