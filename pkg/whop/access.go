package whop

import (
	"context"
	"fmt"
	"net/url"

	"github.com/chris/bidding-wars/pkg/auth"
)

type accessResponse struct {
	HasAccess   bool   `json:"has_access"`
	AccessLevel string `json:"access_level"`
}

// CheckAccess reports the user's access level in an experience.
func (c *Client) CheckAccess(ctx context.Context, userID, communityID string) (auth.AccessLevel, error) {
	var resp accessResponse
	path := fmt.Sprintf("/api/v2/users/%s/access/%s", url.PathEscape(userID), url.PathEscape(communityID))
	if err := c.do(ctx, "GET", path, nil, nil, &resp); err != nil {
		return "", fmt.Errorf("failed to check access: %w", err)
	}

	if !resp.HasAccess {
		return auth.AccessNone, nil
	}
	switch auth.AccessLevel(resp.AccessLevel) {
	case auth.AccessAdmin:
		return auth.AccessAdmin, nil
	default:
		return auth.AccessCustomer, nil
	}
}
