package whop

import (
	"context"
	"fmt"

	"github.com/chris/bidding-wars/pkg/notify"
)

type notificationRequest struct {
	ExperienceId string   `json:"experience_id"`
	UserIds      []string `json:"user_ids"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	RestPath     string   `json:"rest_path,omitempty"`
}

// SendNotification pushes a notification to one user inside the experience.
func (c *Client) SendNotification(ctx context.Context, n notify.Notification) error {
	body := notificationRequest{
		ExperienceId: n.CommunityId,
		UserIds:      []string{n.UserId},
		Title:        n.Title,
		Content:      n.Content,
	}
	if n.AuctionId != "" {
		body.RestPath = "/auctions/" + n.AuctionId
	}

	if err := c.do(ctx, "POST", "/api/v2/notifications", nil, body, nil); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
