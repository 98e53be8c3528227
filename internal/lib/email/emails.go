package email

import (
	"context"
	"fmt"
	"time"
)

// ContactInquiry carries the fields shown in the agency notification.
type ContactInquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// SendContactInquiryNotification tells the agency inbox about a new inquiry.
func (c *Client) SendContactInquiryNotification(ctx context.Context, to string, inquiry ContactInquiry) error {
	data := map[string]string{
		"InquiryID":  inquiry.ID,
		"Name":       inquiry.Name,
		"Email":      inquiry.Email,
		"Phone":      inquiry.Phone,
		"Message":    inquiry.Message,
		"ReceivedAt": inquiry.CreatedAt.UTC().Format(time.RFC1123),
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("New inquiry from %s", inquiry.Name),
		TemplateContactInquiry,
		data,
	)
}
