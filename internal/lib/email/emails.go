package email

import (
	"context"
	"fmt"

	"github.com/deppfellow/contact-form/internal/model"
)

// SendSubmissionReceivedEmail tells the site owner at `to` that a new
// contact form submission was stored.
func (c *Client) SendSubmissionReceivedEmail(ctx context.Context, to string, submission model.SubmissionResponse) error {
	data := map[string]string{
		"SubmissionID": submission.ID,
		"Name":         submission.Name,
		"Email":        submission.Email,
		"Message":      submission.Message,
	}

	return c.SendEmail(
		ctx,
		to,
		fmt.Sprintf("New contact form submission from %s", submission.Name),
		TemplateSubmissionReceived,
		data,
	)
}
