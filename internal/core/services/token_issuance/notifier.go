package tokenissuance

import (
	"context"
	"errors"
	"fmt"
	c "forumaccount/internal/core/domain/common"
	"forumaccount/internal/core/domain/content"
	"forumaccount/internal/core/domain/email"
	e "forumaccount/internal/core/domain/errors"
	"forumaccount/internal/core/domain/link"
	"forumaccount/internal/core/domain/logging"
	"forumaccount/internal/core/domain/user"
	"html"
)

var ErrNoTemplate = errors.New("no email template configured")

type Notifier interface {
	Notify(ctx context.Context, purpose Purpose, u user.User, token user.Token) error
}

// EmailNotifier renders the purpose template and puts the result into the
// email queue. Delivery itself happens elsewhere.
type EmailNotifier struct {
	log       logging.Logger
	forumName string
	templates content.Repository
	links     link.Builder
	queue     email.Queue
}

func NewEmailNotifier(
	log logging.Logger,
	forumName string,
	templates content.Repository,
	links link.Builder,
	queue email.Queue,
) *EmailNotifier {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if templates == nil {
		panic(e.NewNilArgumentError("templates"))
	}
	if links == nil {
		panic(e.NewNilArgumentError("links"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	return &EmailNotifier{
		log:       log,
		forumName: forumName,
		templates: templates,
		links:     links,
		queue:     queue,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, purpose Purpose, u user.User, token user.Token) error {
	if !u.HasEmail() {
		return email.ErrEmptyRecipient
	}

	template, err := n.templates.GetByKey(ctx, purpose.TemplateKey)
	if errors.Is(err, content.ErrTemplateDoesNotExist) {
		n.log.Warning(ctx, "Email template is not configured.", logging.Entry("key", purpose.TemplateKey))
		return fmt.Errorf("%w: %s", ErrNoTemplate, purpose.TemplateKey)
	}
	if err != nil {
		return fmt.Errorf("could not get template %s: %w", purpose.TemplateKey, err)
	}

	url, err := n.links.AbsoluteURL(purpose.Route, string(token))
	if err != nil {
		return fmt.Errorf("could not build link: %w", err)
	}
	filled := template.Fill(n.forumName, anchor(url))

	userID := c.NewOptional(u.ID, u.ID != 0)
	err = n.queue.Enqueue(ctx, email.QueueInput{
		To:      u.Email.Value,
		Subject: filled.Topic,
		Content: filled.Body,
		UserID:  userID,
	})
	if err != nil {
		return fmt.Errorf("could not enqueue email: %w", err)
	}
	n.log.Debug(
		ctx,
		"Token email has been queued.",
		logging.Entry("purpose", purpose.Name),
		logging.Entry("userID", u.ID),
	)
	return nil
}

func anchor(url string) string {
	escaped := html.EscapeString(url)
	return fmt.Sprintf(`<a href="%s">%s</a>`, escaped, escaped)
}
