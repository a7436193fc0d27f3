package notification

import (
	"context"
	"fmt"
	"html"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/domain/model"
	domainRepo "github.com/ecologicaleaving/wikigaialab/internal/domain/repository"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
)

// MailSender sends prepared messages; *gomail.Dialer satisfies it
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailConfig holds SMTP settings for the email notifier
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// EmailNotifier mails achievement and reputation milestone notifications.
// Other notification kinds are not mailed.
type EmailNotifier struct {
	sender   MailSender
	users    domainRepo.UserRepository
	from     string
	fromName string
	logger   *zap.Logger
}

// NewEmailNotifier creates a notifier sending through an SMTP dialer
func NewEmailNotifier(cfg EmailConfig, users domainRepo.UserRepository, logger *zap.Logger) interfaces.Notifier {
	return NewEmailNotifierWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg, users, logger)
}

// NewEmailNotifierWithSender creates a notifier with a custom sender
func NewEmailNotifierWithSender(sender MailSender, cfg EmailConfig, users domainRepo.UserRepository, logger *zap.Logger) *EmailNotifier {
	fromName := cfg.FromName
	if fromName == "" {
		fromName = "WikiGaiaLab"
	}
	return &EmailNotifier{
		sender:   sender,
		users:    users,
		from:     cfg.From,
		fromName: fromName,
		logger:   logger,
	}
}

func (n *EmailNotifier) send(ctx context.Context, userID uuid.UUID, subject, body string) error {
	user, err := n.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load recipient: %w", err)
	}
	if user == nil || user.Email == "" {
		n.logger.Debug("Skipping email for user without address", zap.String("user_id", userID.String()))
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(n.from, n.fromName))
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", fmt.Sprintf(
		`<p>Ciao <strong>%s</strong>,</p><p>%s</p><p>WikiGaiaLab</p>`,
		html.EscapeString(user.DisplayName), body,
	))

	if err := n.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	n.logger.Info("Notification email sent",
		zap.String("user_id", userID.String()),
		zap.String("subject", subject))
	return nil
}

func (n *EmailNotifier) SendAchievementNotification(ctx context.Context, userID uuid.UUID, achievement entity.AwardedAchievement) error {
	return n.send(ctx, userID,
		fmt.Sprintf("Achievement unlocked: %s", achievement.Name),
		fmt.Sprintf("You earned <strong>%s</strong> and gained %d reputation points.",
			html.EscapeString(achievement.Name), achievement.Points),
	)
}

func (n *EmailNotifier) SendReputationMilestoneNotification(ctx context.Context, userID uuid.UUID, milestone, score int) error {
	return n.send(ctx, userID,
		fmt.Sprintf("Your reputation reached %d", milestone),
		fmt.Sprintf("Your reputation is now <strong>%d</strong> points. Thank you for contributing!", score),
	)
}

func (n *EmailNotifier) SendFollowNotification(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}

func (n *EmailNotifier) SendProblemFavoritedNotification(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) error {
	return nil
}

func (n *EmailNotifier) SendActivityMilestoneNotification(context.Context, uuid.UUID, model.ActivityType, int64) error {
	return nil
}
