package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/deppfellow/estate-listings/internal/lib/email"
	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/hibiken/asynq"
)

// TaskContactInquiry notifies the agency inbox about a new inquiry.
const TaskContactInquiry = "email:contact_inquiry"

// ContactInquiryPayload is the JSON stored in Redis for the task.
type ContactInquiryPayload struct {
	InquiryID string    `json:"inquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactInquiryTask builds the notification task. The inquiry id doubles
// as the task id so a retried request cannot enqueue two emails.
func NewContactInquiryTask(inquiry model.ContactInquiry) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactInquiryPayload{
		InquiryID: inquiry.ID,
		Name:      inquiry.Name,
		Email:     inquiry.Email,
		Phone:     inquiry.Phone,
		Message:   inquiry.Message,
		CreatedAt: inquiry.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactInquiry,
		payload,
		asynq.TaskID("contact:"+inquiry.ID),
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyContactInquiry enqueues the notification for inquiry.
func (j *JobService) NotifyContactInquiry(ctx context.Context, inquiry model.ContactInquiry) error {
	task, err := NewContactInquiryTask(inquiry)
	if err != nil {
		return fmt.Errorf("failed to build contact inquiry task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue contact inquiry task: %w", err)
	}

	j.logger.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("contact inquiry notification enqueued")
	return nil
}

func (j *JobService) handleContactInquiryTask(ctx context.Context, t *asynq.Task) error {
	var p ContactInquiryPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact inquiry payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "contact_inquiry").
		Str("inquiry_id", p.InquiryID).
		Logger()

	if j.emailClient == nil || !j.emailClient.Enabled() || j.notifyEmail == "" {
		logger.Info().Msg("email notifications disabled, skipping contact inquiry task")
		return nil
	}

	logger.Info().Msg("processing contact inquiry notification")

	err := j.emailClient.SendContactInquiryNotification(ctx, j.notifyEmail, email.ContactInquiry{
		ID:        p.InquiryID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to send contact inquiry notification")
		return err
	}

	logger.Info().Msg("sent contact inquiry notification")
	return nil
}
