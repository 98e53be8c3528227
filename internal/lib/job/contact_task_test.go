package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/deppfellow/estate-listings/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactInquiryTask(t *testing.T) {
	created := time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)
	inquiry := model.ContactInquiry{ID: "inq-1", Name: "Dara", Email: "dara@example.com", Phone: "012", Message: "Hello", CreatedAt: created}

	task, err := NewContactInquiryTask(inquiry)
	require.NoError(t, err)
	assert.Equal(t, TaskContactInquiry, task.Type())

	var payload ContactInquiryPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, "inq-1", payload.InquiryID)
	assert.Equal(t, "dara@example.com", payload.Email)
	assert.True(t, created.Equal(payload.CreatedAt))
}

func TestHandleContactInquirySkipsWhenDisabled(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}

	task, err := NewContactInquiryTask(model.ContactInquiry{ID: "inq-1"})
	require.NoError(t, err)

	assert.NoError(t, j.handleContactInquiryTask(context.Background(), task))
}

func TestHandleContactInquiryRejectsBadPayload(t *testing.T) {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}

	err := j.handleContactInquiryTask(context.Background(), asynq.NewTask(TaskContactInquiry, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}
