package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/timeslot-matcher/internal/domain/reminder"
	"github.com/BruksfildServices01/timeslot-matcher/internal/httperr"
	"github.com/BruksfildServices01/timeslot-matcher/internal/models"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, r *models.Reminder) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRepo) List(ctx context.Context, userID uint, filter domain.Filter, today string) ([]models.Reminder, error) {
	args := m.Called(ctx, userID, filter, today)
	out, _ := args.Get(0).([]models.Reminder)
	return out, args.Error(1)
}

func (m *mockRepo) GetForUser(ctx context.Context, id, userID uint) (*models.Reminder, error) {
	args := m.Called(ctx, id, userID)
	r, _ := args.Get(0).(*models.Reminder)
	return r, args.Error(1)
}

func (m *mockRepo) SetStatus(ctx context.Context, id uint, status domain.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func TestCreateReminder_ImportantFlag(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Reminder")).Return(nil)

	r, err := NewCreateReminder(repo).Execute(context.Background(), CreateReminderInput{
		UserID: 1, Date: "2025-05-02", Content: "buy flowers", Important: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "important", r.Status)
}

func TestListReminders_TodayUsesConfiguredZone(t *testing.T) {
	repo := new(mockRepo)
	repo.On("List", mock.Anything, uint(1), domain.FilterToday, "2025-05-02").Return([]models.Reminder{{ID: 4}}, nil)

	uc := NewListReminders(repo, "Asia/Seoul")
	uc.now = func() time.Time { return time.Date(2025, 5, 1, 16, 0, 0, 0, time.UTC) }

	out, err := uc.Execute(context.Background(), 1, "today")
	require.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertExpectations(t)
}

func TestListReminders_BadFilter(t *testing.T) {
	_, err := NewListReminders(new(mockRepo), "UTC").Execute(context.Background(), 1, "someday")
	assert.True(t, httperr.IsBusiness(err, "invalid_filter"))
}

func TestCompleteReminder(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetForUser", mock.Anything, uint(3), uint(1)).Return(&models.Reminder{ID: 3, UserID: 1, Status: "normal"}, nil)
	repo.On("SetStatus", mock.Anything, uint(3), domain.StatusDone).Return(nil)
	repo.On("GetForUser", mock.Anything, uint(3), uint(2)).Return(nil, httperr.ErrNotFound)

	uc := NewCompleteReminder(repo, nil)

	r, err := uc.Execute(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, "done", r.Status)

	_, err = uc.Execute(context.Background(), 2, 3)
	assert.True(t, httperr.IsBusiness(err, "reminder_not_found"))
}
