package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/service"
)

type MockStore struct{ mock.Mock }

func (m *MockStore) Save(ctx context.Context, sub *domain.Submission) error {
	args := m.Called(ctx, sub)
	if args.Error(0) == nil {
		sub.ID = uuid.NewString()
	}
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStaff(ctx context.Context, sub *domain.Submission) error {
	return m.Called(ctx, sub).Error(0)
}
func (m *MockNotifier) AutoReply(ctx context.Context, sub *domain.Submission) error {
	return m.Called(ctx, sub).Error(0)
}

func validInput() service.Input {
	return service.Input{
		Type:    "request",
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "need catering for 50",
	}
}

func TestSubmit_Success(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	nt.On("NotifyStaff", mock.Anything, mock.Anything).Return(nil)
	nt.On("AutoReply", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewLeadService(store, nt)
	sub, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, domain.KindRequest, sub.Kind)
	assert.Equal(t, "Jane Doe", sub.Name)
	store.AssertNumberOfCalls(t, "Save", 1)
	nt.AssertNumberOfCalls(t, "NotifyStaff", 1)
	nt.AssertNumberOfCalls(t, "AutoReply", 1)
}

func TestSubmit_DefaultsToContactKind(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	nt.On("NotifyStaff", mock.Anything, mock.Anything).Return(nil)
	nt.On("AutoReply", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewLeadService(store, nt)

	for _, typ := range []string{"", "catering", "REQUEST", "bogus"} {
		in := validInput()
		in.Type = typ
		sub, err := svc.Submit(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, domain.KindContact, sub.Kind, "type %q should fall back to contact", typ)
	}
}

func TestSubmit_SanitizesBeforeStore(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)

	var saved *domain.Submission
	store.On("Save", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Submission)
	}).Return(nil)
	nt.On("NotifyStaff", mock.Anything, mock.Anything).Return(nil)
	nt.On("AutoReply", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewLeadService(store, nt)
	in := validInput()
	in.Name = "  Jane\x00 Doe\x1F  "
	in.Phone = "\x7F614-555-0000"
	_, err := svc.Submit(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Jane Doe", saved.Name)
	assert.Equal(t, "614-555-0000", saved.Phone)
}

func TestSubmit_StoreFailure_NoNotification(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := service.NewLeadService(store, nt)
	sub, err := svc.Submit(context.Background(), validInput())

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domain.ErrStoreFailed)
	nt.AssertNotCalled(t, "NotifyStaff", mock.Anything, mock.Anything)
	nt.AssertNotCalled(t, "AutoReply", mock.Anything, mock.Anything)
}

func TestSubmit_NotificationFailuresSwallowed(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	nt.On("NotifyStaff", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	nt.On("AutoReply", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := service.NewLeadService(store, nt)
	sub, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	nt.AssertNumberOfCalls(t, "NotifyStaff", 1)
	nt.AssertNumberOfCalls(t, "AutoReply", 1)
}

// orderedNotifier records call order without testify.
type orderedNotifier struct{ calls []string }

func (n *orderedNotifier) NotifyStaff(ctx context.Context, sub *domain.Submission) error {
	n.calls = append(n.calls, "staff")
	return nil
}
func (n *orderedNotifier) AutoReply(ctx context.Context, sub *domain.Submission) error {
	n.calls = append(n.calls, "reply")
	return nil
}

func TestSubmit_StaffBeforeAutoReply(t *testing.T) {
	store := new(MockStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	nt := &orderedNotifier{}

	svc := service.NewLeadService(store, nt)
	_, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.Equal(t, []string{"staff", "reply"}, nt.calls)
}

func TestSubmit_Honeypot_Silent(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)

	svc := service.NewLeadService(store, nt)
	in := validInput()
	in.Honeypot = "http://spam.example"
	sub, err := svc.Submit(context.Background(), in)

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domain.ErrBotSuspected)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	nt.AssertNotCalled(t, "NotifyStaff", mock.Anything, mock.Anything)
}

func TestSubmit_HoneypotWinsOverOtherRules(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)

	svc := service.NewLeadService(store, nt)
	// everything else invalid too; the bot signal must win
	sub, err := svc.Submit(context.Background(), service.Input{Honeypot: "x"})

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, domain.ErrBotSuspected)
}

func TestSubmit_ValidationMessages(t *testing.T) {
	store := new(MockStore)
	nt := new(MockNotifier)
	svc := service.NewLeadService(store, nt)

	cases := []struct {
		name   string
		mutate func(*service.Input)
		want   string
	}{
		{"missing name", func(in *service.Input) { in.Name = "" }, service.MsgNameEmailRequired},
		{"missing email", func(in *service.Input) { in.Email = "" }, service.MsgNameEmailRequired},
		{"whitespace-only name", func(in *service.Input) { in.Name = "   " }, service.MsgNameEmailRequired},
		{"invalid email", func(in *service.Input) { in.Email = "not-an-email" }, service.MsgInvalidEmail},
		{"missing message", func(in *service.Input) { in.Message = "" }, service.MsgMessageRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Submit(context.Background(), in)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.want, verr.Reason)
			store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}
