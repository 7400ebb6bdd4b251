package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-core/internal/core/config"
	"storefront-core/internal/features/contact/domain"
	handoffdomain "storefront-core/internal/features/handoff/domain"
	ordersdomain "storefront-core/internal/features/orders/domain"
)

type mockMessageRepository struct {
	msgs    []domain.Message
	saveErr error
}

func (m *mockMessageRepository) Save(_ context.Context, msg domain.Message) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.msgs = append([]domain.Message{msg}, m.msgs...)
	return nil
}

func (m *mockMessageRepository) List(_ context.Context) ([]domain.Message, error) {
	return m.msgs, nil
}

type mockLinkOpener struct {
	opened []string
	err    error
}

func (m *mockLinkOpener) Open(url string) error {
	m.opened = append(m.opened, url)
	return m.err
}

func newContactFixture(repo *mockMessageRepository, opener *mockLinkOpener, email string) *ContactService {
	svc := NewContactService(repo, opener, config.MerchantConfig{
		StoreName: "AN Enterprises",
		Email:     email,
	})
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC) }
	return svc
}

func validMessage() domain.Message {
	return domain.Message{
		Name:    "Asha Rao",
		Email:   "asha@example.org",
		Subject: "Bulk order enquiry",
		Body:    "Do you offer discounts on orders above 50 units?",
	}
}

func TestContactService_Send_Success(t *testing.T) {
	repo := &mockMessageRepository{}
	opener := &mockLinkOpener{}
	svc := newContactFixture(repo, opener, "orders@anenterprises.in")

	result, err := svc.Send(context.Background(), validMessage())
	require.NoError(t, err)
	assert.Equal(t, handoffdomain.ResultDelivered, result.Result)

	require.Len(t, opener.opened, 1)
	assert.Contains(t, opener.opened[0], "mailto:orders@anenterprises.in")
	assert.Contains(t, opener.opened[0], "subject=Contact%20Form%3A%20Bulk%20order%20enquiry")

	require.Len(t, repo.msgs, 1)
	assert.Equal(t, time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), repo.msgs[0].Timestamp)
}

func TestContactService_Send_BackupNewestFirst(t *testing.T) {
	repo := &mockMessageRepository{}
	svc := newContactFixture(repo, &mockLinkOpener{}, "orders@anenterprises.in")
	ctx := context.Background()

	first := validMessage()
	first.Subject = "First"
	second := validMessage()
	second.Subject = "Second"

	_, err := svc.Send(ctx, first)
	require.NoError(t, err)
	_, err = svc.Send(ctx, second)
	require.NoError(t, err)

	msgs, err := svc.Messages(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Second", msgs[0].Subject)
	assert.Equal(t, "First", msgs[1].Subject)
}

func TestContactService_Send_StoreFailureDoesNotBlock(t *testing.T) {
	repo := &mockMessageRepository{saveErr: errors.New("store down")}
	opener := &mockLinkOpener{}
	svc := newContactFixture(repo, opener, "orders@anenterprises.in")

	result, err := svc.Send(context.Background(), validMessage())
	require.NoError(t, err)
	assert.Equal(t, handoffdomain.ResultDelivered, result.Result)
	assert.Len(t, opener.opened, 1)
}

func TestContactService_Send_PlaceholderEmail(t *testing.T) {
	opener := &mockLinkOpener{}
	svc := newContactFixture(&mockMessageRepository{}, opener, "merchant@example.com")

	result, err := svc.Send(context.Background(), validMessage())
	require.NoError(t, err)
	assert.Equal(t, handoffdomain.ResultFailedNeedsFallback, result.Result)
	assert.Empty(t, opener.opened)
}

func TestContactService_Send_BlockedOpener(t *testing.T) {
	opener := &mockLinkOpener{err: errors.New("blocked")}
	svc := newContactFixture(&mockMessageRepository{}, opener, "orders@anenterprises.in")

	result, err := svc.Send(context.Background(), validMessage())
	require.NoError(t, err)
	assert.Equal(t, handoffdomain.ResultFailedNeedsFallback, result.Result)
}

func TestContactService_Send_ValidationFailure(t *testing.T) {
	opener := &mockLinkOpener{}
	svc := newContactFixture(&mockMessageRepository{}, opener, "orders@anenterprises.in")

	msg := validMessage()
	msg.Email = "not-an-email"

	result, err := svc.Send(context.Background(), msg)
	assert.Nil(t, result)

	var verrs ordersdomain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, opener.opened)
}
