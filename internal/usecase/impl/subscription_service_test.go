package impl

import (
	"context"
	"testing"

	"socksflow/internal/domain/entity"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/domain/service"
	mockSvc "socksflow/internal/mocks/service"
	"socksflow/internal/session"
	"socksflow/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixture struct {
	auth    *mockSvc.MockAuthService
	subs    *mockSvc.MockSubscriptionService
	service *subscriptionService
	sess    *session.Session
}

func createTestSubscriptionService(t *testing.T) *subscriptionFixture {
	t.Helper()

	fx := &subscriptionFixture{
		auth: mockSvc.NewMockAuthService(t),
		subs: mockSvc.NewMockSubscriptionService(t),
	}
	fx.service = NewSubscriptionService(SubscriptionServiceParams{
		Subscriptions: fx.subs,
		Catalog:       entity.DefaultCatalog(),
		Tracker:       newTracker(),
	}).(*subscriptionService)
	fx.sess = newSessionManager(fx.auth).Open("tok")

	return fx
}

func TestSubscriptionService_PrepareCreation(t *testing.T) {
	fx := createTestSubscriptionService(t)

	user := completeUser()
	user.Addresses[1].IsDefault = true
	fx.auth.EXPECT().FetchUser(mock.Anything, "tok").Return(user, nil)

	view, err := fx.service.PrepareCreation(context.Background(), fx.sess, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, view.PlanIndex)
	assert.Equal(t, "basic", view.Plan.Code)
	assert.True(t, view.Completeness.Complete)
	require.NotNil(t, view.Addresses.Default())
	defaults := 0
	for _, a := range view.Addresses {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestSubscriptionService_Create(t *testing.T) {
	fx := createTestSubscriptionService(t)

	fx.auth.EXPECT().FetchUser(mock.Anything, "tok").Return(completeUser(), nil)
	fx.subs.EXPECT().
		CreateSubscription(mock.Anything, "tok", "standard", mock.MatchedBy(func(p *service.CreateSubscriptionParams) bool {
			return p.ShippingAddress.RecipientName == "Han Meimei" &&
				p.Preferences.Frequency == entity.FrequencyBimonthly &&
				p.Preferences.Size == "M" &&
				p.PaymentMethod == entity.PaymentAlipay
		})).
		Return(&entity.Subscription{ID: 11, PlanCode: "standard", Status: entity.SubscriptionActive}, nil)

	sub, err := fx.service.Create(context.Background(), fx.sess, usecase.CreateSubscriptionInput{
		PlanCode:  "standard",
		Frequency: entity.FrequencyBimonthly,
		AddressID: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), sub.ID)
}

func TestSubscriptionService_Create_UnknownPlan(t *testing.T) {
	fx := createTestSubscriptionService(t)

	_, err := fx.service.Create(context.Background(), fx.sess, usecase.CreateSubscriptionInput{PlanCode: "gold"})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownPlan)
}

func TestSubscriptionService_Create_IncompleteProfile(t *testing.T) {
	fx := createTestSubscriptionService(t)

	fx.auth.EXPECT().FetchUser(mock.Anything, "tok").Return(&entity.User{ID: 1, Phone: "13800138000"}, nil)

	_, err := fx.service.Create(context.Background(), fx.sess, usecase.CreateSubscriptionInput{PlanCode: "basic"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)
}

func TestSubscriptionService_Transitions(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.subs.EXPECT().PauseSubscription(mock.Anything, "tok", int64(3)).Return(nil)
	fx.subs.EXPECT().ResumeSubscription(mock.Anything, "tok", int64(3)).Return(nil)
	fx.subs.EXPECT().CancelSubscription(mock.Anything, "tok", int64(3)).Return(domainerrors.NewAPIError(400, "Subscription already cancelled"))

	require.NoError(t, fx.service.Pause(ctx, fx.sess, 3))
	require.NoError(t, fx.service.Resume(ctx, fx.sess, 3))

	err := fx.service.Cancel(ctx, fx.sess, 3)
	assert.Equal(t, "Subscription already cancelled", domainerrors.UserMessage(err))
}

func TestSubscriptionService_UpdatePreferences(t *testing.T) {
	fx := createTestSubscriptionService(t)

	prefs := entity.DeliveryPreferences{Frequency: entity.FrequencyQuarterly, Size: "L"}
	fx.subs.EXPECT().UpdatePreferences(mock.Anything, "tok", int64(3), prefs).
		Return(&entity.Subscription{ID: 3, Preferences: prefs}, nil)

	sub, err := fx.service.UpdatePreferences(context.Background(), fx.sess, 3, prefs)
	require.NoError(t, err)
	assert.Equal(t, entity.FrequencyQuarterly, sub.Preferences.Frequency)
}

func TestPickAddress(t *testing.T) {
	book := completeUser().Addresses

	assert.Equal(t, int64(4), pickAddress(book, 4).ID)
	assert.Equal(t, int64(3), pickAddress(book, 99).ID)
	assert.Equal(t, int64(7), pickAddress(entity.Addresses{{ID: 7}}, 0).ID)
	assert.Nil(t, pickAddress(nil, 0))
}
