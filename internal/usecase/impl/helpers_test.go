package impl

import (
	"io"
	"log/slog"
	"time"

	"socksflow/config"
	"socksflow/internal/domain/entity"
	"socksflow/internal/domain/mutation"
	"socksflow/internal/domain/profile"
	mockSvc "socksflow/internal/mocks/service"
	"socksflow/internal/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{CookieName: "access_token", MaxAge: time.Hour},
		Orders:  &config.OrdersConfig{PageSize: 10},
	}
}

func newSessionManager(auth *mockSvc.MockAuthService) *session.Manager {
	return session.NewManager(session.ManagerParams{
		Auth:         auth,
		Requirements: profile.DefaultRequirements(),
		Config:       testConfig(),
		Logger:       discardLogger(),
	})
}

func completeUser() *entity.User {
	return &entity.User{
		ID:    42,
		Name:  "Li Lei",
		Email: "lilei@example.com",
		Phone: "13800138000",
		Addresses: entity.Addresses{
			{ID: 3, RecipientName: "Li Lei", Province: "Zhejiang", City: "Hangzhou", Detail: "1 Wensan Rd", IsDefault: true},
			{ID: 4, RecipientName: "Han Meimei", Province: "Shanghai", City: "Shanghai", Detail: "8 Nanjing Rd"},
		},
		SizeProfile: &entity.SizeProfile{SockSize: "M"},
	}
}

func newTracker() *mutation.Tracker {
	return mutation.NewTracker(time.Minute)
}
