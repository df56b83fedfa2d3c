package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"org-admin-service/internal/model"
	"org-admin-service/internal/repository"
	"org-admin-service/internal/service"
	"org-admin-service/internal/service/mocks"
)

func strPtr(s string) *string { return &s }

func yearBounds() (cur, prev time.Time) {
	now := time.Now().UTC()
	cur = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	prev = time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return cur, prev
}

func TestOrgService_GetOrganization(t *testing.T) {
	admin := model.User{UserID: "u1", Username: "Alice", Role: model.RoleAdmin, OrganizationID: strPtr("org1")}
	member := model.User{UserID: "u2", Username: "Bob", Role: model.RoleMember, OrganizationID: strPtr("org1")}
	adminNoOrg := model.User{UserID: "u3", Username: "Eve", Role: model.RoleAdmin}

	org := model.Organization{OrganizationID: "org1", Name: "Acme Inc."}

	tests := []struct {
		name       string
		caller     model.User
		setupMocks func(or *mocks.OrganizationRepository)
		wantOrg    *model.Organization
		wantErr    bool
		wantStatus int
	}{
		{
			name:   "Success",
			caller: admin,
			setupMocks: func(or *mocks.OrganizationRepository) {
				or.On("GetByID", mock.Anything, "org1").Return(org, nil)
			},
			wantOrg: &org,
		},
		{
			name:   "Success: organization missing in storage returns nil",
			caller: admin,
			setupMocks: func(or *mocks.OrganizationRepository) {
				or.On("GetByID", mock.Anything, "org1").
					Return(model.Organization{}, repository.ErrOrganizationNotFound)
			},
			wantOrg: nil,
		},
		{
			name:   "Fail: caller is not admin",
			caller: member,
			setupMocks: func(or *mocks.OrganizationRepository) {
				// Репозиторий не должен вызываться
			},
			wantErr:    true,
			wantStatus: 403,
		},
		{
			name:   "Fail: admin without organization",
			caller: adminNoOrg,
			setupMocks: func(or *mocks.OrganizationRepository) {
			},
			wantErr:    true,
			wantStatus: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orgRepo := new(mocks.OrganizationRepository)
			userRepo := new(mocks.UserRepository)
			scheduleRepo := new(mocks.ScheduleRepository)
			tt.setupMocks(orgRepo)

			svc := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
			got, err := svc.GetOrganization(context.Background(), tt.caller)

			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := err.(*service.AppError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				orgRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantOrg, got)
			}
			orgRepo.AssertExpectations(t)
		})
	}
}

func TestOrgService_GetMembers(t *testing.T) {
	admin := model.User{UserID: "u1", Username: "Alice", Role: model.RoleAdmin, OrganizationID: strPtr("org1")}
	member := model.User{UserID: "u2", Username: "Bob", Role: model.RoleMember, OrganizationID: strPtr("org1")}

	curStart, prevStart := yearBounds()

	s1 := model.DeskSchedule{ScheduleID: "s1", UserID: strPtr("u1"), StartsAt: curStart.AddDate(0, 1, 0)}
	s2 := model.DeskSchedule{ScheduleID: "s2", UserID: strPtr("u2"), StartsAt: curStart.AddDate(0, 2, 0)}
	s3 := model.DeskSchedule{ScheduleID: "s3", UserID: strPtr("u2"), StartsAt: curStart.AddDate(0, 3, 0)}
	orphan := model.DeskSchedule{ScheduleID: "s4", UserID: nil, StartsAt: curStart.AddDate(0, 4, 0)}
	prev1 := model.DeskSchedule{ScheduleID: "s5", UserID: strPtr("u2"), StartsAt: prevStart.AddDate(0, 5, 0)}

	t.Run("Success: members with grouped aggregates", func(t *testing.T) {
		orgRepo := new(mocks.OrganizationRepository)
		userRepo := new(mocks.UserRepository)
		scheduleRepo := new(mocks.ScheduleRepository)

		userRepo.On("ListByOrganization", mock.Anything, "org1").
			Return([]model.User{admin, member}, nil)

		scheduleRepo.On("ListForUsersStartingSince", mock.Anything, []string{"u1", "u2"}, curStart).
			Return([]model.DeskSchedule{s1, s2, orphan, s3}, nil)

		scheduleRepo.On("ListForUsersStartingBetween", mock.Anything, []string{"u1", "u2"}, prevStart, curStart).
			Return([]model.DeskSchedule{prev1}, nil)

		svc := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
		members, err := svc.GetMembers(context.Background(), admin)

		assert.NoError(t, err)
		assert.Len(t, members, 2)

		// Порядок участников совпадает с порядком хранилища
		assert.Equal(t, "u1", members[0].UserID)
		assert.Equal(t, []model.DeskSchedule{s1}, members[0].DeskSchedulesThisYear)
		assert.Empty(t, members[0].DeskSchedulesPreviousYear)
		assert.NotNil(t, members[0].DeskSchedulesPreviousYear)

		// Бронирования u2 сгруппированы в порядке хранилища, сирота s4 пропущена
		assert.Equal(t, "u2", members[1].UserID)
		assert.Equal(t, []model.DeskSchedule{s2, s3}, members[1].DeskSchedulesThisYear)
		assert.Equal(t, []model.DeskSchedule{prev1}, members[1].DeskSchedulesPreviousYear)

		userRepo.AssertExpectations(t)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("Success: empty organization skips schedule queries", func(t *testing.T) {
		orgRepo := new(mocks.OrganizationRepository)
		userRepo := new(mocks.UserRepository)
		scheduleRepo := new(mocks.ScheduleRepository)

		userRepo.On("ListByOrganization", mock.Anything, "org1").
			Return([]model.User{}, nil)

		svc := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
		members, err := svc.GetMembers(context.Background(), admin)

		assert.NoError(t, err)
		assert.Empty(t, members)
		scheduleRepo.AssertNotCalled(t, "ListForUsersStartingSince", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Fail: caller is not admin", func(t *testing.T) {
		orgRepo := new(mocks.OrganizationRepository)
		userRepo := new(mocks.UserRepository)
		scheduleRepo := new(mocks.ScheduleRepository)

		svc := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
		_, err := svc.GetMembers(context.Background(), member)

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "ListByOrganization", mock.Anything, mock.Anything)
	})
}

func TestOrgService_ChangeUserRole(t *testing.T) {
	admin := model.User{UserID: "u1", Username: "Alice", Role: model.RoleAdmin, OrganizationID: strPtr("org1")}
	member := model.User{UserID: "u2", Username: "Bob", Role: model.RoleMember, OrganizationID: strPtr("org1")}

	target := model.User{UserID: "u2", Username: "Bob", Role: model.RoleMember, OrganizationID: strPtr("org1")}
	foreign := model.User{UserID: "u9", Username: "Mallory", Role: model.RoleMember, OrganizationID: strPtr("org2")}

	tests := []struct {
		name       string
		caller     model.User
		change     model.RoleChangeType
		userID     string
		setupMocks func(ur *mocks.UserRepository)
		wantErr    bool
		wantStatus int
	}{
		{
			name:   "Success: promote member to admin",
			caller: admin,
			change: model.PromoteToAdmin,
			userID: "u2",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u2").Return(target, nil)
				ur.On("UpdateRole", mock.Anything, "u2", model.RoleAdmin).
					Return(model.User{UserID: "u2", Role: model.RoleAdmin}, nil)
			},
		},
		{
			name:   "Success: demote already-member is idempotent",
			caller: admin,
			change: model.DemoteFromAdmin,
			userID: "u2",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u2").Return(target, nil)
				ur.On("UpdateRole", mock.Anything, "u2", model.RoleMember).
					Return(target, nil)
			},
		},
		{
			name:   "Fail: target not found",
			caller: admin,
			change: model.PromoteToAdmin,
			userID: "u404",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u404").
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantErr:    true,
			wantStatus: 404,
		},
		{
			name:   "Fail: target in another organization looks like not found",
			caller: admin,
			change: model.PromoteToAdmin,
			userID: "u9",
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("GetByID", mock.Anything, "u9").Return(foreign, nil)
			},
			wantErr:    true,
			wantStatus: 404,
		},
		{
			name:   "Fail: caller is not admin",
			caller: member,
			change: model.PromoteToAdmin,
			userID: "u1",
			setupMocks: func(ur *mocks.UserRepository) {
			},
			wantErr:    true,
			wantStatus: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orgRepo := new(mocks.OrganizationRepository)
			userRepo := new(mocks.UserRepository)
			scheduleRepo := new(mocks.ScheduleRepository)
			tt.setupMocks(userRepo)

			svc := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
			err := svc.ChangeUserRole(context.Background(), tt.caller, tt.change, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := err.(*service.AppError)
				assert.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				userRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			userRepo.AssertExpectations(t)
		})
	}
}
