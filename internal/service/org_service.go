// Package service содержит бизнес-логику административного API организации:
// доступ по ролям, агрегаты бронирований и смену ролей участников.
package service

import (
	"context"
	"errors"
	"time"

	"org-admin-service/internal/model"
	"org-admin-service/internal/repository"
)

// UserRepository описывает контракт репозитория пользователей для бизнес-слоя.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ListByOrganization(ctx context.Context, orgID string) ([]model.User, error)
	UpdateRole(ctx context.Context, userID string, role model.Role) (model.User, error)
}

// OrganizationRepository описывает контракт репозитория организаций для бизнес-слоя.
type OrganizationRepository interface {
	GetByID(ctx context.Context, orgID string) (model.Organization, error)
}

// ScheduleRepository описывает контракт репозитория бронирований для бизнес-слоя.
type ScheduleRepository interface {
	ListForUsersStartingSince(ctx context.Context, userIDs []string, from time.Time) ([]model.DeskSchedule, error)
	ListForUsersStartingBetween(ctx context.Context, userIDs []string, from, to time.Time) ([]model.DeskSchedule, error)
	ListByUser(ctx context.Context, userID string) ([]model.DeskSchedule, error)
	ExistsOverlapping(ctx context.Context, userID string, startsAt, endsAt time.Time) (bool, error)
	Create(ctx context.Context, s model.DeskSchedule) (model.DeskSchedule, error)
}

// OrgService инкапсулирует административные операции над организацией:
// получение организации, список участников с агрегатами бронирований и смену ролей.
type OrgService struct {
	orgRepo      OrganizationRepository
	userRepo     UserRepository
	scheduleRepo ScheduleRepository
}

// NewOrgService создаёт новый сервис административных операций.
func NewOrgService(orgRepo OrganizationRepository, userRepo UserRepository, scheduleRepo ScheduleRepository) *OrgService {
	return &OrgService{
		orgRepo:      orgRepo,
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
	}
}

// requireAdminOrg проверяет предусловия всех административных операций:
// роль ADMIN у вызывающего и непустая ссылка на организацию.
// Возвращает идентификатор организации вызывающего.
func requireAdminOrg(caller model.User) (string, error) {
	if !caller.IsAdmin() {
		return "", ErrForbidden("admin role required")
	}
	if caller.OrganizationID == nil || *caller.OrganizationID == "" {
		return "", ErrNotFound("organization not found")
	}
	return *caller.OrganizationID, nil
}

// GetOrganization возвращает организацию вызывающего администратора.
// Отсутствие организации в хранилище после пройденных проверок доступа —
// не ошибка: возвращается nil (поведение намеренно несимметрично проверкам).
func (s *OrgService) GetOrganization(ctx context.Context, caller model.User) (*model.Organization, error) {
	orgID, err := requireAdminOrg(caller)
	if err != nil {
		return nil, err
	}

	org, err := s.orgRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, nil
		}
		return nil, errInternal("failed to get organization", err)
	}
	return &org, nil
}

// GetMembers возвращает участников организации вызывающего администратора,
// каждого — с бронированиями за текущий и предыдущий календарный год.
func (s *OrgService) GetMembers(ctx context.Context, caller model.User) ([]model.OrgMember, error) {
	orgID, err := requireAdminOrg(caller)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, errInternal("failed to list members", err)
	}

	members := make([]model.OrgMember, 0, len(users))
	if len(users) == 0 {
		return members, nil
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.UserID)
	}

	now := time.Now().UTC()
	curYearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	prevYearStart := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)

	thisYear, err := s.scheduleRepo.ListForUsersStartingSince(ctx, ids, curYearStart)
	if err != nil {
		return nil, errInternal("failed to list current year schedules", err)
	}

	prevYear, err := s.scheduleRepo.ListForUsersStartingBetween(ctx, ids, prevYearStart, curYearStart)
	if err != nil {
		return nil, errInternal("failed to list previous year schedules", err)
	}

	thisByUser := groupSchedulesByUser(thisYear)
	prevByUser := groupSchedulesByUser(prevYear)

	for _, u := range users {
		m := model.OrgMember{
			User:                      u,
			DeskSchedulesThisYear:     make([]model.DeskSchedule, 0),
			DeskSchedulesPreviousYear: make([]model.DeskSchedule, 0),
		}
		if list, ok := thisByUser[u.UserID]; ok {
			m.DeskSchedulesThisYear = list
		}
		if list, ok := prevByUser[u.UserID]; ok {
			m.DeskSchedulesPreviousYear = list
		}
		members = append(members, m)
	}

	return members, nil
}

// groupSchedulesByUser раскладывает бронирования по идентификатору пользователя
// за один проход, сохраняя порядок хранилища. Записи без пользователя пропускаются.
func groupSchedulesByUser(schedules []model.DeskSchedule) map[string][]model.DeskSchedule {
	byUser := make(map[string][]model.DeskSchedule)
	for _, s := range schedules {
		if s.UserID == nil {
			continue
		}
		byUser[*s.UserID] = append(byUser[*s.UserID], s)
	}
	return byUser
}

// ChangeUserRole меняет роль участника организации вызывающего администратора.
// Несуществующий пользователь и пользователь чужой организации неразличимы:
// в обоих случаях возвращается NOT_FOUND. Операция идемпотентна.
func (s *OrgService) ChangeUserRole(ctx context.Context, caller model.User, change model.RoleChangeType, userID string) error {
	orgID, err := requireAdminOrg(caller)
	if err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("user not found")
		}
		return errInternal("failed to get user", err)
	}

	if target.OrganizationID == nil || *target.OrganizationID != orgID {
		return ErrNotFound("user not found")
	}

	newRole := model.RoleMember
	if change == model.PromoteToAdmin {
		newRole = model.RoleAdmin
	}

	if _, err := s.userRepo.UpdateRole(ctx, userID, newRole); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrNotFound("user not found")
		}
		return errInternal("failed to update user role", err)
	}
	return nil
}
