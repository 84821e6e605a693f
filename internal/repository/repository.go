package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"pourhouse/internal/domain"
	"pourhouse/pkg/hours"
)

type Repositories struct {
	User     UserRepository
	Auth     AuthRepository
	Business BusinessRepository
	Category CategoryRepository
	MenuItem MenuItemRepository
	Recipe   RecipeRepository
	Employee EmployeeRepository
	Shift    ShiftRepository
	Contact  ContactRepository
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Auth:     NewAuthRepository(db),
		Business: NewBusinessRepository(db),
		Category: NewCategoryRepository(db),
		MenuItem: NewMenuItemRepository(db),
		Recipe:   NewRecipeRepository(db),
		Employee: NewEmployeeRepository(db),
		Shift:    NewShiftRepository(db),
		Contact:  NewContactRepository(db),
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, user domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session domain.Session) error
	GetSessionByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessionsByUserID(ctx context.Context, userID int64) error
}

type BusinessRepository interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error
	UpdateHours(ctx context.Context, weekly hours.WeeklyHours, special hours.Overrides) error
	UpdateHeroImage(ctx context.Context, imageURL string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, dto domain.CreateCategoryDTO, slug string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]domain.Category, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, dto domain.CreateMenuItemDTO, slug string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	Update(ctx context.Context, id int64, dto domain.UpdateMenuItemDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, int, error)
	UpdateImage(ctx context.Context, id int64, imageURL string) error
}

type RecipeRepository interface {
	Create(ctx context.Context, menuItemID int64, dto domain.CreateRecipeDTO) (int64, error)
	GetByMenuItemID(ctx context.Context, menuItemID int64) (*domain.Recipe, error)
	Update(ctx context.Context, menuItemID int64, dto domain.UpdateRecipeDTO) error
	Delete(ctx context.Context, menuItemID int64) error
}

type EmployeeRepository interface {
	Create(ctx context.Context, code string, dto domain.CreateEmployeeDTO, hireDate time.Time) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, dto domain.UpdateEmployeeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int, error)
	CountByCodePrefix(ctx context.Context, prefix string) (int, error)
}

type ShiftRepository interface {
	Create(ctx context.Context, shift domain.Shift) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	Update(ctx context.Context, shift domain.Shift) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, int, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]domain.Shift, error)
}

type ContactRepository interface {
	Create(ctx context.Context, dto domain.CreateContactSubmissionDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	SetResponded(ctx context.Context, id int64, dto domain.RespondContactDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, int, error)
}
