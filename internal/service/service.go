package service

import (
	"context"

	"go.uber.org/zap"

	"pourhouse/config"
	"pourhouse/internal/domain"
	"pourhouse/internal/mailer"
	"pourhouse/internal/repository"
	"pourhouse/internal/storage"
	"pourhouse/pkg/hours"
)

// Notifier — рассылка событий подключённому персоналу (WebSocket).
type Notifier interface {
	NotifyContactCreated(submission domain.ContactSubmission)
}

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Mailer      mailer.Mailer
	Notifier    Notifier
}

type Services struct {
	User     UserService
	Auth     AuthService
	Business BusinessService
	Menu     MenuService
	Employee EmployeeService
	Shift    ShiftService
	Contact  ContactService
}

func NewServices(deps Deps) *Services {
	return &Services{
		User:     NewUserService(deps.Repos.User, deps.Logger),
		Auth:     NewAuthService(deps.Repos.Auth, deps.Repos.User, deps.Config.JWT, deps.Logger),
		Business: NewBusinessService(deps.Repos.Business, deps.FileStorage, deps.Logger),
		Menu:     NewMenuService(deps.Repos.Category, deps.Repos.MenuItem, deps.Repos.Recipe, deps.FileStorage, deps.Logger),
		Employee: NewEmployeeService(deps.Repos.Employee, deps.Repos.User, deps.Logger),
		Shift:    NewShiftService(deps.Repos.Shift, deps.Repos.Employee, deps.Logger),
		Contact:  NewContactService(deps.Repos.Contact, deps.Repos.Business, deps.Mailer, deps.Notifier, deps.Logger),
	}
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateUserDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error
	UpdatePassword(ctx context.Context, id int64, dto domain.PasswordUpdateDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error)
	RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error)
	Logout(ctx context.Context, refreshToken string) error
	ParseToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

type BusinessService interface {
	Get(ctx context.Context) (*domain.BusinessInfo, error)
	Update(ctx context.Context, dto domain.UpdateBusinessInfoDTO) error
	UpdateHours(ctx context.Context, dto domain.UpdateHoursDTO) error
	Status(ctx context.Context) (*hours.Evaluation, error)
	WeekSchedule(ctx context.Context) (*domain.WeekSchedule, error)
	UploadHeroImage(ctx context.Context, data []byte, filename string) (string, error)
}

type MenuService interface {
	CreateCategory(ctx context.Context, dto domain.CreateCategoryDTO) (int64, error)
	GetCategoryByID(ctx context.Context, id int64) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, dto domain.UpdateCategoryDTO) error
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error)

	CreateItem(ctx context.Context, dto domain.CreateMenuItemDTO) (int64, error)
	GetItemByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id int64, dto domain.UpdateMenuItemDTO) error
	DeleteItem(ctx context.Context, id int64) error
	ListItems(ctx context.Context, filter domain.MenuItemFilter) ([]domain.MenuItem, int, error)
	UploadItemImage(ctx context.Context, id int64, data []byte, filename string) (string, error)

	PublicMenu(ctx context.Context) ([]domain.MenuSection, error)
	FeaturedItems(ctx context.Context) ([]domain.MenuItem, error)

	CreateRecipe(ctx context.Context, menuItemID int64, dto domain.CreateRecipeDTO) (int64, error)
	GetRecipe(ctx context.Context, menuItemID int64) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, menuItemID int64, dto domain.UpdateRecipeDTO) error
	DeleteRecipe(ctx context.Context, menuItemID int64) error
}

type EmployeeService interface {
	Create(ctx context.Context, dto domain.CreateEmployeeDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, dto domain.UpdateEmployeeDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, int, error)
}

type ShiftService interface {
	Create(ctx context.Context, dto domain.CreateShiftDTO) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Shift, error)
	Update(ctx context.Context, id int64, dto domain.UpdateShiftDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ShiftFilter) ([]domain.Shift, int, error)
}

type ContactService interface {
	Submit(ctx context.Context, dto domain.CreateContactSubmissionDTO, ip string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactSubmission, error)
	Respond(ctx context.Context, id int64, dto domain.RespondContactDTO) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.ContactFilter) ([]domain.ContactSubmission, int, error)
}
