package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaffeekasse/coffeebilling/internal/domain"
	"github.com/kaffeekasse/coffeebilling/internal/mailer"
	"github.com/kaffeekasse/coffeebilling/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByToken(ctx context.Context, token string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotActivated       = errors.New("account not activated")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	mailer      mailer.Sender
	baseURL     string
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sender mailer.Sender, baseURL string) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		mailer:      sender,
		baseURL:     baseURL,
	}
}

// Register creates a user in status new and mails an activation link. The
// account stays unusable until Activate sets a password.
func (s *Service) Register(ctx context.Context, name, firstName, email string, member bool) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	user := &domain.User{
		Name:      name,
		FirstName: firstName,
		Email:     email,
		Member:    member,
		Token:     uuid.NewString(),
		Status:    domain.NewUserStatus,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if err := s.sendActivationMail(ctx, newUser); err != nil {
		zap.L().Error("can't send activation mail: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

// Activate consumes the activation token and sets the initial password.
func (s *Service) Activate(ctx context.Context, token, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user.PasswordHash = hashedPassword
	user.Token = ""
	user.Status = domain.ActiveUserStatus

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		zap.L().Error("can't activate user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user activated", zap.String("email", user.Email))
	return updated, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if user.Status != domain.ActiveUserStatus {
		return nil, ErrNotActivated
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int, admin bool) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, admin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// RequestPasswordReset mails a reset link. An unknown email is not an
// error, it is just not acted on.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		zap.L().Info("password reset requested for unknown email", zap.String("email", email))
		return nil
	}

	user.Token = uuid.NewString()
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	return s.sendResetMail(ctx, user)
}

func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		return err
	}

	user.PasswordHash = hashedPassword
	user.Token = ""
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	zap.L().Info("password reset", zap.String("email", user.Email))
	return nil
}

func (s *Service) sendActivationMail(ctx context.Context, user *domain.User) error {
	subject := "Activate your coffee billing account"
	body := fmt.Sprintf(`Welcome to the coffee billing!

Please open the following link to activate your account and choose a password:

%s/activate?token=%s

You will receive your invoice at the end of each month.

Enjoy your coffee!
`, s.baseURL, user.Token)
	return s.mailer.Send(ctx, user.Email, subject, body)
}

func (s *Service) sendResetMail(ctx context.Context, user *domain.User) error {
	subject := "Reset your coffee billing password"
	body := fmt.Sprintf(`Open the following link and enter a new password:

%s/reset_password?token=%s

If you did not request this, you can ignore this mail.
`, s.baseURL, user.Token)
	return s.mailer.Send(ctx, user.Email, subject, body)
}
