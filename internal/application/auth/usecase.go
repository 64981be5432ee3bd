package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/jhoicas/Taller-api/pkg/jwt"
)

// Vigencia del código de recuperación de contraseña.
const resetCodeTTL = 5 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña en dos pasos (código de 6 dígitos con TTL de 5 minutos).
type AuthUseCase struct {
	userRepo repository.UserRepository
	codes    CodeStore
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, codes CodeStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, codes: codes, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado, y el token
// firmado para iniciar sesión inmediatamente tras el registro.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if errs := validateRegister(in); errs != nil {
		return nil, errs
	}
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
		Address:      in.Address,
		NationalID:   in.NationalID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Login verifica email/password y devuelve token + perfil público.
// Email desconocido y contraseña incorrecta producen el mismo error
// (ErrUnauthorized) para no filtrar cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ForgotPassword genera un código de 6 dígitos con TTL de 5 minutos y lo
// guarda en el CodeStore keyed por email. Devuelve el código generado para
// que la capa superior decida cómo entregarlo (log en desarrollo).
// Si el email no existe responde sin error para no filtrar su existencia.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	code, err := sixDigitCode()
	if err != nil {
		return "", err
	}
	uc.codes.Put(email, code, resetCodeTTL)
	return code, nil
}

// ResetPassword valida el código y actualiza la contraseña. El código se
// consume en el primer uso válido.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if len(in.NewPassword) < 6 {
		return dto.NewValidationError("new_password", "debe tener al menos 6 caracteres")
	}
	stored, ok := uc.codes.Get(email)
	if !ok || stored != in.Code {
		return domain.ErrInvalidResetCode
	}
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidResetCode
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID.Hex(), string(hash)); err != nil {
		return err
	}
	uc.codes.Delete(email)
	return nil
}

func (uc *AuthUseCase) tokenFor(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, user.ID.Hex(), user.Role, user.Name, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
}

func validateRegister(in dto.RegisterRequest) error {
	var errs []dto.FieldError
	if in.Name == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "requerido"})
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		errs = append(errs, dto.FieldError{Field: "email", Message: "email inválido"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, dto.FieldError{Field: "password", Message: "debe tener al menos 6 caracteres"})
	}
	if in.Role != "" && !entity.ValidRole(in.Role) {
		errs = append(errs, dto.FieldError{Field: "role", Message: "rol desconocido"})
	}
	if errs != nil {
		return &dto.ValidationError{Fields: errs}
	}
	return nil
}

// sixDigitCode genera un código aleatorio de 6 dígitos con crypto/rand.
func sixDigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ToUserResponse mapea la entidad al perfil público (sin hash de contraseña).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Phone:      u.Phone,
		Address:    u.Address,
		NationalID: u.NationalID,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
