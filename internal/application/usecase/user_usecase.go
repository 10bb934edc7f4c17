package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/obramarket/obramarket-api/internal/application/dto"
	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// UserUseCase perfil propio y administración de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// UpdateProfile edita el perfil propio (campos opcionales).
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Company != nil {
		user.Company = *in.Company
	}
	if in.CurrentProject != nil {
		user.CurrentProject = *in.CurrentProject
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// UpdatePassword cambia la contraseña propia tras verificar la actual.
func (uc *UserUseCase) UpdatePassword(userID string, in dto.UpdatePasswordRequest) error {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.repo.Update(user)
}

// GetByID devuelve el usuario completo para el propio usuario o un admin, y
// el subconjunto público para el resto. El segundo retorno indica cuál aplica.
func (uc *UserUseCase) GetByID(actorID, actorRole, id string) (*dto.UserResponse, *dto.PublicUserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrUserNotFound
	}
	if actorID == id || actorRole == entity.RoleAdmin {
		return dto.ToUserResponse(user), nil, nil
	}
	return nil, dto.ToPublicUserResponse(user), nil
}

// List devuelve todos los usuarios (solo admin; el handler aplica el rol).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(u))
	}
	return items, nil
}

// Delete elimina un usuario (solo admin). Un admin no puede borrarse a sí mismo.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}
