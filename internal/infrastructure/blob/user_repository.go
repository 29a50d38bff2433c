package blob

import (
	"strings"

	"github.com/tu-usuario/rocketry-hub/internal/domain/entity"
	"github.com/tu-usuario/rocketry-hub/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el blob store.
// El hash de password se serializa en un campo propio porque entity.User lo
// excluye del JSON público.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// storedUser forma persistida de entity.User incluyendo el hash.
type storedUser struct {
	entity.User
	PasswordHash string `json:"passwordHash"`
}

func (r *UserRepo) load() ([]storedUser, error) {
	var users []storedUser
	if err := r.store.Load(KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u storedUser) toEntity() *entity.User {
	user := u.User
	user.PasswordHash = u.PasswordHash
	return &user
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u.toEntity(), nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u.toEntity(), nil
		}
	}
	return nil, nil
}

// Create agrega el usuario y reescribe la colección completa.
func (r *UserRepo) Create(user *entity.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}
	return r.store.Save(KeyUsers, append(users, storedUser{User: *user, PasswordHash: user.PasswordHash}))
}
