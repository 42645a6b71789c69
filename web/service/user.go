package service

import (
	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/util/crypto"
	"github.com/DivyaGovardhan/design-ui/web/forms"

	"gorm.io/gorm"
)

type UserService struct{}

// CheckUser verifies the credentials and returns the account, or nil for
// any failure. The caller must not distinguish a missing username from a
// wrong password.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}

	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	return user
}

// Register validates the form against the store, hashes the password and
// creates the account. Field errors come back in the Errors map; the
// record is written only when every check passes.
func (s *UserService) Register(form *forms.RegistrationForm) (*model.User, forms.Errors, error) {
	errs := form.Validate()

	if errs.Of("username") == nil {
		taken, err := s.IsUsernameTaken(form.Username)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("username", "form.usernameTaken")
		}
	}

	if errs.Of("email") == nil {
		taken, err := s.IsEmailTaken(form.Email)
		if err != nil {
			return nil, nil, err
		}
		if taken {
			errs.Add("email", "form.emailTaken")
		}
	}

	if errs.HasAny() {
		return nil, errs, nil
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Username:   form.Username,
		Email:      form.Email,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Patronymic: form.Patronymic,
		Password:   hash,
		Role:       model.RoleUser,
	}

	db := database.GetDB()
	if err := db.Create(user).Error; err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

func (s *UserService) IsUsernameTaken(username string) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (s *UserService) IsEmailTaken(email string) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	err := db.First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}
