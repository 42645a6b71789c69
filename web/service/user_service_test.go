package service

import (
	"os"
	"testing"

	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/web/forms"

	"github.com/stretchr/testify/assert"
)

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func registrationForm(username string, email string) *forms.RegistrationForm {
	return &forms.RegistrationForm{
		Username:       username,
		Email:          email,
		FirstName:      "Иван",
		LastName:       "Петров",
		Patronymic:     "Сергеевич",
		Password:       "secret123",
		PasswordRepeat: "secret123",
		Consent:        true,
	}
}

func TestUserServiceRegister(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, errs, err := service.Register(registrationForm("ivan", "ivan@example.com"))
	assert.NoError(t, err)
	assert.False(t, errs.HasAny())
	assert.NotNil(t, user)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	// The same username again must come back as a field error, not a DB error.
	_, errs, err = service.Register(registrationForm("ivan", "other@example.com"))
	assert.NoError(t, err)
	assert.Contains(t, errs.Of("username"), "form.usernameTaken")

	_, errs, err = service.Register(registrationForm("petr", "ivan@example.com"))
	assert.NoError(t, err)
	assert.Contains(t, errs.Of("email"), "form.emailTaken")
}

func TestUserServiceCheckUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	user, errs, err := service.Register(registrationForm("ivan", "ivan@example.com"))
	assert.NoError(t, err)
	assert.False(t, errs.HasAny())

	found := service.CheckUser("ivan", "secret123")
	assert.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)

	// Wrong password and unknown username both come back as a plain nil.
	assert.Nil(t, service.CheckUser("ivan", "wrong"))
	assert.Nil(t, service.CheckUser("nobody", "secret123"))
}

func TestInitDBSeedsAdmin(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	admin := service.CheckUser("admin", "admin")
	assert.NotNil(t, admin)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	assert.True(t, admin.IsStaff())
}
