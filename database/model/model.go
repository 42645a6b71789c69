package model

import (
	"time"
)

// Role defines the permission tier of an account. Staff hold the
// application-redaction grant, admins additionally manage everything.
type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// AppStatus is the lifecycle status of a design application.
type AppStatus string

const (
	StatusNew        AppStatus = "new"
	StatusInProgress AppStatus = "in_progress"
	StatusDone       AppStatus = "done"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s AppStatus) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type User struct {
	Id         int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Username   string `json:"username" form:"username" gorm:"uniqueIndex;not null"`
	Email      string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	FirstName  string `json:"firstName" form:"firstName"`
	LastName   string `json:"lastName" form:"lastName"`
	Patronymic string `json:"patronymic" form:"patronymic"`
	Password   string `json:"-"` // bcrypt hash, never plaintext
	Role       Role   `json:"role" gorm:"not null;default:user"`
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff || u.Role == RoleAdmin
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Category struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Title string `json:"title" form:"title" gorm:"uniqueIndex;not null"`
}

type DesignApplication struct {
	Id          int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	CreatorId   *int   `json:"creatorId" gorm:"index"`
	Creator     *User  `json:"creator" gorm:"foreignKey:CreatorId;constraint:OnDelete:CASCADE"`
	Title       string `json:"title" form:"title" gorm:"not null"`
	Description string `json:"description" form:"description" gorm:"size:2000"`
	Photo       string `json:"photo"` // stored file path, relative to the upload folder

	Categories []Category `json:"categories" gorm:"many2many:application_categories;constraint:OnDelete:CASCADE"`

	Status        AppStatus `json:"status" gorm:"not null;default:new"`
	DesignComment string    `json:"designComment" form:"designComment" gorm:"size:200"`
	DesignPhoto   string    `json:"designPhoto"`

	// Desired completion window, collected optionally at submission.
	CompletionDate string `json:"completionDate" form:"completionDate"`
	CompletionTime string `json:"completionTime" form:"completionTime"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

type Setting struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

type AuditLog struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId     int       `json:"userId" gorm:"index"`
	Username   string    `json:"username"`
	Action     string    `json:"action"`   // CREATE, UPDATE, DELETE, LOGIN, ...
	Resource   string    `json:"resource"` // application, category, user
	ResourceId int       `json:"resourceId"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"userAgent"`
	Details    string    `json:"details"` // JSON payload with extra context
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
}
