package db_models

const (
	RoleAdmin  = "admin"
	RoleLeader = "leader"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string // admin | leader
}
