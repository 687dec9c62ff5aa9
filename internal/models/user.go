package models

import "time"

// User is keyed by the Telegram user ID.
type User struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	Username  string `gorm:"size:255"`
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	IsBanned  bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (u *User) Ban() error {
	if u.IsBanned {
		return ErrAlreadyBanned
	}
	u.IsBanned = true
	return nil
}

func (u *User) Unban() error {
	if !u.IsBanned {
		return ErrNotBanned
	}
	u.IsBanned = false
	return nil
}

func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
