package models

// User is an account created on first sign-in with the identity provider
type User struct {
	BaseModel
	Email         string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	FullName      string `json:"fullName" gorm:"size:200"`
	Image         string `json:"image" gorm:"size:500"`
	ImagePublicID string `json:"imagePublicId" gorm:"column:image_public_id;size:255"`
	Role          Role   `json:"role" gorm:"type:varchar(20);not null;default:'USER'"`

	Auctions []Auction `json:"auctions,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
