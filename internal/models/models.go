package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base carries the generated id and timestamps shared by every table.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"index"                       json:"createdAt"`
	UpdatedAt time.Time `                                   json:"updatedAt"`
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type Category struct {
	Base
	NameAr string  `gorm:"not null"             json:"nameAr"`
	NameEn *string `                            json:"nameEn"`
	Order  int     `gorm:"column:sort_order;not null;default:0" json:"order"`
}

type Product struct {
	Base
	NameAr        string                      `gorm:"not null"             json:"nameAr"`
	NameEn        *string                     `                            json:"nameEn"`
	DescriptionAr *string                     `                            json:"descriptionAr"`
	DescriptionEn *string                     `                            json:"descriptionEn"`
	CategoryID    *string                     `gorm:"index;type:varchar(36)" json:"categoryId"`
	ImageURL      *string                     `gorm:"column:image_url"     json:"imageUrl"`
	VideoURL      *string                     `gorm:"column:video_url"     json:"videoUrl"`
	FeaturesAr    datatypes.JSONSlice[string] `                            json:"featuresAr"`
	FeaturesEn    datatypes.JSONSlice[string] `                            json:"featuresEn"`
	Order         int                         `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive      bool                        `gorm:"not null"             json:"isActive"`
}

type Banner struct {
	Base
	ImageURL string  `gorm:"column:image_url;not null" json:"imageUrl"`
	LinkURL  *string `gorm:"column:link_url"           json:"linkUrl"`
	Order    int     `gorm:"column:sort_order;not null;default:0" json:"order"`
	IsActive bool    `gorm:"not null"                  json:"isActive"`
}

type PaymentMethod struct {
	Base
	ImageURL string  `gorm:"column:image_url;not null" json:"imageUrl"`
	NameAr   *string `                                 json:"nameAr"`
	NameEn   *string `                                 json:"nameEn"`
	Order    int     `gorm:"column:sort_order;not null;default:0" json:"order"`
}

type TelegramChannel struct {
	Base
	ImageURL string  `gorm:"column:image_url;not null" json:"imageUrl"`
	LinkURL  string  `gorm:"column:link_url;not null"  json:"linkUrl"`
	NameAr   *string `                                 json:"nameAr"`
	NameEn   *string `                                 json:"nameEn"`
	Order    int     `gorm:"column:sort_order;not null;default:0" json:"order"`
}

type SiteSetting struct {
	Base
	Key   string  `gorm:"uniqueIndex;not null;type:varchar(191)" json:"key"`
	Value *string `                                              json:"value"`
}

type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null;type:varchar(191)" json:"username"`
	Password string `gorm:"not null"                               json:"-"`
}

const (
	SettingTelegramUsername = "telegramUsername"
	SettingWhatsappNumber   = "whatsappNumber"
	SettingAboutUsContent   = "aboutUsContent"
)

func All() []any {
	return []any{
		&Category{},
		&Product{},
		&Banner{},
		&PaymentMethod{},
		&TelegramChannel{},
		&SiteSetting{},
		&User{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
