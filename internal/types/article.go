package types

import (
	"time"
)

// Article is the metadata row for one stored artifact. Written exactly once
// per successful generation; this service never mutates it afterwards.
type Article struct {
	ID             int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string      `gorm:"not null" json:"title"`
	ArticleType    ArticleType `gorm:"column:article_type;type:varchar(32);not null" json:"article_type"`
	ContentMode    ContentMode `gorm:"column:content_mode;type:varchar(16);not null" json:"content_mode"`
	FormatType     FormatType  `gorm:"column:format_type;type:varchar(16);not null;default:'html'" json:"format_type"`
	S3Key          string      `gorm:"column:s3_key;not null;uniqueIndex" json:"s3_key"`
	PublicURL      string      `gorm:"column:public_url;not null" json:"public_url"`
	SourceEntityID *int64      `gorm:"column:source_entity_id;index" json:"source_entity_id,omitempty"`
	Lang           string      `gorm:"type:varchar(5);not null;default:'ru'" json:"lang"`
	CreatedAt      time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time   `gorm:"not null" json:"updated_at"`
}

func (Article) TableName() string { return "articles" }
