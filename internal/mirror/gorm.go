package mirror

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvRow struct {
	K string `gorm:"primaryKey;size:64"`
	V []byte `gorm:"not null"`
}

func (kvRow) TableName() string { return "store_kv" }

// Gorm 后端：mysql/postgres 上一行一个集合 key
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&kvRow{}); err != nil {
		return nil, err
	}
	return &Gorm{db: db}, nil
}

func (s *Gorm) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row kvRow
	err := s.db.WithContext(ctx).First(&row, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.V, true, nil
}

func (s *Gorm) Save(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "k"}}, DoUpdates: clause.AssignmentColumns([]string{"v"})}).
		Create(&kvRow{K: key, V: value}).Error
}

func (s *Gorm) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&kvRow{}, "k = ?", key).Error
}

func (s *Gorm) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
