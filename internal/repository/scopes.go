package repository

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// containsFold adds a case-insensitive substring predicate on column.
func containsFold(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(value)+"%")
	}
}

// equalFold adds a case-insensitive equality predicate on column.
func equalFold(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		return db.Where("LOWER("+column+") = ?", strings.ToLower(value))
	}
}

func equal(column, value string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		value = strings.TrimSpace(value)
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

func equalBool(column string, value *bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// between adds an inclusive range on a date column; either bound may be nil.
func between(column string, from, to *time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if from != nil {
			db = db.Where(column+" >= ?", *from)
		}
		if to != nil {
			db = db.Where(column+" <= ?", *to)
		}
		return db
	}
}
