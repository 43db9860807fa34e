package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"startup-hub-server/internal/db"
	"startup-hub-server/internal/model"
	"startup-hub-server/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:shub_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

// CreateUser inserts a user with a placeholder password hash.
func CreateUser(t *testing.T, gdb *gorm.DB, username string) model.User {
	t.Helper()

	u := model.User{Username: username, Password: "x", Nickname: username}
	if err := gdb.Create(&u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

// CreatePost inserts a post without an image directly through the ORM.
func CreatePost(t *testing.T, gdb *gorm.DB, authorID uint, title string) model.Post {
	t.Helper()

	p := model.Post{UserID: authorID, Title: title, Content: "content of " + title}
	if err := gdb.Create(&p).Error; err != nil {
		t.Fatalf("create post %q: %v", title, err)
	}
	return p
}

// LoginToken issues a login JWT for the given user with the current config secret.
func LoginToken(t *testing.T, u model.User) string {
	t.Helper()

	token, err := utils.GenerateLoginToken(u.ID, u.Username, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}
