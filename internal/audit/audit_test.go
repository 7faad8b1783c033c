package audit

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fabclean/laundry-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return db
}

func TestLoggerWritesEntry(t *testing.T) {
	db := testDB(t)
	l := New(db)

	err := l.Log("admin:1", "service_created", "service", "s1", map[string]any{"price": 200})
	require.NoError(t, err)

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "admin:1", entry.Actor)
	assert.Equal(t, "service_created", entry.Action)
	assert.Equal(t, "service", entry.Entity)
	assert.Equal(t, "s1", entry.EntityID)
	assert.JSONEq(t, `{"price":200}`, entry.Metadata)
}

func TestLoggerNilMetadata(t *testing.T) {
	db := testDB(t)
	l := New(db)

	require.NoError(t, l.Log("admin:1", "service_deleted", "service", "s1", nil))

	var entry models.AuditLog
	require.NoError(t, db.First(&entry).Error)
	assert.Empty(t, entry.Metadata)
}

func TestDispatcherPersistsAsync(t *testing.T) {
	db := testDB(t)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	d := NewDispatcher(New(db), logger)
	d.Dispatch(Event{
		Actor:    "loki@example.com",
		Action:   "order_created",
		Entity:   "order",
		EntityID: "abcd1234",
	})

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)
}
