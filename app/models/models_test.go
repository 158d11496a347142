package models_test

import (
	"regexp"
	"testing"

	"github.com/bepasal/bazar/app/models"
	"github.com/bepasal/bazar/app/models/migrations"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func hookDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func TestOrderBeforeCreate_AssignsIDAndCode(t *testing.T) {
	db := hookDB(t)

	order := &models.Order{}
	require.NoError(t, db.Create(order).Error)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.Code)

	second := &models.Order{}
	require.NoError(t, db.Create(second).Error)
	assert.NotEqual(t, order.Code, second.Code)
}

func TestVerificationCodeBeforeCreate_SixDigitCode(t *testing.T) {
	db := hookDB(t)

	code := &models.VerificationCode{Email: "user@example.com"}
	require.NoError(t, db.Create(code).Error)
	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code.Code)

	preset := &models.VerificationCode{Email: "other@example.com", Code: "123456"}
	require.NoError(t, db.Create(preset).Error)
	assert.Equal(t, "123456", preset.Code)
}

func TestDocumentBeforeCreate_DefaultsStatus(t *testing.T) {
	db := hookDB(t)

	document := &models.Document{Model: "product"}
	require.NoError(t, db.Create(document).Error)
	assert.NotEmpty(t, document.UUID)

	var reloaded models.Document
	require.NoError(t, db.First(&reloaded, "id = ?", document.ID).Error)
	assert.Equal(t, "processing", reloaded.Status)
}

func TestTenantHasApp(t *testing.T) {
	tenant := &models.Tenant{ID: "t-1", Apps: []string{"ecommerce"}}
	assert.True(t, tenant.HasApp("ecommerce"))
	assert.False(t, tenant.HasApp("billing"))

	var missing *models.Tenant
	assert.False(t, missing.HasApp("ecommerce"))
}
