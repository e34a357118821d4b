package service

import (
	"learnsphere_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLinkStudentWithValidCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReferralService(db)

	referrer := createTestUser(t, db, "referrer@example.com", "REF1234567")
	referred := createTestUser(t, db, "student@example.com", "STU1234567")

	student := &model.Student{UserID: referred.ID, ReferrerCode: "REF1234567"}
	require.NoError(t, db.Create(student).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.LinkStudent(tx, student)
	})
	require.NoError(t, err)

	var referral model.Referral
	require.NoError(t, db.First(&referral).Error)
	assert.Equal(t, referrer.ID, referral.ReferrerID)
	require.NotNil(t, referral.ReferredStudentID)
	assert.Equal(t, student.ID, *referral.ReferredStudentID)
	assert.Nil(t, referral.ReferredClientID)
}

func TestLinkStudentWithUnknownCodeIsSilent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReferralService(db)

	referred := createTestUser(t, db, "student@example.com", "STU1234567")
	student := &model.Student{UserID: referred.ID, ReferrerCode: "NOSUCHCODE"}
	require.NoError(t, db.Create(student).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.LinkStudent(tx, student)
	})
	require.NoError(t, err)

	var count int64
	db.Model(&model.Referral{}).Count(&count)
	assert.Zero(t, count)
}

func TestLinkStudentWithoutCodeIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReferralService(db)

	referred := createTestUser(t, db, "student@example.com", "STU1234567")
	student := &model.Student{UserID: referred.ID}
	require.NoError(t, db.Create(student).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.LinkStudent(tx, student)
	})
	require.NoError(t, err)

	var count int64
	db.Model(&model.Referral{}).Count(&count)
	assert.Zero(t, count)
}

func TestLinkClientWithValidCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReferralService(db)

	referrer := createTestUser(t, db, "referrer@example.com", "REF1234567")
	referred := createTestUser(t, db, "client@example.com", "CLI1234567")

	client := &model.Client{UserID: referred.ID, CompanyName: "Acme", ReferrerCode: "REF1234567"}
	require.NoError(t, db.Create(client).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return svc.LinkClient(tx, client)
	})
	require.NoError(t, err)

	var referral model.Referral
	require.NoError(t, db.First(&referral).Error)
	assert.Equal(t, referrer.ID, referral.ReferrerID)
	require.NotNil(t, referral.ReferredClientID)
	assert.Equal(t, client.ID, *referral.ReferredClientID)
	assert.Nil(t, referral.ReferredStudentID)
}

func TestListReferrals(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReferralService(db)

	referrer := createTestUser(t, db, "referrer@example.com", "REF1234567")

	for _, email := range []string{"a@example.com", "b@example.com"} {
		u := createTestUser(t, db, email, "C"+email)
		student := &model.Student{UserID: u.ID, ReferrerCode: "REF1234567"}
		require.NoError(t, db.Create(student).Error)
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return svc.LinkStudent(tx, student)
		}))
	}

	referrals, err := svc.ListReferrals(referrer.ID)
	require.NoError(t, err)
	assert.Len(t, referrals, 2)
}
