package payment

import (
	"edumart/models"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Creator{},
		&models.Category{},
		&models.Course{},
		&models.Chapter{},
		&models.Video{},
		&models.Link{},
		&models.Enrollment{},
		&models.Payment{},
		&models.Earning{},
	))

	return db
}

type fixture struct {
	user    models.User
	creator models.Creator
	course  models.Course
}

func seedCourse(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	user := models.User{Name: "Abel Tesfaye", PhoneNumber: "0911000001", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	owner := models.User{Name: "Hana Girma", PhoneNumber: "0911000002", Role: models.RoleCreator, Password: "x"}
	require.NoError(t, db.Create(&owner).Error)

	creator := models.Creator{UserID: owner.ID, Bio: "teaches Go"}
	require.NoError(t, db.Create(&creator).Error)

	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)

	course := models.Course{Title: "Backend Basics", Price: 500, CategoryID: category.ID, CreatorID: creator.ID}
	require.NoError(t, db.Create(&course).Error)

	return fixture{user: user, creator: creator, course: course}
}

func seedPendingPayment(t *testing.T, db *gorm.DB, f fixture, txRef string, amount float64) models.Payment {
	t.Helper()

	pay := models.Payment{
		UserID:        f.user.ID,
		CourseID:      f.course.ID,
		Amount:        amount,
		PaymentMethod: "Chapa",
		Status:        models.PaymentStatusPending,
		TxRef:         txRef,
	}
	require.NoError(t, db.Create(&pay).Error)
	return pay
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
	}
}

func TestSettleCallbackSuccess(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedPendingPayment(t, db, f, "tx-100", 500)

	engine := NewEngine(db, fixedClock(2026, time.March), DuplicateEnrollmentAllow)

	settled, err := engine.SettleCallback("tx-100", "success")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, settled.Status)

	var stored models.Payment
	require.NoError(t, db.Where("tx_ref = ?", "tx-100").First(&stored).Error)
	assert.Equal(t, models.PaymentStatusCompleted, stored.Status)

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", f.user.ID, f.course.ID).Count(&enrollments)
	assert.EqualValues(t, 1, enrollments)

	var earning models.Earning
	require.NoError(t, db.Where("creator_id = ? AND course_id = ?", f.creator.ID, f.course.ID).First(&earning).Error)
	assert.Equal(t, 500.0, earning.TotalEarnings)
	assert.Equal(t, 3, earning.Month)
	assert.Equal(t, 2026, earning.Year)
}

func TestSettleCallbackFailure(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedPendingPayment(t, db, f, "tx-101", 500)

	engine := NewEngine(db, nil, "")

	settled, err := engine.SettleCallback("tx-101", "failed")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, settled.Status)

	var enrollments, earnings int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	db.Model(&models.Earning{}).Count(&earnings)
	assert.Zero(t, enrollments)
	assert.Zero(t, earnings)
}

func TestSettleUnknownTxRef(t *testing.T) {
	db := setupTestDB(t)
	seedCourse(t, db)

	engine := NewEngine(db, nil, "")

	_, err := engine.SettleCallback("tx-missing", "success")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	var payments, enrollments int64
	db.Model(&models.Payment{}).Count(&payments)
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.Zero(t, payments)
	assert.Zero(t, enrollments)
}

func TestSettleDuplicateDeliveryIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedPendingPayment(t, db, f, "tx-102", 500)

	engine := NewEngine(db, fixedClock(2026, time.March), DuplicateEnrollmentAllow)

	_, err := engine.SettleCallback("tx-102", "success")
	require.NoError(t, err)

	// Redelivery of the same event must not re-apply side effects
	_, err = engine.SettleCallback("tx-102", "success")
	assert.ErrorIs(t, err, ErrAlreadySettled)

	_, err = engine.SettleWebhook("tx-102", "success", 500, nil)
	assert.ErrorIs(t, err, ErrAlreadySettled)

	var enrollments int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.EqualValues(t, 1, enrollments)

	var earning models.Earning
	require.NoError(t, db.First(&earning).Error)
	assert.Equal(t, 500.0, earning.TotalEarnings)
}

func TestAccrualSumsWithinMonth(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)

	buyer2 := models.User{Name: "Sara Bekele", PhoneNumber: "0911000003", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&buyer2).Error)

	seedPendingPayment(t, db, f, "tx-103", 100)
	second := models.Payment{
		UserID: buyer2.ID, CourseID: f.course.ID, Amount: 50,
		PaymentMethod: "Chapa", Status: models.PaymentStatusPending, TxRef: "tx-104",
	}
	require.NoError(t, db.Create(&second).Error)

	engine := NewEngine(db, fixedClock(2026, time.March), DuplicateEnrollmentAllow)

	_, err := engine.SettleCallback("tx-103", "success")
	require.NoError(t, err)
	_, err = engine.SettleCallback("tx-104", "success")
	require.NoError(t, err)

	var earnings []models.Earning
	require.NoError(t, db.Find(&earnings).Error)
	require.Len(t, earnings, 1)
	assert.Equal(t, 150.0, earnings[0].TotalEarnings)
}

func TestSettleWebhookAmountAndMetadataOverride(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedPendingPayment(t, db, f, "tx-105", 500)

	buyer2 := models.User{Name: "Sara Bekele", PhoneNumber: "0911000003", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&buyer2).Error)

	engine := NewEngine(db, fixedClock(2026, time.March), DuplicateEnrollmentAllow)

	settled, err := engine.SettleWebhook("tx-105", "success", 450, &Metadata{UserID: buyer2.ID})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, settled.Status)

	// Metadata user wins over the stored payment row
	var enrollment models.Enrollment
	require.NoError(t, db.First(&enrollment).Error)
	assert.Equal(t, buyer2.ID, enrollment.UserID)
	assert.Equal(t, f.course.ID, enrollment.CourseID)

	// The webhook amount is the settled amount
	var earning models.Earning
	require.NoError(t, db.First(&earning).Error)
	assert.Equal(t, 450.0, earning.TotalEarnings)
}

func TestSettleMissingCourseRollsBack(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	seedPendingPayment(t, db, f, "tx-106", 500)

	require.NoError(t, db.Delete(&models.Course{}, f.course.ID).Error)

	engine := NewEngine(db, nil, "")

	_, err := engine.SettleCallback("tx-106", "success")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	// The whole settlement rolled back: payment still pending, no side effects
	var stored models.Payment
	require.NoError(t, db.Where("tx_ref = ?", "tx-106").First(&stored).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)

	var enrollments int64
	db.Model(&models.Enrollment{}).Count(&enrollments)
	assert.Zero(t, enrollments)
}

func TestDuplicateEnrollmentPolicies(t *testing.T) {
	t.Run("allow inserts a second row", func(t *testing.T) {
		db := setupTestDB(t)
		f := seedCourse(t, db)
		require.NoError(t, db.Create(&models.Enrollment{UserID: f.user.ID, CourseID: f.course.ID}).Error)
		seedPendingPayment(t, db, f, "tx-107", 500)

		engine := NewEngine(db, nil, DuplicateEnrollmentAllow)
		_, err := engine.SettleCallback("tx-107", "success")
		require.NoError(t, err)

		var enrollments int64
		db.Model(&models.Enrollment{}).Count(&enrollments)
		assert.EqualValues(t, 2, enrollments)
	})

	t.Run("ignore keeps the existing row", func(t *testing.T) {
		db := setupTestDB(t)
		f := seedCourse(t, db)
		require.NoError(t, db.Create(&models.Enrollment{UserID: f.user.ID, CourseID: f.course.ID}).Error)
		seedPendingPayment(t, db, f, "tx-108", 500)

		engine := NewEngine(db, nil, DuplicateEnrollmentIgnore)
		_, err := engine.SettleCallback("tx-108", "success")
		require.NoError(t, err)

		var enrollments int64
		db.Model(&models.Enrollment{}).Count(&enrollments)
		assert.EqualValues(t, 1, enrollments)
	})

	t.Run("reject rolls the settlement back", func(t *testing.T) {
		db := setupTestDB(t)
		f := seedCourse(t, db)
		require.NoError(t, db.Create(&models.Enrollment{UserID: f.user.ID, CourseID: f.course.ID}).Error)
		seedPendingPayment(t, db, f, "tx-109", 500)

		engine := NewEngine(db, nil, DuplicateEnrollmentReject)
		_, err := engine.SettleCallback("tx-109", "success")
		assert.ErrorIs(t, err, ErrAlreadyEnrolled)

		var stored models.Payment
		require.NoError(t, db.Where("tx_ref = ?", "tx-109").First(&stored).Error)
		assert.Equal(t, models.PaymentStatusPending, stored.Status)
	})
}

func TestSettleWebhookMissingCorrelation(t *testing.T) {
	db := setupTestDB(t)

	// A malformed row without correlation, as an old gateway bug could leave behind
	pay := models.Payment{Amount: 500, PaymentMethod: "Chapa", Status: models.PaymentStatusPending, TxRef: "tx-110"}
	require.NoError(t, db.Create(&pay).Error)

	engine := NewEngine(db, nil, "")

	_, err := engine.SettleWebhook("tx-110", "success", 0, nil)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.ElementsMatch(t, []string{"userId", "courseId"}, vErr.Missing)

	var stored models.Payment
	require.NoError(t, db.Where("tx_ref = ?", "tx-110").First(&stored).Error)
	assert.Equal(t, models.PaymentStatusPending, stored.Status)
}

func TestExpireStalePending(t *testing.T) {
	db := setupTestDB(t)
	f := seedCourse(t, db)
	stale := seedPendingPayment(t, db, f, "tx-111", 500)
	fresh := seedPendingPayment(t, db, f, "tx-112", 500)

	weekAgo := time.Now().AddDate(0, 0, -8)
	require.NoError(t, db.Model(&models.Payment{}).Where("id = ?", stale.ID).Update("created_at", weekAgo).Error)

	engine := NewEngine(db, nil, "")

	expired, err := engine.ExpireStalePending(time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.EqualValues(t, 1, expired)

	var storedStale, storedFresh models.Payment
	require.NoError(t, db.First(&storedStale, stale.ID).Error)
	require.NoError(t, db.First(&storedFresh, fresh.ID).Error)
	assert.Equal(t, models.PaymentStatusFailed, storedStale.Status)
	assert.Equal(t, models.PaymentStatusPending, storedFresh.Status)

	// A late success event for the expired payment is refused
	_, err = engine.SettleWebhook("tx-111", "success", 500, nil)
	assert.ErrorIs(t, err, ErrAlreadySettled)
}
