package payment

import (
	"edumart/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// DuplicateEnrollmentPolicy decides what settlement does when the paying user
// already holds an enrollment for the course.
type DuplicateEnrollmentPolicy string

const (
	// DuplicateEnrollmentAllow inserts a second enrollment row (default).
	DuplicateEnrollmentAllow DuplicateEnrollmentPolicy = "allow"
	// DuplicateEnrollmentIgnore keeps the existing row and skips the insert.
	DuplicateEnrollmentIgnore DuplicateEnrollmentPolicy = "ignore"
	// DuplicateEnrollmentReject fails the settlement with ErrAlreadyEnrolled.
	DuplicateEnrollmentReject DuplicateEnrollmentPolicy = "reject"
)

// Metadata is the user/course correlation a webhook may echo back. Zero
// values fall back to what the stored payment row carries.
type Metadata struct {
	UserID   uint `json:"userId"`
	CourseID uint `json:"courseId"`
}

// Engine owns the payment state machine and the settlement side effects
// (enrollment creation, monthly earning accrual). Both the synchronous
// callback and the asynchronous webhook converge here, keyed by tx_ref.
type Engine struct {
	db     *gorm.DB
	clock  func() time.Time
	policy DuplicateEnrollmentPolicy
}

// NewEngine builds an engine. A nil clock means wall-clock time; an empty
// policy means DuplicateEnrollmentAllow.
func NewEngine(db *gorm.DB, clock func() time.Time, policy DuplicateEnrollmentPolicy) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if policy == "" {
		policy = DuplicateEnrollmentAllow
	}
	return &Engine{db: db, clock: clock, policy: policy}
}

// SettleCallback reconciles a gateway redirect callback. The settled amount
// is always the stored payment amount.
func (e *Engine) SettleCallback(txRef, status string) (*models.Payment, error) {
	return e.settle(txRef, status, 0, nil)
}

// SettleWebhook reconciles a server-to-server webhook delivery. A positive
// amount overrides the stored payment amount; metadata, when echoed by the
// gateway, overrides the stored user/course correlation.
func (e *Engine) SettleWebhook(txRef, status string, amount float64, meta *Metadata) (*models.Payment, error) {
	return e.settle(txRef, status, amount, meta)
}

func (e *Engine) settle(txRef, status string, amount float64, meta *Metadata) (*models.Payment, error) {
	var pay models.Payment
	if err := e.db.Where("tx_ref = ?", txRef).First(&pay).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	userID, courseID := pay.UserID, pay.CourseID
	if meta != nil {
		if meta.UserID != 0 {
			userID = meta.UserID
		}
		if meta.CourseID != 0 {
			courseID = meta.CourseID
		}
	}
	if userID == 0 || courseID == 0 {
		var missing []string
		if userID == 0 {
			missing = append(missing, "userId")
		}
		if courseID == 0 {
			missing = append(missing, "courseId")
		}
		return nil, &ValidationError{Missing: missing}
	}

	if status != "success" {
		if err := e.transition(e.db, txRef, models.PaymentStatusFailed); err != nil {
			return nil, err
		}
		pay.Status = models.PaymentStatusFailed
		return &pay, nil
	}

	settled := pay.Amount
	if amount > 0 {
		settled = amount
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		if err := e.transition(tx, txRef, models.PaymentStatusCompleted); err != nil {
			return err
		}

		if err := e.enroll(tx, userID, courseID); err != nil {
			return err
		}

		var course models.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCourseNotFound
			}
			return err
		}

		return e.accrue(tx, course.CreatorID, courseID, settled)
	})
	if err != nil {
		return nil, err
	}

	pay.Status = models.PaymentStatusCompleted
	return &pay, nil
}

// transition moves a payment out of pending with a guarded update. Zero rows
// affected means the event was already applied, so duplicate deliveries
// cannot re-run the settlement side effects.
func (e *Engine) transition(tx *gorm.DB, txRef string, to models.PaymentStatus) error {
	res := tx.Model(&models.Payment{}).
		Where("tx_ref = ? AND status = ?", txRef, models.PaymentStatusPending).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySettled
	}
	return nil
}

func (e *Engine) enroll(tx *gorm.DB, userID, courseID uint) error {
	if e.policy != DuplicateEnrollmentAllow {
		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
		if err == nil {
			if e.policy == DuplicateEnrollmentReject {
				return ErrAlreadyEnrolled
			}
			return nil // ignore: access already granted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return tx.Create(&models.Enrollment{UserID: userID, CourseID: courseID}).Error
}

// accrue adds the settled amount to the creator's ledger entry for the
// current month, creating the row on first sale. Month and year come from the
// engine's clock, never from the gateway event.
func (e *Engine) accrue(tx *gorm.DB, creatorID, courseID uint, amount float64) error {
	at := e.clock()
	month := int(at.Month())
	year := at.Year()

	var earning models.Earning
	err := tx.Where("creator_id = ? AND course_id = ? AND month = ? AND year = ?",
		creatorID, courseID, month, year).First(&earning).Error
	if err == nil {
		earning.TotalEarnings += amount
		return tx.Save(&earning).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Create(&models.Earning{
		CreatorID:     creatorID,
		CourseID:      courseID,
		TotalEarnings: amount,
		Month:         month,
		Year:          year,
	}).Error
}

// ExpireStalePending fails pending payments created before the cutoff. A late
// webhook for an expired payment then gets ErrAlreadySettled instead of
// settling a purchase the student gave up on.
func (e *Engine) ExpireStalePending(cutoff time.Time) (int64, error) {
	res := e.db.Model(&models.Payment{}).
		Where("status = ? AND created_at < ?", models.PaymentStatusPending, cutoff).
		Update("status", models.PaymentStatusFailed)
	return res.RowsAffected, res.Error
}
