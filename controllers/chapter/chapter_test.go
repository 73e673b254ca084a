package chapterController

import (
	"bytes"
	"edumart/database"
	"edumart/models"
	chapterValidator "edumart/validators/chapter"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupChapterApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	))

	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/chapters", chapterValidator.Create(), CreateChapter)
	app.Get("/chapters/course/:courseId", GetChaptersByCourseId)
	app.Get("/chapters/:id", GetChapterById)
	app.Delete("/chapters/:id", DeleteChapter)

	return app, db
}

func seedChapterCourse(t *testing.T, db *gorm.DB) models.Course {
	t.Helper()

	owner := models.User{Name: "Hana Girma", PhoneNumber: "0911000002", Role: models.RoleCreator, Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	creator := models.Creator{UserID: owner.ID}
	require.NoError(t, db.Create(&creator).Error)

	category := models.Category{Name: "Programming"}
	require.NoError(t, db.Create(&category).Error)

	course := models.Course{Title: "Backend Basics", Price: 500, CategoryID: category.ID, CreatorID: creator.ID}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func postChapter(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chapters", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateChapterRejectsDuplicateOrder(t *testing.T) {
	app, db := setupChapterApp(t)
	course := seedChapterCourse(t, db)

	resp := postChapter(t, app, fiber.Map{"title": "Intro", "courseId": course.ID, "order": 1})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postChapter(t, app, fiber.Map{"title": "Intro Again", "courseId": course.ID, "order": 1})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "Chapter with order '1' already exists for this course.", envelope["message"])

	var count int64
	db.Model(&models.Chapter{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateChapterSameOrderDifferentCourses(t *testing.T) {
	app, db := setupChapterApp(t)
	first := seedChapterCourse(t, db)

	second := models.Course{Title: "Frontend Basics", Price: 400, CategoryID: first.CategoryID, CreatorID: first.CreatorID}
	require.NoError(t, db.Create(&second).Error)

	resp := postChapter(t, app, fiber.Map{"title": "Intro", "courseId": first.ID, "order": 1})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The (courseId, order) pair is only unique within one course
	resp = postChapter(t, app, fiber.Map{"title": "Intro", "courseId": second.ID, "order": 1})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestGetChaptersByCourseIdSorted(t *testing.T) {
	app, db := setupChapterApp(t)
	course := seedChapterCourse(t, db)

	for _, order := range []int{3, 1, 2} {
		resp := postChapter(t, app, fiber.Map{"title": fmt.Sprintf("Chapter %d", order), "courseId": course.ID, "order": order})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/chapters/course/%d", course.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []models.Chapter `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 3)
	assert.Equal(t, 1, envelope.Data[0].Order)
	assert.Equal(t, 2, envelope.Data[1].Order)
	assert.Equal(t, 3, envelope.Data[2].Order)
}

func TestDeleteChapterThenFetchReturnsNotFound(t *testing.T) {
	app, db := setupChapterApp(t)
	course := seedChapterCourse(t, db)

	resp := postChapter(t, app, fiber.Map{"title": "Intro", "courseId": course.ID, "order": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var chapter models.Chapter
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&chapter).Error)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/chapters/%d", chapter.ID), nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, delResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/chapters/%d", chapter.ID), nil)
	getResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}
