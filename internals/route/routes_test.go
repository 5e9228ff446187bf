package routes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/constants"
	database "campushub_backend/internals/databases"
	eventModel "campushub_backend/internals/features/events/event/model"
	regModel "campushub_backend/internals/features/events/registration/model"
	notifModel "campushub_backend/internals/features/home/notifications/model"
	userModel "campushub_backend/internals/features/users/user/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "routes-test-secret"
	configs.JWTRefreshSecret = "routes-test-refresh-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	SetupRoutes(app, db)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, role, institution string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserName:             name,
		UserEmail:            fmt.Sprintf("%s@test.dev", uuid.NewString()),
		UserRole:             role,
		UserInstitution:      institution,
		UserProfileCompleted: true,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func tokenFor(t *testing.T, u *userModel.UserModel) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"typ":         "access",
		"sub":         u.UserID.String(),
		"id":          u.UserID.String(),
		"user_name":   u.UserName,
		"role":        u.UserRole,
		"institution": u.UserInstitution,
		"iat":         now.Unix(),
		"exp":         now.Add(15 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 10000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if len(raw) > 0 {
		_ = sonic.Unmarshal(raw, &parsed)
	}
	return resp.StatusCode, parsed
}

func createEvent(t *testing.T, db *gorm.DB, owner *userModel.UserModel, title string, capacity int) *eventModel.EventModel {
	t.Helper()
	now := time.Now()
	e := &eventModel.EventModel{
		EventTitle:       title,
		EventSlug:        uuid.NewString(),
		EventCategory:    eventModel.CategoryTechnical,
		EventInstitution: owner.UserInstitution,
		EventStartDate:   now.AddDate(0, 0, 7),
		EventEndDate:     now.AddDate(0, 0, 7),
		EventCapacity:    capacity,
		EventCreatedBy:   owner.UserID,
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	return e
}

func TestRegistrationWorkflow(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	student := createUser(t, db, "Student", constants.RoleStudent, "Springfield University")
	event := createEvent(t, db, organizer, "Tech Meetup", 100)

	// Register
	status, body := doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student),
		fiber.Map{"event_id": event.EventID.String()})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	regID := data["registration_id"].(string)
	if data["registration_status"] != regModel.StatusPending {
		t.Errorf("initial status = %v, want pending", data["registration_status"])
	}

	// Owner received a notification.
	var ownerNotifs []notifModel.NotificationModel
	db.Where("notification_user_id = ?", organizer.UserID).Find(&ownerNotifs)
	if len(ownerNotifs) != 1 || ownerNotifs[0].NotificationType != notifModel.TypeRegistration {
		t.Fatalf("owner notifications = %+v", ownerNotifs)
	}

	// Duplicate registration is rejected.
	status, body = doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student),
		fiber.Map{"event_id": event.EventID.String()})
	if status != http.StatusConflict {
		t.Errorf("duplicate register status = %d, body = %v", status, body)
	}

	// Approve.
	status, body = doJSON(t, app, http.MethodPut, "/api/registrations/"+regID+"/status", tokenFor(t, organizer),
		fiber.Map{"status": "approved"})
	if status != http.StatusOK {
		t.Fatalf("approve status = %d, body = %v", status, body)
	}
	data = body["data"].(map[string]any)
	if data["registration_status"] != regModel.StatusApproved {
		t.Errorf("status = %v, want approved", data["registration_status"])
	}
	if data["registration_reviewed_by"] == nil || data["registration_reviewed_at"] == nil {
		t.Error("decided registration must carry reviewer stamp")
	}

	// Counter moved and the student was notified.
	var e eventModel.EventModel
	db.Where("event_id = ?", event.EventID).First(&e)
	if e.EventParticipantCount != 1 {
		t.Errorf("participant count = %d, want 1", e.EventParticipantCount)
	}
	var studentNotifs []notifModel.NotificationModel
	db.Where("notification_user_id = ? AND notification_type = ?", student.UserID, notifModel.TypeApproval).Find(&studentNotifs)
	if len(studentNotifs) != 1 {
		t.Errorf("approval notifications = %d, want 1", len(studentNotifs))
	}

	// Student sees the decision with joined event fields.
	status, body = doJSON(t, app, http.MethodGet, "/api/registrations/my", tokenFor(t, student), nil)
	if status != http.StatusOK {
		t.Fatalf("my registrations status = %d", status)
	}
	list := body["data"].([]any)
	if len(list) != 1 {
		t.Fatalf("my registrations = %d entries", len(list))
	}
	row := list[0].(map[string]any)
	if row["event_title"] != "Tech Meetup" {
		t.Errorf("joined event title = %v", row["event_title"])
	}
}

func TestRegistrationRedecisionLastWriteWins(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	student := createUser(t, db, "Student", constants.RoleStudent, "Springfield University")
	event := createEvent(t, db, organizer, "Workshop", 10)

	_, body := doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student),
		fiber.Map{"event_id": event.EventID.String()})
	regID := body["data"].(map[string]any)["registration_id"].(string)

	status, _ := doJSON(t, app, http.MethodPut, "/api/registrations/"+regID+"/status", tokenFor(t, organizer),
		fiber.Map{"status": "approved"})
	if status != http.StatusOK {
		t.Fatalf("approve = %d", status)
	}
	// Re-deciding an already approved registration succeeds without error.
	status, rbody := doJSON(t, app, http.MethodPut, "/api/registrations/"+regID+"/status", tokenFor(t, organizer),
		fiber.Map{"status": "rejected"})
	if status != http.StatusOK {
		t.Fatalf("reject after approve = %d, body = %v", status, rbody)
	}
	if rbody["data"].(map[string]any)["registration_status"] != regModel.StatusRejected {
		t.Error("final status should be the last decision")
	}

	var e eventModel.EventModel
	db.Where("event_id = ?", event.EventID).First(&e)
	if e.EventParticipantCount != 0 {
		t.Errorf("participant count after approve+reject = %d, want 0", e.EventParticipantCount)
	}
}

func TestRegistrationCapacityNotEnforced(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	event := createEvent(t, db, organizer, "Tiny Room", 1)

	for i := 0; i < 3; i++ {
		student := createUser(t, db, fmt.Sprintf("Student %d", i), constants.RoleStudent, "Springfield University")
		status, body := doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student),
			fiber.Map{"event_id": event.EventID.String()})
		if status != http.StatusCreated {
			t.Fatalf("registration %d status = %d, body = %v", i, status, body)
		}
	}
}

func TestRegistrationErrors(t *testing.T) {
	app, db := newTestApp(t)
	student := createUser(t, db, "Student", constants.RoleStudent, "Springfield University")
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")

	// Missing event id.
	status, _ := doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student), fiber.Map{})
	if status != http.StatusBadRequest {
		t.Errorf("missing event_id status = %d, want 400", status)
	}
	// Unknown event.
	status, _ = doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, student),
		fiber.Map{"event_id": uuid.NewString()})
	if status != http.StatusNotFound {
		t.Errorf("unknown event status = %d, want 404", status)
	}
	// Organizer cannot register.
	event := createEvent(t, db, organizer, "No Organizers", 10)
	status, _ = doJSON(t, app, http.MethodPost, "/api/registrations", tokenFor(t, organizer),
		fiber.Map{"event_id": event.EventID.String()})
	if status != http.StatusForbidden {
		t.Errorf("organizer register status = %d, want 403", status)
	}
	// No token at all.
	status, _ = doJSON(t, app, http.MethodPost, "/api/registrations", "",
		fiber.Map{"event_id": event.EventID.String()})
	if status != http.StatusUnauthorized {
		t.Errorf("anonymous register status = %d, want 401", status)
	}
}

func TestNotificationInbox(t *testing.T) {
	app, db := newTestApp(t)
	student := createUser(t, db, "Student", constants.RoleStudent, "Springfield University")
	other := createUser(t, db, "Other", constants.RoleStudent, "Springfield University")

	n := notifModel.NotificationModel{
		NotificationUserID:  student.UserID,
		NotificationType:    notifModel.TypeEvent,
		NotificationMessage: "New event",
	}
	if err := db.Create(&n).Error; err != nil {
		t.Fatal(err)
	}

	// Listed for the owner.
	status, body := doJSON(t, app, http.MethodGet, "/api/notifications", tokenFor(t, student), nil)
	if status != http.StatusOK || len(body["data"].([]any)) != 1 {
		t.Fatalf("list status = %d, body = %v", status, body)
	}

	// Another user cannot read or touch it.
	status, _ = doJSON(t, app, http.MethodPut, "/api/notifications/"+n.NotificationID.String()+"/read", tokenFor(t, other), nil)
	if status != http.StatusForbidden {
		t.Errorf("foreign mark-read status = %d, want 403", status)
	}

	// Read then delete removes it from the list.
	status, body = doJSON(t, app, http.MethodPut, "/api/notifications/"+n.NotificationID.String()+"/read", tokenFor(t, student), nil)
	if status != http.StatusOK {
		t.Fatalf("mark-read status = %d", status)
	}
	data := body["data"].(map[string]any)
	if data["notification_read"] != true || data["notification_read_at"] == nil {
		t.Errorf("read flags = %v / %v", data["notification_read"], data["notification_read_at"])
	}

	status, _ = doJSON(t, app, http.MethodDelete, "/api/notifications/"+n.NotificationID.String(), tokenFor(t, student), nil)
	if status != http.StatusOK {
		t.Fatalf("delete status = %d", status)
	}
	status, body = doJSON(t, app, http.MethodGet, "/api/notifications", tokenFor(t, student), nil)
	if status != http.StatusOK || len(body["data"].([]any)) != 0 {
		t.Errorf("list after delete = %v", body["data"])
	}
}

func TestEventCreateBroadcastsToInstitution(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	sameCampus := createUser(t, db, "Near", constants.RoleStudent, "Springfield University")
	otherCampus := createUser(t, db, "Far", constants.RoleStudent, "Shelbyville College")

	start := time.Now().AddDate(0, 0, 10).Format(time.RFC3339)
	end := time.Now().AddDate(0, 0, 11).Format(time.RFC3339)
	status, body := doJSON(t, app, http.MethodPost, "/api/events", tokenFor(t, organizer), fiber.Map{
		"event_title":       "Hackathon 2026",
		"event_description": "48 hours of building",
		"event_location":    "Lab 4",
		"event_category":    "technical",
		"event_start_date":  start,
		"event_end_date":    end,
		"event_capacity":    60,
	})
	if status != http.StatusCreated {
		t.Fatalf("create event status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["event_slug"] != "hackathon-2026" {
		t.Errorf("slug = %v", data["event_slug"])
	}
	if data["event_status"] != eventModel.StatusUpcoming {
		t.Errorf("derived status = %v, want upcoming", data["event_status"])
	}

	var near, far int64
	db.Model(&notifModel.NotificationModel{}).Where("notification_user_id = ?", sameCampus.UserID).Count(&near)
	db.Model(&notifModel.NotificationModel{}).Where("notification_user_id = ?", otherCampus.UserID).Count(&far)
	if near != 1 {
		t.Errorf("same-institution notifications = %d, want 1", near)
	}
	if far != 0 {
		t.Errorf("other-institution notifications = %d, want 0", far)
	}

	// A student cannot create events.
	status, _ = doJSON(t, app, http.MethodPost, "/api/events", tokenFor(t, sameCampus), fiber.Map{
		"event_title":      "Rogue Event",
		"event_category":   "other",
		"event_start_date": start,
		"event_end_date":   end,
	})
	if status != http.StatusForbidden {
		t.Errorf("student create status = %d, want 403", status)
	}
}

func TestEventOwnershipAndSoftDelete(t *testing.T) {
	app, db := newTestApp(t)
	owner := createUser(t, db, "Owner", constants.RoleOrganizer, "Springfield University")
	rival := createUser(t, db, "Rival", constants.RoleOrganizer, "Springfield University")
	admin := createUser(t, db, "Admin", constants.RoleAdmin, "Springfield University")
	event := createEvent(t, db, owner, "Owned Event", 10)

	status, _ := doJSON(t, app, http.MethodPut, "/api/events/"+event.EventID.String(), tokenFor(t, rival),
		fiber.Map{"event_title": "Hijacked"})
	if status != http.StatusForbidden {
		t.Errorf("rival update status = %d, want 403", status)
	}

	status, body := doJSON(t, app, http.MethodPut, "/api/events/"+event.EventID.String(), tokenFor(t, admin),
		fiber.Map{"event_title": "Renamed by Admin"})
	if status != http.StatusOK {
		t.Fatalf("admin update status = %d, body = %v", status, body)
	}

	status, _ = doJSON(t, app, http.MethodDelete, "/api/events/"+event.EventID.String(), tokenFor(t, owner), nil)
	if status != http.StatusOK {
		t.Fatalf("owner delete status = %d", status)
	}
	status, _ = doJSON(t, app, http.MethodGet, "/api/events/"+event.EventID.String(), "", nil)
	if status != http.StatusNotFound {
		t.Errorf("deleted event fetch status = %d, want 404", status)
	}
	// Soft delete: the row survives with a deleted_at stamp.
	var count int64
	db.Unscoped().Model(&eventModel.EventModel{}).Where("event_id = ?", event.EventID).Count(&count)
	if count != 1 {
		t.Errorf("underlying rows = %d, want 1", count)
	}
}

func TestCommentLifecycle(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	author := createUser(t, db, "Author", constants.RoleStudent, "Springfield University")
	liker := createUser(t, db, "Liker", constants.RoleStudent, "Springfield University")
	admin := createUser(t, db, "Admin", constants.RoleAdmin, "Springfield University")
	event := createEvent(t, db, organizer, "Discussed Event", 50)

	status, body := doJSON(t, app, http.MethodPost, "/api/comments", tokenFor(t, author), fiber.Map{
		"comment_event_id": event.EventID.String(),
		"comment_content":  "Looking forward to this!",
	})
	if status != http.StatusCreated {
		t.Fatalf("create comment status = %d, body = %v", status, body)
	}
	commentID := body["data"].(map[string]any)["comment_id"].(string)

	// Like, then like again: the second toggle restores the count.
	status, body = doJSON(t, app, http.MethodPost, "/api/comments/"+commentID+"/like", tokenFor(t, liker), nil)
	if status != http.StatusOK {
		t.Fatalf("like status = %d", status)
	}
	if n := body["data"].(map[string]any)["comment_like_count"].(float64); n != 1 {
		t.Errorf("like count = %v, want 1", n)
	}
	status, body = doJSON(t, app, http.MethodPost, "/api/comments/"+commentID+"/like", tokenFor(t, liker), nil)
	if status != http.StatusOK {
		t.Fatalf("unlike status = %d", status)
	}
	if n := body["data"].(map[string]any)["comment_like_count"].(float64); n != 0 {
		t.Errorf("like count after second toggle = %v, want 0", n)
	}

	// Reply is appended inside the parent.
	status, body = doJSON(t, app, http.MethodPost, "/api/comments/"+commentID+"/reply", tokenFor(t, organizer), fiber.Map{
		"reply_content": "See you there.",
	})
	if status != http.StatusCreated {
		t.Fatalf("reply status = %d, body = %v", status, body)
	}
	replies := body["data"].(map[string]any)["comment_replies"].([]any)
	if len(replies) != 1 || replies[0].(map[string]any)["reply_content"] != "See you there." {
		t.Errorf("replies = %v", replies)
	}

	// Edit marks the comment as edited; only the author or an admin may.
	status, _ = doJSON(t, app, http.MethodPut, "/api/comments/"+commentID, tokenFor(t, liker),
		fiber.Map{"comment_content": "hijack"})
	if status != http.StatusForbidden {
		t.Errorf("foreign edit status = %d, want 403", status)
	}
	status, body = doJSON(t, app, http.MethodPut, "/api/comments/"+commentID, tokenFor(t, author),
		fiber.Map{"comment_content": "Edited content"})
	if status != http.StatusOK {
		t.Fatalf("author edit status = %d", status)
	}
	if body["data"].(map[string]any)["comment_is_edited"] != true {
		t.Error("edited comment must carry the edited flag")
	}

	// Public listing needs no token.
	status, body = doJSON(t, app, http.MethodGet, "/api/comments/event/"+event.EventID.String(), "", nil)
	if status != http.StatusOK || len(body["data"].([]any)) != 1 {
		t.Fatalf("public list status = %d, body = %v", status, body)
	}

	// Admin moderation.
	status, _ = doJSON(t, app, http.MethodDelete, "/api/comments/"+commentID, tokenFor(t, admin), nil)
	if status != http.StatusOK {
		t.Fatalf("admin delete status = %d", status)
	}
	status, body = doJSON(t, app, http.MethodGet, "/api/comments/event/"+event.EventID.String(), "", nil)
	if len(body["data"].([]any)) != 0 {
		t.Errorf("comments after delete = %v", body["data"])
	}
}

func TestFeedbackOncePerEvent(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")
	student := createUser(t, db, "Student", constants.RoleStudent, "Springfield University")
	event := createEvent(t, db, organizer, "Rated Event", 50)

	// Nothing yet.
	status, body := doJSON(t, app, http.MethodGet, "/api/feedback/check/"+event.EventID.String(), tokenFor(t, student), nil)
	if status != http.StatusOK || body["data"].(map[string]any)["has_feedback"] != false {
		t.Fatalf("check before = %d %v", status, body)
	}

	status, body = doJSON(t, app, http.MethodPost, "/api/feedback", tokenFor(t, student), fiber.Map{
		"feedback_event_id": event.EventID.String(),
		"feedback_rating":   5,
		"feedback_comment":  "Great event",
	})
	if status != http.StatusCreated {
		t.Fatalf("create feedback status = %d, body = %v", status, body)
	}

	// Second submission hits the unique index.
	status, _ = doJSON(t, app, http.MethodPost, "/api/feedback", tokenFor(t, student), fiber.Map{
		"feedback_event_id": event.EventID.String(),
		"feedback_rating":   1,
	})
	if status != http.StatusConflict {
		t.Errorf("duplicate feedback status = %d, want 409", status)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/feedback/check/"+event.EventID.String(), tokenFor(t, student), nil)
	if body["data"].(map[string]any)["has_feedback"] != true {
		t.Errorf("check after = %v", body)
	}

	// Rating bounds are validated.
	status, _ = doJSON(t, app, http.MethodPost, "/api/feedback", tokenFor(t, student), fiber.Map{
		"feedback_event_id": uuid.NewString(),
		"feedback_rating":   6,
	})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("out-of-range rating status = %d, want 422", status)
	}

	// Analytics for the organizer's own events.
	status, body = doJSON(t, app, http.MethodGet, "/api/feedback/analytics", tokenFor(t, organizer), nil)
	if status != http.StatusOK {
		t.Fatalf("analytics status = %d", status)
	}
	rows := body["data"].([]any)
	if len(rows) != 1 {
		t.Fatalf("analytics rows = %d, want 1", len(rows))
	}
	row := rows[0].(map[string]any)
	if row["feedback_count"].(float64) != 1 || row["average_rating"].(float64) != 5 {
		t.Errorf("analytics row = %v", row)
	}
}

func TestEventFilter(t *testing.T) {
	app, db := newTestApp(t)
	organizer := createUser(t, db, "Organizer", constants.RoleOrganizer, "Springfield University")

	now := time.Now()
	past := createEvent(t, db, organizer, "Past Event", 10)
	db.Model(past).Updates(map[string]any{
		"event_start_date": now.AddDate(0, 0, -10),
		"event_end_date":   now.AddDate(0, 0, -9),
	})
	createEvent(t, db, organizer, "Future Event", 10)

	status, body := doJSON(t, app, http.MethodGet, "/api/events/filter?status=completed", "", nil)
	if status != http.StatusOK {
		t.Fatalf("filter status = %d", status)
	}
	list := body["data"].([]any)
	if len(list) != 1 || list[0].(map[string]any)["event_title"] != "Past Event" {
		t.Errorf("completed filter = %v", list)
	}

	status, _ = doJSON(t, app, http.MethodGet, "/api/events/filter?status=bogus", "", nil)
	if status != http.StatusBadRequest {
		t.Errorf("bad status filter = %d, want 400", status)
	}

	status, body = doJSON(t, app, http.MethodGet, "/api/events?page=1&per_page=1", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	p := body["pagination"].(map[string]any)
	if p["total"].(float64) != 2 || p["total_pages"].(float64) != 2 {
		t.Errorf("pagination = %v", p)
	}
}

func TestAuthRegisterLoginRoundTrip(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name":        "New Student",
		"user_email":       "new.student@test.dev",
		"user_password":    "super-secret-pw",
		"user_role":        "student",
		"user_institution": "Springfield University",
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["access_token"] == "" {
		t.Error("register must return an access token")
	}

	// Duplicate email.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name":     "Clone",
		"user_email":    "new.student@test.dev",
		"user_password": "another-secret",
	})
	if status != http.StatusConflict {
		t.Errorf("duplicate register status = %d, want 409", status)
	}

	// Login with email, then with user name.
	for _, identifier := range []string{"new.student@test.dev", "New Student"} {
		status, body = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"identifier":    identifier,
			"user_password": "super-secret-pw",
		})
		if status != http.StatusOK {
			t.Fatalf("login as %q status = %d, body = %v", identifier, status, body)
		}
	}

	// Wrong password.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"identifier":    "new.student@test.dev",
		"user_password": "wrong",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", status)
	}

	// The issued token works on a protected route.
	token := body["data"].(map[string]any)["access_token"].(string)
	status, body = doJSON(t, app, http.MethodGet, "/api/users/profile", token, nil)
	if status != http.StatusOK {
		t.Fatalf("profile status = %d, body = %v", status, body)
	}
	if body["data"].(map[string]any)["user_email"] != "new.student@test.dev" {
		t.Errorf("profile = %v", body["data"])
	}
}

func TestLogoutBlacklistsToken(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"user_name":     "Leaver",
		"user_email":    "leaver@test.dev",
		"user_password": "super-secret-pw",
	})
	token := body["data"].(map[string]any)["access_token"].(string)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	if status != http.StatusOK {
		t.Fatalf("logout status = %d", status)
	}
	status, _ = doJSON(t, app, http.MethodGet, "/api/users/profile", token, nil)
	if status != http.StatusUnauthorized {
		t.Errorf("profile after logout status = %d, want 401", status)
	}
}

func TestCompleteProfile(t *testing.T) {
	app, db := newTestApp(t)
	u := &userModel.UserModel{
		UserName:  "OAuth User",
		UserEmail: "oauth@test.dev",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatal(err)
	}

	status, body := doJSON(t, app, http.MethodPatch, "/api/users/complete-profile", tokenFor(t, u), fiber.Map{
		"user_role":        "organizer",
		"user_institution": "Springfield University",
	})
	if status != http.StatusOK {
		t.Fatalf("complete-profile status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	if data["user_role"] != "organizer" || data["user_profile_completed"] != true {
		t.Errorf("profile = %v", data)
	}

	// Admin cannot be self-assigned.
	status, _ = doJSON(t, app, http.MethodPatch, "/api/users/complete-profile", tokenFor(t, u), fiber.Map{
		"user_role":        "admin",
		"user_institution": "Springfield University",
	})
	if status != http.StatusUnprocessableEntity {
		t.Errorf("admin self-assign status = %d, want 422", status)
	}
}
