package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sillygoals/sillygoals/internal/db"
	"github.com/sillygoals/sillygoals/internal/model"
)

// --- Helpers ---

func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.Init("sqlite", t.TempDir()+"/test.db?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	err = db.RunMigrations(conn.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return conn
}

func testUser(t *testing.T, conn *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "x",
		Name:         "Tester",
		CreatedAt:    time.Now(),
	}
	err := NewUserRepository(conn).Create(user)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func testGroup(t *testing.T, conn *sqlx.DB, userID, title string) *model.Group {
	t.Helper()

	group := &model.Group{Title: title, ToneID: 1, UserID: userID}
	err := NewGroupRepository(conn).Create(group)
	if err != nil {
		t.Fatalf("failed to create group %s: %v", title, err)
	}
	return group
}

func testGoal(t *testing.T, conn *sqlx.DB, groupID int64, title string, stage int) *model.Goal {
	t.Helper()

	goal := &model.Goal{Title: title, Stage: stage, GroupID: groupID}
	err := NewGoalRepository(conn).Create(goal)
	if err != nil {
		t.Fatalf("failed to create goal %s: %v", title, err)
	}
	return goal
}

// --- Groups ---

func TestGroupByID_OtherUsersGroupIsNotFound(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	bob := testUser(t, conn, "bob@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")

	repo := NewGroupRepository(conn)

	_, err := repo.ByID(bob.ID, group.ID)
	if err != ErrGroupNotFound {
		t.Errorf("ByID as other user: err = %v, want ErrGroupNotFound", err)
	}

	got, err := repo.ByID(alice.ID, group.ID)
	if err != nil {
		t.Fatalf("ByID as owner: %v", err)
	}
	if got.Title != "Fitness" {
		t.Errorf("title = %q, want Fitness", got.Title)
	}
}

func TestGroupUpdate_OtherUsersGroupIsNotFound(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	bob := testUser(t, conn, "bob@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")

	repo := NewGroupRepository(conn)

	group.UserID = bob.ID
	group.Title = "Hijacked"
	err := repo.Update(group)
	if err != ErrGroupNotFound {
		t.Errorf("Update as other user: err = %v, want ErrGroupNotFound", err)
	}

	got, err := repo.ByID(alice.ID, group.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Title != "Fitness" {
		t.Errorf("title after failed update = %q, want Fitness", got.Title)
	}
}

func TestGroupDelete_CascadesToGoals(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")
	goal := testGoal(t, conn, group.ID, "Run 5k", 0)
	testGoal(t, conn, group.ID, "Stretch", 1)

	groups := NewGroupRepository(conn)
	goals := NewGoalRepository(conn)

	err := groups.Delete(alice.ID, group.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err = goals.ByID(group.ID, goal.ID)
	if err != ErrGoalNotFound {
		t.Errorf("goal after group delete: err = %v, want ErrGoalNotFound", err)
	}

	remaining, err := goals.ForGroup(group.ID)
	if err != nil {
		t.Fatalf("ForGroup: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("group still has %d goals after delete, want 0", len(remaining))
	}
}

func TestGroupDelete_OtherUsersGroupIsNotFound(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	bob := testUser(t, conn, "bob@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")

	repo := NewGroupRepository(conn)

	err := repo.Delete(bob.ID, group.ID)
	if err != ErrGroupNotFound {
		t.Errorf("Delete as other user: err = %v, want ErrGroupNotFound", err)
	}

	_, err = repo.ByID(alice.ID, group.ID)
	if err != nil {
		t.Errorf("group should survive foreign delete attempt: %v", err)
	}
}

func TestGroupWithTone_JoinsToneFields(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")

	display, err := NewGroupRepository(conn).WithTone(alice.ID, group.ID)
	if err != nil {
		t.Fatalf("WithTone: %v", err)
	}

	if display.Title != "Fitness" {
		t.Errorf("title = %q, want Fitness", display.Title)
	}
	if len(display.Stages) != 4 {
		t.Fatalf("stages = %v, want 4 labels", display.Stages)
	}
	if display.Greeting == "" {
		t.Error("greeting is empty, want seeded tone greeting")
	}
}

// --- Goals ---

func TestGoalCreate_RoundTrip(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")

	repo := NewGoalRepository(conn)
	goal := &model.Goal{Title: "T", Stage: 2, GroupID: group.ID}
	err := repo.Create(goal)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if goal.ID == 0 {
		t.Fatal("Create did not assign an id")
	}

	got, err := repo.ByID(group.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Title != "T" {
		t.Errorf("title = %q, want T", got.Title)
	}
	if got.Stage != 2 {
		t.Errorf("stage = %d, want 2", got.Stage)
	}
}

func TestGoalByID_WrongGroupIsNotFound(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")
	other := testGroup(t, conn, alice.ID, "Reading")
	goal := testGoal(t, conn, group.ID, "Run 5k", 0)

	_, err := NewGoalRepository(conn).ByID(other.ID, goal.ID)
	if err != ErrGoalNotFound {
		t.Errorf("ByID with wrong group: err = %v, want ErrGoalNotFound", err)
	}
}

func TestGoalUpdateStage_Persists(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")
	goal := testGoal(t, conn, group.ID, "Run 5k", 0)

	repo := NewGoalRepository(conn)

	err := repo.UpdateStage(group.ID, goal.ID, 4)
	if err != nil {
		t.Fatalf("UpdateStage: %v", err)
	}

	got, err := repo.ByID(group.ID, goal.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.Stage != 4 {
		t.Errorf("stage = %d, want 4", got.Stage)
	}
}

func TestGoalDelete_ScopedByGroup(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	group := testGroup(t, conn, alice.ID, "Fitness")
	other := testGroup(t, conn, alice.ID, "Reading")
	goal := testGoal(t, conn, group.ID, "Run 5k", 0)

	repo := NewGoalRepository(conn)

	err := repo.Delete(other.ID, goal.ID)
	if err != ErrGoalNotFound {
		t.Errorf("Delete with wrong group: err = %v, want ErrGoalNotFound", err)
	}

	err = repo.Delete(group.ID, goal.ID)
	if err != nil {
		t.Errorf("Delete: %v", err)
	}
}

// --- Tones ---

func TestToneEligible_GlobalUnionOwned(t *testing.T) {
	conn := testDB(t)
	alice := testUser(t, conn, "alice@example.com")
	bob := testUser(t, conn, "bob@example.com")

	_, err := conn.Exec(
		`INSERT INTO tones (name, stages, global, user_id) VALUES ($1, $2, 0, $3)`,
		"Private", `["a","b","c","d"]`, bob.ID,
	)
	if err != nil {
		t.Fatalf("insert private tone: %v", err)
	}

	repo := NewToneRepository(conn)

	forAlice, err := repo.Eligible(alice.ID)
	if err != nil {
		t.Fatalf("Eligible: %v", err)
	}
	forBob, err := repo.Eligible(bob.ID)
	if err != nil {
		t.Fatalf("Eligible: %v", err)
	}

	if len(forBob) != len(forAlice)+1 {
		t.Errorf("bob sees %d tones, alice %d; bob should see exactly one more", len(forBob), len(forAlice))
	}
	for _, tone := range forAlice {
		if !tone.Global {
			t.Errorf("alice sees non-global tone %q owned by someone else", tone.Name)
		}
	}
}
