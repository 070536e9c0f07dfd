package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veridian-ai/careers-portal/internal/models"
)

func testIdentity() models.CandidateIdentity {
	return models.CandidateIdentity{
		ID:        "c1",
		Email:     "dana@example.com",
		FirstName: "Dana",
		LastName:  "Reyes",
	}
}

func TestSessionLifecycle(t *testing.T) {
	session := NewSession(NewMemoryStore())

	if session.IsAuthenticated() {
		t.Error("fresh session should be signed out")
	}
	if session.AccessToken() != "" {
		t.Error("signed-out session should have no token")
	}
	if _, ok := session.Identity(); ok {
		t.Error("signed-out session should have no identity")
	}

	if err := session.Login(testIdentity(), "tok-123"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.IsAuthenticated() {
		t.Error("session should be authenticated after login")
	}
	if session.AccessToken() != "tok-123" {
		t.Errorf("AccessToken = %q", session.AccessToken())
	}
	identity, ok := session.Identity()
	if !ok || identity.Email != "dana@example.com" {
		t.Errorf("Identity = %+v, ok=%v", identity, ok)
	}

	if err := session.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if session.IsAuthenticated() {
		t.Error("session should be signed out after logout")
	}
}

func TestFileStoreSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewSession(NewFileStore(path))
	if err := first.Login(testIdentity(), "tok-123"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A brand new session over the same file is the "page reload".
	second := NewSession(NewFileStore(path))
	if !second.IsAuthenticated() {
		t.Fatal("session did not survive reload")
	}
	if second.AccessToken() != "tok-123" {
		t.Errorf("AccessToken = %q after reload", second.AccessToken())
	}
	identity, _ := second.Identity()
	if identity.FirstName != "Dana" {
		t.Errorf("Identity = %+v after reload", identity)
	}

	if err := second.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	third := NewSession(NewFileStore(path))
	if third.IsAuthenticated() {
		t.Error("logout should clear the persisted session")
	}
}

func TestFileStorePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)
	if err := store.Save(SessionState{Identity: testIdentity(), AccessToken: "tok"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("session file mode = %o, want 0600", perm)
	}
}

func TestCorruptSessionFileMeansSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	session := NewSession(NewFileStore(path))
	if session.IsAuthenticated() {
		t.Error("corrupt session file must degrade to signed out")
	}
}

func TestMissingSessionFileMeansSignedOut(t *testing.T) {
	session := NewSession(NewFileStore(filepath.Join(t.TempDir(), "nope.json")))
	if session.IsAuthenticated() {
		t.Error("missing session file must mean signed out")
	}
}
