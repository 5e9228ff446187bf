package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"campushub_backend/internals/configs"
	userModel "campushub_backend/internals/features/users/user/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = ""
		configs.JWTRefreshSecret = ""
	})
}

func TestBuildAccessClaims(t *testing.T) {
	setTestSecrets(t)
	user := &userModel.UserModel{
		UserID:          uuid.New(),
		UserName:        "Test User",
		UserRole:        "organizer",
		UserInstitution: "Springfield University",
	}
	now := time.Now()
	claims := buildAccessClaims(user, now)

	if claims["typ"] != "access" {
		t.Errorf("typ = %v, want access", claims["typ"])
	}
	if claims["sub"] != user.UserID.String() || claims["id"] != user.UserID.String() {
		t.Error("sub/id claims must carry the user id")
	}
	if claims["role"] != "organizer" || claims["institution"] != "Springfield University" {
		t.Errorf("role=%v institution=%v", claims["role"], claims["institution"])
	}
	exp := claims["exp"].(int64)
	if got := time.Unix(exp, 0).Sub(now); got < accessTokenTTL-time.Second || got > accessTokenTTL+time.Second {
		t.Errorf("access TTL = %v, want ~%v", got, accessTokenTTL)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse back: %v", err)
	}
}

func TestComputeRefreshHashDeterministic(t *testing.T) {
	setTestSecrets(t)
	a := computeRefreshHash("some-refresh-token")
	b := computeRefreshHash("some-refresh-token")
	if !bytes.Equal(a, b) {
		t.Error("same input must hash identically")
	}
	if bytes.Equal(a, computeRefreshHash("another-token")) {
		t.Error("different inputs must not collide")
	}
	if len(a) != 32 {
		t.Errorf("hash length = %d, want 32", len(a))
	}
}

func TestOAuthStateRoundTrip(t *testing.T) {
	setTestSecrets(t)

	state, err := signState("http://localhost:5173/dashboard")
	if err != nil {
		t.Fatalf("signState: %v", err)
	}
	returnTo, err := verifyState(state)
	if err != nil {
		t.Fatalf("verifyState: %v", err)
	}
	if returnTo != "http://localhost:5173/dashboard" {
		t.Errorf("returnTo = %q", returnTo)
	}

	if _, err := verifyState(state + "tampered"); err == nil {
		t.Error("tampered state must not verify")
	}
	if _, err := verifyState("not-a-jwt"); err == nil {
		t.Error("garbage state must not verify")
	}
}

func TestOAuthStateRejectsAccessTokens(t *testing.T) {
	setTestSecrets(t)

	// A plain access token signed with the same secret must not pass as
	// state; the typ claim is the discriminator.
	user := &userModel.UserModel{UserID: uuid.New()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, time.Now())).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := verifyState(token); err == nil {
		t.Error("access token accepted as OAuth state")
	}
}
