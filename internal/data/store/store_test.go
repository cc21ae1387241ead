package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/ajinkya1806/Data-Diggers/internal/data/redisStore"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/docModel"
	"github.com/ajinkya1806/Data-Diggers/internal/domain/userModel"
)

func newTestProfileStore(t *testing.T) *RedisProfileStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return TestProfileStore(redisStore.NewTestStore(client))
}

func newTestUserStore(t *testing.T) *RedisUserStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return TestUserStore(redisStore.NewTestStore(client))
}

func sampleRecord() docModel.DocumentRecord {
	return docModel.DocumentRecord{
		DocType:    docModel.DocTypePAN,
		Identifier: "ABCDE1234F",
		Name:       "Ravi Kumar",
		DOB:        "15-08-1985",
		Gender:     "Male",
		FatherName: "Suresh Kumar",
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := newTestProfileStore(t)
	ctx := context.Background()

	if err := s.UpsertField(ctx, "ravi", docModel.SlotPAN, sampleRecord()); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	profile, found, err := s.FindOne(ctx, "ravi")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !found {
		t.Fatal("profile not found after upsert")
	}
	if profile.Username != "ravi" {
		t.Errorf("username mismatch: %q", profile.Username)
	}
	if profile.Pan == nil || *profile.Pan != sampleRecord() {
		t.Errorf("pan slot mismatch: %+v", profile.Pan)
	}
	if profile.Aadhar != nil {
		t.Errorf("aadhar slot should be empty, got %+v", profile.Aadhar)
	}
}

func TestFindOneMissingProfile(t *testing.T) {
	s := newTestProfileStore(t)

	_, found, err := s.FindOne(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected missing profile")
	}
}

func TestUpdateFieldsCountsOnlyChanges(t *testing.T) {
	s := newTestProfileStore(t)
	ctx := context.Background()

	if err := s.UpsertField(ctx, "ravi", docModel.SlotPAN, sampleRecord()); err != nil {
		t.Fatal(err)
	}

	modified, err := s.UpdateFields(ctx, "ravi", map[string]string{
		"pan.name": "Ravi K Kumar", // changed
		"pan.dob":  "15-08-1985",   // same value
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if modified != 1 {
		t.Errorf("expected 1 modified field, got %d", modified)
	}

	profile, _, err := s.FindOne(ctx, "ravi")
	if err != nil {
		t.Fatal(err)
	}
	if profile.Pan.Name != "Ravi K Kumar" {
		t.Errorf("name not patched: %q", profile.Pan.Name)
	}
}

func TestUpdateFieldsAbsentProfile(t *testing.T) {
	s := newTestProfileStore(t)

	modified, err := s.UpdateFields(context.Background(), "ghost", map[string]string{"pan.name": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modified != 0 {
		t.Errorf("expected 0 modified for absent profile, got %d", modified)
	}
}

func TestConcurrentUpsertsKeepRecordCoherent(t *testing.T) {
	s := newTestProfileStore(t)
	ctx := context.Background()

	a := sampleRecord()
	b := sampleRecord()
	b.Name = "Someone Else"
	b.Identifier = "FGHIJ5678K"

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.UpsertField(ctx, "ravi", docModel.SlotPAN, a)
		}()
		go func() {
			defer wg.Done()
			_ = s.UpsertField(ctx, "ravi", docModel.SlotPAN, b)
		}()
	}
	wg.Wait()

	profile, found, err := s.FindOne(ctx, "ravi")
	if err != nil || !found {
		t.Fatalf("find failed: %v found=%v", err, found)
	}
	// last writer wins, but never a torn mix of the two records
	if *profile.Pan != a && *profile.Pan != b {
		t.Errorf("torn record after racing upserts: %+v", profile.Pan)
	}
}

func TestUserStoreRoundTrip(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	user := userModel.User{FullName: "Jane Doe", Username: "jane", PasswordHash: "$2a$10$hash"}
	if err := s.SaveUser(ctx, user); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, found, err := s.GetUser(ctx, "jane")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found {
		t.Fatal("user not found after save")
	}
	if got != user {
		t.Errorf("user mismatch: %+v", got)
	}
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	s := newTestUserStore(t)
	ctx := context.Background()

	user := userModel.User{FullName: "Jane Doe", Username: "jane", PasswordHash: "h1"}
	if err := s.SaveUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	user.PasswordHash = "h2"
	err := s.SaveUser(ctx, user)
	if !errors.Is(err, userModel.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}

	// original registration untouched
	got, _, err := s.GetUser(ctx, "jane")
	if err != nil {
		t.Fatal(err)
	}
	if got.PasswordHash != "h1" {
		t.Errorf("duplicate signup overwrote the user: %q", got.PasswordHash)
	}
}

func TestGetUserMissing(t *testing.T) {
	s := newTestUserStore(t)

	_, found, err := s.GetUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected missing user")
	}
}
