package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"signus/internal/domain"
	"signus/internal/store"
)

func sampleDid() domain.MyDid {
	return domain.MyDid{
		DID:        "Dbf2fjCbsiq2kfns",
		CryptoType: domain.CryptoTypeEd25519,
		PK:         "pk",
		SK:         "sk",
		VerKey:     "verkey",
		SignKey:    "signkey",
	}
}

func TestMyDid_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids", "me.json")
	want := sampleDid()

	if err := store.SaveMyDid(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadMyDid(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("mismatch after load: %+v", got)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", fi.Mode().Perm())
	}
}

func TestMyDid_Overwrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "me.json")

	first := sampleDid()
	second := sampleDid()
	second.DID = "other"
	for _, d := range []domain.MyDid{first, second} {
		if err := store.SaveMyDid(path, d); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := store.LoadMyDid(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.DID != "other" {
		t.Fatalf("did = %q, want latest write", got.DID)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the record in %s, found %d entries", dir, len(entries))
	}
}

func TestLoad_Missing_IsNotFound(t *testing.T) {
	_, err := store.LoadMyDid(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMyDid_RejectsPublicRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "them.json")
	if err := store.SaveTheirDid(path, sampleDid().TheirDid()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.LoadMyDid(path); err == nil {
		t.Fatal("expected error loading a public record as a local identity")
	}
}

func TestTheirDid_SaveLoad_OK(t *testing.T) {
	path := filepath.Join(t.TempDir(), "them.json")
	want := sampleDid().TheirDid()

	if err := store.SaveTheirDid(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.LoadTheirDid(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

// A local record keeps its key under ver_key; it has to be exported first.
func TestLoadTheirDid_RejectsLocalRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.json")
	if err := store.SaveMyDid(path, sampleDid()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := store.LoadTheirDid(path); err == nil {
		t.Fatal("expected error loading a local record as a remote identity")
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	var v map[string]any
	if err := store.ReadJSON(path, &v); err == nil || errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected parse error, got %v", err)
	}
}
