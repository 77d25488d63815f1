package keychain_test

import (
	"errors"
	"testing"

	"github.com/meridianbank/navkit/pkg/navkit/keychain"
)

func TestSaveLoadDelete(t *testing.T) {
	kc, err := keychain.Open(t.TempDir(), []byte("device-secret"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := kc.Load(); !errors.Is(err, keychain.ErrNoToken) {
		t.Fatalf("Load on empty store: %v, want ErrNoToken", err)
	}

	if err := kc.Save("tok-1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := kc.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != "tok-1" {
		t.Errorf("Load = %q, want tok-1", got)
	}

	// Saving again replaces the prior token.
	if err := kc.Save("tok-2"); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	if got, _ := kc.Load(); got != "tok-2" {
		t.Errorf("Load after replace = %q, want tok-2", got)
	}

	if err := kc.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := kc.Load(); !errors.Is(err, keychain.ErrNoToken) {
		t.Errorf("Load after delete: %v, want ErrNoToken", err)
	}
	// Double delete is a no-op.
	if err := kc.Delete(); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestWrongDeviceSecretFailsToUnseal(t *testing.T) {
	dir := t.TempDir()
	kc1, err := keychain.Open(dir, []byte("secret-a"))
	if err != nil {
		t.Fatal(err)
	}
	if err := kc1.Save("tok"); err != nil {
		t.Fatal(err)
	}

	kc2, err := keychain.Open(dir, []byte("secret-b"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := kc2.Load(); err == nil {
		t.Error("token unsealed with wrong device secret")
	}
}
