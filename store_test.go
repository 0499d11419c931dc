package dotstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHiddenRel(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{
			name:   "single segment",
			target: "barracuda",
			want:   ".barracuda",
		},
		{
			name:   "two segments",
			target: filepath.Join("settings", "user"),
			want:   "." + filepath.Join("settings", "user"),
		},
		{
			name:   "three segments hides first only",
			target: filepath.Join("settings", "user", "local"),
			want:   "." + filepath.Join("settings", "user", "local"),
		},
		{
			name:   "already dotted gains second dot",
			target: ".hidden",
			want:   "..hidden",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hiddenRel(tt.target); got != tt.want {
				t.Errorf("hiddenRel(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestCustomStore(t *testing.T) {
	root := t.TempDir()

	got, err := CustomStore(root, "eregion")
	if err != nil {
		t.Fatalf("CustomStore() error = %v", err)
	}

	want := filepath.Join(root, ".eregion")
	if got != want {
		t.Errorf("CustomStore() = %q, want %q", got, want)
	}

	info, err := os.Stat(got)
	if err != nil {
		t.Fatalf("store directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("store path is not a directory")
	}
}

func TestCustomStore_AncestorCreation(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join("settings", "user", "local")

	got, err := CustomStore(root, target)
	if err != nil {
		t.Fatalf("CustomStore() error = %v", err)
	}

	want := filepath.Join(root, ".settings", "user", "local")
	if got != want {
		t.Errorf("CustomStore() = %q, want %q", got, want)
	}

	// Only the first segment is hidden; every level is a directory.
	for _, dir := range []string{
		filepath.Join(root, ".settings"),
		filepath.Join(root, ".settings", "user"),
		filepath.Join(root, ".settings", "user", "local"),
	} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("ancestor %q was not created: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("%q is not a directory", dir)
		}
	}
}

func TestCustomStore_Idempotent(t *testing.T) {
	root := t.TempDir()

	first, err := CustomStore(root, "barracuda")
	if err != nil {
		t.Fatalf("first CustomStore() error = %v", err)
	}

	// Contents placed inside the store must survive a second call.
	marker := filepath.Join(first, "keep.txt")
	if err := os.WriteFile(marker, []byte("data"), 0o644); err != nil {
		t.Fatalf("writing marker file: %v", err)
	}

	second, err := CustomStore(root, "barracuda")
	if err != nil {
		t.Fatalf("second CustomStore() error = %v", err)
	}
	if second != first {
		t.Errorf("second call = %q, want %q", second, first)
	}

	data, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("marker file missing after second call: %v", err)
	}
	if string(data) != "data" {
		t.Errorf("marker file content = %q, want %q", data, "data")
	}
}

func TestCustomStore_TargetOccupiedByFile(t *testing.T) {
	root := t.TempDir()

	blocked := filepath.Join(root, ".blocked")
	if err := os.WriteFile(blocked, nil, 0o644); err != nil {
		t.Fatalf("creating blocking file: %v", err)
	}

	if _, err := CustomStore(root, "blocked"); err == nil {
		t.Error("CustomStore() succeeded with a file at the target path")
	}

	// A file blocking an intermediate segment fails the same way.
	if _, err := CustomStore(root, filepath.Join("blocked", "inner")); err == nil {
		t.Error("CustomStore() succeeded with a file blocking an ancestor")
	}
}

func TestCustomStore_InvalidInputs(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		root    string
		target  string
		wantErr error
	}{
		{
			name:    "empty target",
			root:    root,
			target:  "",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "absolute target",
			root:    root,
			target:  root,
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "target with NUL byte",
			root:    root,
			target:  "bad\x00name",
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "empty root",
			root:    "",
			target:  "barracuda",
			wantErr: ErrInvalidRoot,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CustomStore(tt.root, tt.target)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CustomStore() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestStore_PanicsOnUnresolvableKind(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Store() did not panic for an unresolvable kind")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "no base directory") {
			t.Errorf("panic = %v, want diagnostic naming the missing base", r)
		}
	}()

	// Kind(200) is outside the enumeration, so no platform resolves it.
	_, _ = Store(Kind(200), "barracuda")
}
