package mirror_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/terrabrand/agency-website-with-cms-vps/internal/mirror"
)

func testRoundTrip(t *testing.T, m mirror.Mirror) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := m.Load(ctx, "ric_services"); err != nil || ok {
		t.Fatalf("empty load = (ok=%v, err=%v), want miss", ok, err)
	}

	want := []byte(`[{"id":"1","title":"Logo Design"}]`)
	if err := m.Save(ctx, "ric_services", want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := m.Load(ctx, "ric_services")
	if err != nil || !ok {
		t.Fatalf("load = (ok=%v, err=%v)", ok, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("load = %s, want %s", got, want)
	}

	// 覆盖写
	want2 := []byte(`[]`)
	if err := m.Save(ctx, "ric_services", want2); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got, _, _ := m.Load(ctx, "ric_services"); !bytes.Equal(got, want2) {
		t.Errorf("after overwrite = %s, want %s", got, want2)
	}

	if err := m.Delete(ctx, "ric_services"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := m.Load(ctx, "ric_services"); ok {
		t.Error("key survived delete")
	}
	// 删不存在的 key 不报错
	if err := m.Delete(ctx, "ric_services"); err != nil {
		t.Errorf("double delete: %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	testRoundTrip(t, mirror.NewMemory())
}

func TestSQLiteRoundTrip(t *testing.T) {
	m, err := mirror.NewSQLite(filepath.Join(t.TempDir(), "mirror.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer m.Close()
	testRoundTrip(t, m)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.db")
	ctx := context.Background()

	m1, err := mirror.NewSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := m1.Save(ctx, "ric_user", []byte(`{"id":"admin"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := m1.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	m2, err := mirror.NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer m2.Close()
	got, ok, err := m2.Load(ctx, "ric_user")
	if err != nil || !ok {
		t.Fatalf("load after reopen = (ok=%v, err=%v)", ok, err)
	}
	if string(got) != `{"id":"admin"}` {
		t.Errorf("got %s", got)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := mirror.NewMemory()
	ctx := context.Background()

	src := []byte("abc")
	if err := m.Save(ctx, "k", src); err != nil {
		t.Fatal(err)
	}
	src[0] = 'x'

	got, _, _ := m.Load(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %s", got)
	}
	got[0] = 'y'
	again, _, _ := m.Load(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("loaded value aliased stored slice: %s", again)
	}
}
