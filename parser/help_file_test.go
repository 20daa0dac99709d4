package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"a.yaml", "b.txt", "sub/c.yml", "sub/deep/d.yaml"} {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := LoadFiles(dir, ".yaml", ".yml")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a.yaml", "sub/c.yml", "sub/deep/d.yaml"}
	if len(files) != len(want) {
		t.Fatalf("got %d files, want %d", len(files), len(want))
	}
	for i, f := range files {
		if f.Path() != dir+"/"+want[i] {
			t.Errorf("files[%d] = %s, want %s", i, f.Path(), want[i])
		}
	}

	if !IsExist(dir + "/a.yaml") {
		t.Error("a.yaml 应该存在")
	}
	if IsExist(dir + "/nope") {
		t.Error("nope 不应该存在")
	}
	if _, err = LoadFiles(dir + "/nope"); err == nil {
		t.Error("不存在的目录应该报错")
	}
}
