package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func withFS(t *testing.T, data fstest.MapFS) {
	t.Helper()
	prev := dataFS
	if data == nil {
		dataFS = nil
	} else {
		Init(data)
	}
	t.Cleanup(func() { dataFS = prev })
}

// TestNotInitialized 测试未初始化时的行为
func TestNotInitialized(t *testing.T) {
	withFS(t, nil)

	if IsInitialized() {
		t.Error("Init() 之前 IsInitialized() 应为 false")
	}
	if _, err := Open("data/tutorial.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open() err = %v, want ErrNotInitialized", err)
	}
	if _, err := ReadFile("data/tutorial.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("ReadFile() err = %v, want ErrNotInitialized", err)
	}
	if _, err := Glob("data/*.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Glob() err = %v, want ErrNotInitialized", err)
	}
	if Exists("data/tutorial.yaml") {
		t.Error("未初始化时 Exists() 应为 false")
	}
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/tutorial.yaml": {Data: []byte("elements: []\n")},
		"data/theme.yaml":    {Data: []byte("delay: 0s\n")},
	})

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/tutorial.yaml", "elements: []\n", false},
		{"带 ./ 前缀", "./data/theme.yaml", "delay: 0s\n", false},
		{"不存在的文件", "data/missing.yaml", "", true},
		{"错误的前缀", "assets/tutorial.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/a.yaml": {Data: []byte("a")},
		"data/b.yaml": {Data: []byte("b")},
		"data/c.txt":  {Data: []byte("c")},
	})

	if !Exists("data/a.yaml") || Exists("data/z.yaml") {
		t.Error("Exists() 结果不正确")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob() err = %v", err)
	}
	if len(matches) != 2 || matches[0] != "data/a.yaml" || matches[1] != "data/b.yaml" {
		t.Errorf("Glob() = %v", matches)
	}
}
