package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/archery.yaml": {Data: []byte("ticksPerSecond: 30\n")},
		"data/extra.yaml":   {Data: []byte("x: 1\n")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

func TestNotInitialized(t *testing.T) {
	reset()

	if _, err := ReadFile("data/archery.yaml"); err == nil {
		t.Error("Expected error when calling ReadFile() before Init()")
	} else if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}

	if Exists("data/archery.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}
	if _, err := Glob("data/*.yaml"); err == nil {
		t.Error("Expected error when calling Glob() before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer reset()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/archery.yaml", "ticksPerSecond: 30\n", false},
		{"带 ./ 前缀", "./data/archery.yaml", "ticksPerSecond: 30\n", false},
		{"未知前缀", "assets/archery.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if string(got) != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, string(got))
			}
		})
	}
}

func TestExistsAndGlob(t *testing.T) {
	Init(testFS())
	defer reset()

	if !Exists("data/archery.yaml") {
		t.Error("Expected data/archery.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml to be missing")
	}

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}
}
