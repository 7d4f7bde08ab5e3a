package autils

import (
	"errors"
	"os"
	"testing"
)

func TestResolveDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "test")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	resolvedPath, err := ResolveDirectory(tempDir)
	if err != nil {
		t.Errorf("ResolveDirectory() returned an error: %v", err)
	}
	if resolvedPath != tempDir {
		t.Errorf("ResolveDirectory() returned '%v', want '%v'", resolvedPath, tempDir)
	}

	if _, err := ResolveDirectory("nonexistentdirectory"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveDirectory() should return an error for non-existent directory")
	}

	tempFile, err := os.CreateTemp(tempDir, "testfile-*.txt")
	if err != nil {
		t.Errorf("Failed to create temp file: %v", err)
		return
	}
	tempFileName := tempFile.Name()
	tempFile.Close()
	defer os.Remove(tempFileName)
	if _, err := ResolveDirectory(tempFileName); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("ResolveDirectory() should return an error when resolving a file")
	}

	if _, err := ResolveDirectory(""); err == nil {
		t.Errorf("ResolveDirectory() should return an error for empty path")
	}
}
