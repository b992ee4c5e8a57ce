package local

import (
	"io/fs"
	"testing"

	"github.com/bornholm/navbar/internal/assets"
	"github.com/pkg/errors"
)

func TestCreateSourceFromOptions(t *testing.T) {
	fsys, err := assets.New(Type, map[string]any{
		"dir": "testdata",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	data, err := fs.ReadFile(fsys, "images/custom.svg")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if len(data) == 0 {
		t.Errorf("images/custom.svg: expected content, got nothing")
	}

	if _, err := assets.New(Type, map[string]any{}); err == nil {
		t.Errorf("expected an error for a missing dir option")
	}

	if _, err := assets.New(Type, map[string]any{"dir": "testdata/images/custom.svg"}); err == nil {
		t.Errorf("expected an error for a non directory")
	}
}
