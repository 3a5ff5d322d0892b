package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/rangecal/internal/event"
	"github.com/javiermolinar/rangecal/internal/selection"
)

type fakeRepo struct {
	saved     []*selection.Saved
	saveErr   error
	latestErr error
}

func (f *fakeRepo) Save(ctx context.Context, s *selection.Saved) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, s)
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, id uuid.UUID) (*selection.Saved, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) List(ctx context.Context, limit int) ([]*selection.Saved, error) {
	return f.saved, nil
}

func (f *fakeRepo) Latest(ctx context.Context) (*selection.Saved, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	if len(f.saved) == 0 {
		return nil, selection.ErrNotFound
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeRepo) Close() error {
	return nil
}

func rangeSel(start, end int) selection.Selection {
	s := time.Date(2025, 1, start, 0, 0, 0, 0, time.UTC)
	e := time.Date(2025, 1, end, 0, 0, 0, 0, time.UTC)
	return selection.Selection{Mode: selection.Range, Range: event.DateRange{Start: &s, End: &e}}
}

func TestLoadLatest(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		msg := LoadLatest(&fakeRepo{})()
		loaded, ok := msg.(LatestLoadedMsg)
		if !ok {
			t.Fatalf("msg type = %T, want LatestLoadedMsg", msg)
		}
		if loaded.Saved != nil {
			t.Errorf("Saved = %+v, want nil", loaded.Saved)
		}
	})

	t.Run("nil repo", func(t *testing.T) {
		if _, ok := LoadLatest(nil)().(LatestLoadedMsg); !ok {
			t.Fatal("expected LatestLoadedMsg for a nil repo")
		}
	})

	t.Run("store error", func(t *testing.T) {
		msg := LoadLatest(&fakeRepo{latestErr: errors.New("disk gone")})()
		if _, ok := msg.(ErrMsg); !ok {
			t.Fatalf("msg type = %T, want ErrMsg", msg)
		}
	})

	t.Run("latest", func(t *testing.T) {
		repo := &fakeRepo{}
		first, _ := selection.NewSaved(rangeSel(1, 3), "", time.Now())
		second, _ := selection.NewSaved(rangeSel(5, 9), "", time.Now())
		repo.saved = []*selection.Saved{first, second}

		loaded := LoadLatest(repo)().(LatestLoadedMsg)
		if loaded.Saved != second {
			t.Errorf("Saved = %+v, want the second selection", loaded.Saved)
		}
	})
}

func TestSaveSelection(t *testing.T) {
	repo := &fakeRepo{}
	msg := SaveSelection(repo, rangeSel(10, 12), time.Now())()

	saved, ok := msg.(SelectionSavedMsg)
	if !ok {
		t.Fatalf("msg type = %T, want SelectionSavedMsg", msg)
	}
	if len(repo.saved) != 1 || repo.saved[0] != saved.Saved {
		t.Fatalf("repo holds %d selections", len(repo.saved))
	}
	if saved.Saved.End == nil || saved.Saved.End.Day() != 12 {
		t.Errorf("End = %v, want Jan 12", saved.Saved.End)
	}

	empty := SaveSelection(repo, selection.Selection{Mode: selection.Range}, time.Now())()
	errMsg, ok := empty.(ErrMsg)
	if !ok || !errors.Is(errMsg.Err, selection.ErrEmptySelection) {
		t.Errorf("got %#v, want ErrMsg with ErrEmptySelection", empty)
	}

	failing := &fakeRepo{saveErr: errors.New("read-only")}
	if _, ok := SaveSelection(failing, rangeSel(1, 2), time.Now())().(ErrMsg); !ok {
		t.Error("expected ErrMsg when the store fails")
	}

	if msg := SaveSelection(nil, rangeSel(1, 2), time.Now())(); msg != nil {
		t.Errorf("nil repo: got %#v, want nil", msg)
	}
}

func TestCopy(t *testing.T) {
	var got string
	write := func(text string) error {
		got = text
		return nil
	}

	msg := Copy("2025-01-10..2025-01-12", write)()
	status, ok := msg.(StatusMsgCmd)
	if !ok {
		t.Fatalf("msg type = %T, want StatusMsgCmd", msg)
	}
	if got != "2025-01-10..2025-01-12" {
		t.Errorf("clipboard = %q", got)
	}
	if status.Msg != "Copied 2025-01-10..2025-01-12" {
		t.Errorf("status = %q", status.Msg)
	}

	if msg := Copy("", write)(); msg != (StatusMsgCmd{Msg: "Nothing selected"}) {
		t.Errorf("empty copy: got %#v", msg)
	}

	failing := func(string) error { return errors.New("no clipboard") }
	if _, ok := Copy("x", failing)().(ErrMsg); !ok {
		t.Error("expected ErrMsg when the clipboard fails")
	}
}
