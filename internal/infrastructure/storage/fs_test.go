package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/sudocheck/internal/domain"
)

const testTimeout = 2 * time.Second

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	s := NewFS(t.TempDir())
	p := &domain.Puzzle{
		ID:        "p1",
		Name:      "corner blank",
		Size:      4,
		Rows:      [][]int{{0, 2, 3, 4}, {3, 4, 1, 2}, {2, 3, 4, 1}, {4, 1, 2, 3}},
		CreatedAt: 1724500000000000000,
		Notes:     "fills in one pass",
	}
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestSaveMissingID(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	s := NewFS(t.TempDir())
	require.ErrorIs(t, s.Save(ctx, nil), ErrNoID)
	require.ErrorIs(t, s.Save(ctx, &domain.Puzzle{}), ErrNoID)
}

func TestLoadMissing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	s := NewFS(t.TempDir())
	_, err := s.Load(ctx, "nope")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInfersSize(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	dir := t.TempDir()
	doc := `{"id":"legacy","rows":[[1,2],[2,1]]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "legacy.json"), []byte(doc), 0o644))

	got, err := NewFS(dir).Load(ctx, "legacy")
	require.NoError(t, err)
	require.Equal(t, 2, got.Size)
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"value out of range", `{"id":"bad","size":2,"rows":[[1,5],[2,1]]}`, domain.ErrValue},
		{"negative value", `{"id":"bad","size":2,"rows":[[1,-1],[2,1]]}`, domain.ErrValue},
		{"ragged rows", `{"id":"bad","rows":[[1,2],[2]]}`, domain.ErrSize},
		{"size field mismatch", `{"id":"bad","size":3,"rows":[[1,2],[2,1]]}`, domain.ErrSize},
		{"no rows", `{"id":"bad"}`, domain.ErrSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(tc.doc), 0o644))

			_, err := NewFS(dir).Load(ctx, "bad")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestListSkipsJunk(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	dir := t.TempDir()
	s := NewFS(dir)
	require.NoError(t, s.Save(ctx, &domain.Puzzle{
		ID:   "keep",
		Size: 2,
		Rows: [][]int{{1, 2}, {2, 1}},
	}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anon.json"), []byte(`{"size":2}`), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	metas, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	require.Equal(t, "keep", metas[0].ID)
	require.Equal(t, 2, metas[0].Size)
}

func TestListMissingDir(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	metas, err := NewFS(filepath.Join(t.TempDir(), "absent")).List(ctx)
	require.NoError(t, err)
	require.Empty(t, metas)
}
