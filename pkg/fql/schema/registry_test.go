package schema

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesInput(t *testing.T) {
	tables := map[string][]string{"friend": {"uid1", "uid2"}}

	r, err := New(tables)
	require.NoError(t, err)

	tables["friend"][0] = "changed"
	tables["other"] = []string{"x"}

	cols, ok := r.Columns("friend")
	require.True(t, ok)
	assert.Equal(t, []string{"uid1", "uid2"}, cols)
	assert.False(t, r.Has("other"))
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		desc   string
		tables map[string][]string
		err    error
	}{
		{desc: "empty table name", tables: map[string][]string{" ": {"a"}}, err: errEmptyTableName},
		{desc: "no columns", tables: map[string][]string{"t": {}}, err: errNoColumns},
		{desc: "empty column", tables: map[string][]string{"t": {"a", ""}}, err: errEmptyColumnName},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := New(tc.tables)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(map[string][]string{"t": nil})
	})
}

func TestRegistry_ColumnsReturnsCopy(t *testing.T) {
	r := MustNew(map[string][]string{"friend": {"uid1", "uid2"}})

	cols, _ := r.Columns("friend")
	cols[0] = "mutated"

	again, _ := r.Columns("friend")
	assert.Equal(t, "uid1", again[0])
}

func TestRegistry_Lookups(t *testing.T) {
	r := MustNew(map[string][]string{
		"url_like": {"url", "user_id"},
		"friend":   {"uid1", "uid2"},
	})

	first, ok := r.FirstColumn("url_like")
	assert.True(t, ok)
	assert.Equal(t, "url", first)

	joined, ok := r.JoinedColumns("friend", ", ")
	assert.True(t, ok)
	assert.Equal(t, "uid1, uid2", joined)

	_, ok = r.FirstColumn("missing")
	assert.False(t, ok)

	_, ok = r.JoinedColumns("missing", ", ")
	assert.False(t, ok)

	assert.Equal(t, []string{"friend", "url_like"}, r.Tables())
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_NilReceiver(t *testing.T) {
	var r *Registry

	_, ok := r.Columns("friend")
	assert.False(t, ok)
	assert.False(t, r.Has("friend"))
	assert.Nil(t, r.Tables())
	assert.Zero(t, r.Len())
}

func TestMerge(t *testing.T) {
	base := MustNew(map[string][]string{
		"friend":   {"uid1", "uid2"},
		"url_like": {"url", "user_id"},
	})
	overlay := MustNew(map[string][]string{
		"friend":  {"uid1"},
		"checkin": {"checkin_id"},
	})

	merged, err := Merge(base, overlay)
	require.NoError(t, err)

	cols, _ := merged.Columns("friend")
	assert.Equal(t, []string{"uid1"}, cols)
	assert.True(t, merged.Has("url_like"))
	assert.True(t, merged.Has("checkin"))

	// inputs stay untouched
	cols, _ = base.Columns("friend")
	assert.Equal(t, []string{"uid1", "uid2"}, cols)

	_, err = Merge(nil, overlay)
	assert.ErrorIs(t, err, errNilRegistry)
}

func TestFacebook(t *testing.T) {
	r := Facebook()

	assert.Same(t, r, Facebook())
	assert.Equal(t, 76, r.Len())

	cols, ok := r.Columns("friend")
	require.True(t, ok)
	assert.Equal(t, []string{"uid1", "uid2"}, cols)

	cols, ok = r.Columns("url_like")
	require.True(t, ok)
	assert.Equal(t, []string{"url", "user_id"}, cols)

	first, ok := r.FirstColumn("user")
	require.True(t, ok)
	assert.Equal(t, "about_me", first)

	assert.False(t, r.Has("nonexistent_table"))
}

func TestFacebook_ConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			r := Facebook()
			for _, name := range r.Tables() {
				_, ok := r.Columns(name)
				assert.True(t, ok)
			}
		}()
	}

	wg.Wait()
}
