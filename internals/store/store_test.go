package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string
	Name string
	Dept string
	Date string
}

func (r testRecord) RecordID() string { return r.ID }

func seedRecords(n int) []testRecord {
	out := make([]testRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, testRecord{
			ID:   fmt.Sprintf("rec-%03d", i),
			Name: fmt.Sprintf("Record %d", i),
			Dept: []string{"Engineering", "Product", "Operations"}[i%3],
			Date: fmt.Sprintf("2025-10-%02d", i),
		})
	}
	return out
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(seedRecords(3))
	snap := s.Snapshot()
	snap[0].Name = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "Record 1", fresh[0].Name)
}

func TestPrependIsNewestFirst(t *testing.T) {
	s := New(seedRecords(2))
	s.Prepend(testRecord{ID: "rec-new", Name: "Newest"})

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "rec-new", snap[0].ID)
	assert.Equal(t, "rec-001", snap[1].ID)
}

func TestCreateThenReadBack(t *testing.T) {
	s := New(seedRecords(4))
	s.Prepend(testRecord{ID: "rec-created", Name: "Created", Dept: "Product"})

	got, ok := s.Get("rec-created")
	require.True(t, ok)
	assert.Equal(t, "Created", got.Name)
	assert.Equal(t, "Product", got.Dept)

	// muncul tepat satu kali
	count := 0
	for _, rec := range s.Snapshot() {
		if rec.ID == "rec-created" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUpdatePreservesCardinalityAndOrder(t *testing.T) {
	s := New(seedRecords(5))
	before := s.Snapshot()

	ok := s.Update("rec-003", func(rec testRecord) testRecord {
		rec.Name = "Renamed"
		return rec
	})
	require.True(t, ok)

	after := s.Snapshot()
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID, "order must not change")
		if after[i].ID == "rec-003" {
			assert.Equal(t, "Renamed", after[i].Name)
		} else {
			assert.Equal(t, before[i].Name, after[i].Name, "only the targeted id changes")
		}
	}
}

func TestUpdateUnknownIDReturnsFalse(t *testing.T) {
	s := New(seedRecords(2))
	assert.False(t, s.Update("rec-999", func(rec testRecord) testRecord { return rec }))
}

func TestDeleteIsIdempotentOnAbsence(t *testing.T) {
	s := New(seedRecords(3))

	assert.True(t, s.Delete("rec-002"))
	assert.Equal(t, 2, s.Len())

	// menghapus id yang sudah tidak ada = no-op
	assert.False(t, s.Delete("rec-002"))
	assert.Equal(t, 2, s.Len())
}

func TestReplaceSwapsTheWholeSequence(t *testing.T) {
	s := New(seedRecords(3))
	s.Replace([]testRecord{{ID: "only", Name: "Only"}})

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "only", snap[0].ID)
}

func TestSubscribeNotifiedSynchronously(t *testing.T) {
	s := New(seedRecords(1))

	var seen [][]testRecord
	unsubscribe := s.Subscribe(func(snapshot []testRecord) {
		seen = append(seen, snapshot)
	})

	s.Prepend(testRecord{ID: "rec-a"})
	require.Len(t, seen, 1, "listener runs synchronously after the mutation")
	assert.Len(t, seen[0], 2)

	unsubscribe()
	s.Delete("rec-a")
	assert.Len(t, seen, 1, "unsubscribed listener stays silent")
}

func TestDispatchSeesACopy(t *testing.T) {
	s := New(seedRecords(2))
	s.Dispatch(func(current []testRecord) []testRecord {
		return current[:1]
	})
	assert.Equal(t, 1, s.Len())
}
