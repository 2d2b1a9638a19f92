// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("PK\x03\x04 archive bytes")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	want := mac.Sum(nil)

	assert.Equal(t, want, h.Sum(data))
	assert.Equal(t, hex.EncodeToString(want), h.SumHex(data))
}

func TestHasher_Deterministic(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("same payload")

	assert.Equal(t, h.SumHex(data), h.SumHex(data))
	assert.NotEqual(t, h.SumHex(data), h.SumHex([]byte("other payload")))
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("payload")
	assert.NotEqual(t, NewHasher("key-one").SumHex(data), NewHasher("key-two").SumHex(data))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")
	sum := h.SumHex(data)

	tests := []struct {
		name string
		data []byte
		sum  string
		want bool
	}{
		{name: "valid", data: data, sum: sum, want: true},
		{name: "tampered data", data: []byte("payload!"), sum: sum, want: false},
		{name: "wrong digest", data: data, sum: NewHasher("other").SumHex(data), want: false},
		{name: "not hex", data: data, sum: "zz", want: false},
		{name: "empty", data: data, sum: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Verify(tt.data, tt.sum))
		})
	}
}

func TestHasher_Enabled(t *testing.T) {
	var nilHasher *Hasher
	assert.False(t, nilHasher.Enabled())
	assert.False(t, NewHasher("").Enabled())
	assert.True(t, NewHasher("k").Enabled())
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	want := h.SumHex([]byte("payload"))

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = h.SumHex([]byte("payload"))
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
