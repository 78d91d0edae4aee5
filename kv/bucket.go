// Copyright (c) 2026 The Orbis developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Bucket provides a logical namespace within a kv store by prefixing keys.
type Bucket string

// NewStore creates a bucket store from the source store.
func (b Bucket) NewStore(src GetPutter) GetPutter {
	return &bucketStore{b, src}
}

type bucketStore struct {
	prefix Bucket
	src    GetPutter
}

func (s *bucketStore) key(key []byte) []byte {
	return append(append(make([]byte, 0, len(s.prefix)+len(key)), s.prefix...), key...)
}

func (s *bucketStore) Get(key []byte) ([]byte, error) {
	return s.src.Get(s.key(key))
}

func (s *bucketStore) Has(key []byte) (bool, error) {
	return s.src.Has(s.key(key))
}

func (s *bucketStore) IsNotFound(err error) bool {
	return s.src.IsNotFound(err)
}

func (s *bucketStore) Put(key, value []byte) error {
	return s.src.Put(s.key(key), value)
}

func (s *bucketStore) Delete(key []byte) error {
	return s.src.Delete(s.key(key))
}

func (s *bucketStore) NewBatch() Batch {
	return &bucketBatch{s, s.src.NewBatch()}
}

type bucketBatch struct {
	store *bucketStore
	inner Batch
}

func (b *bucketBatch) Put(key, value []byte) error {
	return b.inner.Put(b.store.key(key), value)
}

func (b *bucketBatch) Delete(key []byte) error {
	return b.inner.Delete(b.store.key(key))
}

func (b *bucketBatch) Len() int { return b.inner.Len() }

func (b *bucketBatch) Write() error { return b.inner.Write() }
