package audit

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"
)

// KV is a pebble backed Store. Records are keyed by session and a
// monotonically increasing sequence, so a prefix scan returns a session's
// trail in append order. The sequence is seeded from the wall clock at open
// so trails keep their order across restarts.
type KV struct {
	DB  *pebble.DB
	seq uint64
}

var _ Store = (*KV)(nil)

func NewKV(db *pebble.DB) *KV {
	return &KV{DB: db, seq: uint64(time.Now().UnixNano())}
}

const recordPrefix = "audit/"

// Append implements the Store interface.
func (kv *KV) Append(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	seq := atomic.AddUint64(&kv.seq, 1)
	key := fmt.Sprintf("%s%s/%020d", recordPrefix, r.Session, seq)
	return kv.DB.Set([]byte(key), data, pebble.Sync)
}

// RetrieveBySession implements the Store interface.
func (kv *KV) RetrieveBySession(key uuid.UUID) ([]Record, error) {
	prefix := []byte(recordPrefix + key.String() + "/")
	upper := append(append([]byte{}, prefix...), 0xff)
	iter := kv.DB.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upper,
	})
	records := make([]Record, 0)
	for iter.First(); iter.Valid(); iter.Next() {
		var r Record
		if err := json.Unmarshal(iter.Value(), &r); err != nil {
			return nil, errors.CombineErrors(err, iter.Close())
		}
		records = append(records, r)
	}
	return records, iter.Close()
}
