package repositories

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for the badger store. Comments are keyed under their
	// post so a post's comments share a prefix; a secondary index maps a
	// comment id back to its post.
	postKeyPrefix      = "post:"
	commentKeyPrefix   = "comment:"
	commentIndexPrefix = "comment_idx:"

	// Sequence keys for auto-incrementing IDs.
	postSeqKey    = "seq:post"
	commentSeqKey = "seq:comment"
)

func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", postKeyPrefix, id))
}

func commentKey(postID, id int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d", commentKeyPrefix, postID, id))
}

func commentIndexKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", commentIndexPrefix, id))
}

// getNextID gets the next available ID for a given sequence key.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id int
	item, err := txn.Get([]byte(seqKey))
	if err == badger.ErrKeyNotFound {
		id = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			id = int(val[0])<<24 | int(val[1])<<16 | int(val[2])<<8 | int(val[3])
			return nil
		})
		if err != nil {
			return 0, err
		}
		id++
	}

	idBytes := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, err
	}

	return id, nil
}

// commentPostID resolves a comment id to its parent post id through the
// secondary index. Returns ErrNotFound for unknown comment ids.
func commentPostID(txn *badger.Txn, id int) (int, error) {
	item, err := txn.Get(commentIndexKey(id))
	if err == badger.ErrKeyNotFound {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	var postID int
	err = item.Value(func(val []byte) error {
		postID, err = strconv.Atoi(string(val))
		return err
	})
	if err != nil {
		return 0, err
	}
	return postID, nil
}

// marshalEntity marshals an entity to JSON.
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity.
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
