package tree

import (
	"encoding/binary"
	"hash/fnv"
	"strconv"
)

// ID identifies a node across frames. Zero is never assigned.
type ID uint64

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 16)
}

const (
	tagRoot  = 'r'
	tagKey   = 'k'
	tagIndex = 'p'
)

func hashID(parent ID, tag byte, key string, kind Kind, position int) ID {
	h := fnv.New64a()
	var buf [binary.MaxVarintLen64 + 8]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(parent))
	h.Write(buf[:8])
	h.Write([]byte{tag})
	if tag == tagIndex {
		h.Write([]byte{byte(kind)})
		n := binary.PutUvarint(buf[:], uint64(position))
		h.Write(buf[:n])
	} else {
		h.Write([]byte(key))
	}
	id := ID(h.Sum64())
	if id == 0 {
		id = 1
	}
	return id
}

// RootID returns the ID of a root node. A keyed root hashes its key; an
// unkeyed root hashes its kind.
func RootID(key string, kind Kind) ID {
	if key != "" {
		return hashID(0, tagRoot, key, kind, 0)
	}
	return hashID(0, tagRoot, kind.String(), kind, 0)
}

// ChildID returns the ID of a child. A keyed child keeps its ID wherever it
// moves among its siblings; an unkeyed child is identified by its kind and
// position.
func ChildID(parent ID, key string, kind Kind, position int) ID {
	if key != "" {
		return hashID(parent, tagKey, key, kind, position)
	}
	return hashID(parent, tagIndex, "", kind, position)
}

// Sibling describes one child for SiblingIDs.
type Sibling struct {
	Key  string
	Kind Kind
}

// SiblingIDs assigns IDs to an ordered child list. A key used more than
// once among the siblings identifies none of them: every repeat falls back
// to positional identity and the key is reported in dups.
func SiblingIDs(parent ID, sibs []Sibling) (ids []ID, dups []string) {
	seen := make(map[string]int, len(sibs))
	for _, s := range sibs {
		if s.Key != "" {
			seen[s.Key]++
		}
	}
	ids = make([]ID, len(sibs))
	for i, s := range sibs {
		key := s.Key
		if n := seen[key]; key != "" && n != 1 {
			if n > 1 {
				dups = append(dups, key)
				seen[key] = -1
			}
			key = ""
		}
		ids[i] = ChildID(parent, key, s.Kind, i)
	}
	return ids, dups
}
