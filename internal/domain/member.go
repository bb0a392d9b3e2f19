package domain

import (
	"strings"
	"sync"
)

// PhenotypeKeyPrefix marks keys that refer to user-defined phenotypes.
// All other keys refer to concepts of the ontology tree.
const PhenotypeKeyPrefix = "USER:"

// IsPhenotypeKey reports whether key belongs to the phenotype namespace.
func IsPhenotypeKey(key string) bool {
	return strings.HasPrefix(key, PhenotypeKeyPrefix)
}

// Member represents one selectable entity of a cohort.
type Member struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Type        *string `json:"type"`
}

// MemberKeys returns keys of members in list order.
func MemberKeys(members []Member) []string {
	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key
	}
	return keys
}

// MemberList is an ordered set of members keyed by Member.Key.
// It is safe for concurrent use.
type MemberList struct {
	mu      sync.Mutex
	members []Member
}

// NewMemberList creates a list holding members. Duplicate keys are dropped.
func NewMemberList(members ...Member) *MemberList {
	l := &MemberList{}
	l.Add(members...)
	return l
}

// Add appends members whose keys are not in the list yet and returns them.
func (l *MemberList) Add(members ...Member) []Member {
	l.mu.Lock()
	defer l.mu.Unlock()

	added := make([]Member, 0, len(members))
	for _, m := range members {
		if l.indexLocked(m.Key) >= 0 {
			continue
		}
		l.members = append(l.members, m)
		added = append(added, m)
	}
	return added
}

// Append adds m to the end of the list without checking for duplicates.
func (l *MemberList) Append(m Member) {
	l.mu.Lock()
	l.members = append(l.members, m)
	l.mu.Unlock()
}

// Remove deletes the member with the given key.
func (l *MemberList) Remove(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexLocked(key)
	if idx < 0 {
		return false
	}
	l.members = append(l.members[:idx], l.members[idx+1:]...)
	return true
}

// Contains reports whether a member with key is in the list.
func (l *MemberList) Contains(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.indexLocked(key) >= 0
}

// Reset empties the list.
func (l *MemberList) Reset() {
	l.mu.Lock()
	l.members = nil
	l.mu.Unlock()
}

// Len returns the number of members.
func (l *MemberList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.members)
}

// Snapshot returns a copy of the members in list order.
func (l *MemberList) Snapshot() []Member {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Member, len(l.members))
	copy(out, l.members)
	return out
}

// Keys returns member keys in list order.
func (l *MemberList) Keys() []string {
	return MemberKeys(l.Snapshot())
}

func (l *MemberList) indexLocked(key string) int {
	for i := range l.members {
		if l.members[i].Key == key {
			return i
		}
	}
	return -1
}
