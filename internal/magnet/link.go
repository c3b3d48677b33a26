// Package magnet builds standards-compliant magnet URIs from a BitTorrent
// info hash plus optional display title and tracker announce URIs.
//
// A Link is an accumulator: construct it with a validated hash, layer on a
// title and trackers in any order, then render it with String. Rendering is
// a pure read and may be repeated. A Link is not safe for concurrent
// mutation; callers sharing one across goroutines must serialize access.
package magnet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/conneroisu/mkmagnet/internal/errors"
)

// HashLength is the required length of a BitTorrent info hash string.
const HashLength = 40

var (
	// hashPattern is deliberately looser than the hex/base32 alphabets
	// real info hashes use; the full alphanumeric class is the accepted
	// contract and must not be tightened.
	hashPattern = regexp.MustCompile(`^[a-zA-Z0-9]{40}$`)

	// trackerPattern is a prefix match: scheme, optional userinfo,
	// dotted host labels, optional port, then either a slash or end of
	// input. Anything after the matched prefix is not inspected.
	trackerPattern = regexp.MustCompile(`^(https?|udp)://(([^:/@]+:)?[^:/@]+@)?(\w+\.)*\w+(:\d+)?(/|$)`)
)

// ValidateHash reports whether s is an acceptable torrent info hash:
// exactly 40 characters, all alphanumeric. Case is not significant.
func ValidateHash(s string) bool {
	return len(s) == HashLength && hashPattern.MatchString(s)
}

// ValidateTrackerURI reports whether uri looks like a tracker announce
// URI: http, https or udp scheme, optional user[:password]@ userinfo, a
// dotted word-character host, and an optional numeric port. The check
// stops at the first slash after the authority, so trailing path and
// query content is accepted unexamined.
func ValidateTrackerURI(uri string) bool {
	return trackerPattern.MatchString(uri)
}

// Link accumulates the parts of a magnet URI.
type Link struct {
	hash     string
	title    string
	hasTitle bool
	trackers []string
	present  map[string]struct{}
}

// New creates a Link for the given info hash. The hash is normalized to
// lowercase before validation and is immutable afterwards.
func New(hash string) (*Link, error) {
	normalized := strings.ToLower(hash)
	if !ValidateHash(normalized) {
		return nil, errors.NewValidationError("invalid_hash",
			fmt.Sprintf("'%s' is not a valid torrent hash", hash))
	}

	return &Link{
		hash:    normalized,
		present: make(map[string]struct{}),
	}, nil
}

// Hash returns the normalized info hash.
func (l *Link) Hash() string {
	return l.hash
}

// SetTitle sets the display name. Later calls overwrite earlier ones;
// the content is not validated.
func (l *Link) SetTitle(title string) {
	l.title = title
	l.hasTitle = true
}

// AddTracker appends a tracker announce URI. The URI must pass
// ValidateTrackerURI. Re-adding a URI already in the list is a silent
// no-op, not an error; insertion order is otherwise preserved.
func (l *Link) AddTracker(uri string) error {
	if !ValidateTrackerURI(uri) {
		return errors.NewValidationError("invalid_tracker",
			fmt.Sprintf("'%s' is not a valid tracker URI", uri))
	}

	if _, ok := l.present[uri]; ok {
		return nil
	}

	l.present[uri] = struct{}{}
	l.trackers = append(l.trackers, uri)

	return nil
}

// Trackers returns the accumulated tracker URIs in insertion order.
func (l *Link) Trackers() []string {
	out := make([]string, len(l.trackers))
	copy(out, l.trackers)

	return out
}

// String renders the magnet URI. The xt parameter always comes first with
// the hash as stored (already restricted to unreserved characters), then
// dn if a title was set, then one tr per tracker in insertion order. The
// dn and tr values are percent-encoded with an empty safe set: every
// reserved character, including the slashes and colons inside a tracker
// URI, is escaped.
func (l *Link) String() string {
	params := []string{"xt=urn:btih:" + l.hash}

	if l.hasTitle {
		params = append(params, "dn="+escape(l.title))
	}

	for _, uri := range l.trackers {
		params = append(params, "tr="+escape(uri))
	}

	return "magnet:?" + strings.Join(params, "&")
}

const upperhex = "0123456789ABCDEF"

// escape percent-encodes every byte outside the RFC 3986 unreserved set.
// Unlike url.QueryEscape it never emits '+' for a space.
func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}

	return false
}
