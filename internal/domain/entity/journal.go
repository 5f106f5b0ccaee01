package entity

import (
	"time"

	"github.com/google/uuid"

	"memoria/internal/errors"
)

// DateLayout is the canonical calendar-day form used as part of the
// journal entry key. Lexicographic order equals chronological order.
const DateLayout = "2006-01-02"

// MaxSnapPhotos is the upper bound on snapshot photos per entry.
const MaxSnapPhotos = 5

// ContentKind discriminates the journal content union. It is a closed set;
// every switch over it must handle all three kinds and reject the rest.
type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentAudio ContentKind = "audio"
	ContentVideo ContentKind = "video"
)

// ErrInvalidContentKind is returned when a wire content type does not map
// onto the closed ContentKind set.
var ErrInvalidContentKind = errors.New("invalid content kind")

// ParseContentKind maps the multipart wire value onto a ContentKind.
// The recorded kinds arrive as their MIME type ("audio/webm", "video/webm").
func ParseContentKind(wire string) (ContentKind, error) {
	switch wire {
	case "text":
		return ContentText, nil
	case "audio/webm":
		return ContentAudio, nil
	case "video/webm":
		return ContentVideo, nil
	default:
		return "", errors.Wrapf(ErrInvalidContentKind, "unsupported content type %q", wire)
	}
}

// IsRemote reports whether the content payload lives in the remote asset
// store rather than inline in the entry row.
func (k ContentKind) IsRemote() bool {
	return k == ContentAudio || k == ContentVideo
}

// JournalContent is the content union: an inline text body, or the URL of
// a recorded audio/video asset.
type JournalContent struct {
	Kind    ContentKind `json:"kind"`
	Payload string      `json:"payload"`
}

// Mood is the structured mood selection attached to an entry.
type Mood struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// JournalEntry is the central entity: one memory for one (owner, date).
// The entry only references remote assets by URL; the asset store owns the
// binaries themselves, which is why reconciliation exists.
type JournalEntry struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"userId"`
	Date               string         `json:"date"`
	Title              string         `json:"title"`
	Content            JournalContent `json:"content"`
	Thumbnail          string         `json:"thumbnail"`
	SnapPhotos         []string       `json:"snapPhotos"`
	ProductivityRating int            `json:"productivityRating"`
	Mood               Mood           `json:"selectedMood"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// WasCreated reports whether the last upsert inserted this entry rather
// than replacing an existing one. Insert stamps both timestamps with the
// same instant; replacement only advances UpdatedAt.
func (e *JournalEntry) WasCreated() bool {
	return e.CreatedAt.Equal(e.UpdatedAt)
}
